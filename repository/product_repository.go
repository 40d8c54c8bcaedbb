package repository

import (
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

// List returns all products, newest first.
func (r *ProductRepository) List() ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory returns a category's products ordered by name.
func (r *ProductRepository) ListByCategory(categoryID uint) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.DB.Where("category_id = ?", categoryID).Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var product entity.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.DB.Create(product).Error
}

func (r *ProductRepository) Update(id uint, updates map[string]any) (*entity.Product, error) {
	if len(updates) > 0 {
		res := r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(id)
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
