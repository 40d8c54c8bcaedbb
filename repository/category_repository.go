package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
)

// ErrCategoryHasProducts blocks deleting a category while products still
// reference it.
var ErrCategoryHasProducts = errors.New("cannot delete category with existing products")

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	if err := r.DB.Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

// Update applies the given columns and returns the post-write row.
func (r *CategoryRepository) Update(id uint, updates map[string]any) (*entity.Category, error) {
	if len(updates) > 0 {
		res := r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(id)
}

// Delete removes a category unless any product references it. The guard and
// the delete are a single conditional statement evaluated inside one
// transaction, so no product can slip in between check and delete. Deleting
// a category that does not exist is a no-op.
func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`DELETE FROM categories
			 WHERE id = ?
			   AND NOT EXISTS (SELECT 1 FROM products WHERE products.category_id = categories.id)`,
			id,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var count int64
		if err := tx.Model(&entity.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryHasProducts
		}
		return nil
	})
}
