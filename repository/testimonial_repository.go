package repository

import (
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
)

type TestimonialRepository struct{ DB *gorm.DB }

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{DB: db}
}

// List returns testimonials, newest first. visibleOnly hides entries gated
// off for public display.
func (r *TestimonialRepository) List(visibleOnly bool) ([]entity.Testimonial, error) {
	q := r.DB.Order("created_at DESC, id DESC")
	if visibleOnly {
		q = q.Where("is_visible = ?", true)
	}
	var ts []entity.Testimonial
	if err := q.Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *TestimonialRepository) Create(t *entity.Testimonial) error {
	return r.DB.Create(t).Error
}

func (r *TestimonialRepository) SetVisibility(id uint, visible bool) (*entity.Testimonial, error) {
	res := r.DB.Model(&entity.Testimonial{}).Where("id = ?", id).Update("is_visible", visible)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var t entity.Testimonial
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Testimonial{}, id).Error
}
