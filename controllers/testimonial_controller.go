package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
	"github.com/A3K3SH/Catering/pkg/resp"
	"github.com/A3K3SH/Catering/pkg/validate"
	"github.com/A3K3SH/Catering/repository"
)

type TestimonialController struct {
	testimonials *repository.TestimonialRepository
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{testimonials: repository.NewTestimonialRepository(db)}
}

type testimonialIn struct {
	Name      string          `json:"name" binding:"required,min=2"`
	AvatarURL string          `json:"avatarUrl" binding:"required,url"`
	Rating    decimal.Decimal `json:"rating" binding:"required,min=1,max=5"`
	Comment   string          `json:"comment" binding:"required,min=10"`
	EventType string          `json:"eventType" binding:"required"`
	IsVisible *bool           `json:"isVisible"`
}

type visibilityIn struct {
	IsVisible *bool `json:"isVisible" binding:"required"`
}

// GET /api/testimonials?admin=
// The admin query flag bypasses the visibility filter.
func (tc *TestimonialController) List(c *gin.Context) {
	visibleOnly := c.Query("admin") != "true"
	ts, err := tc.testimonials.List(visibleOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ts)
}

// POST /api/testimonials
func (tc *TestimonialController) Create(c *gin.Context) {
	var req testimonialIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, validate.Errors(err))
		return
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}
	t := entity.Testimonial{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Rating:    req.Rating,
		Comment:   req.Comment,
		EventType: req.EventType,
		IsVisible: visible,
	}
	if err := tc.testimonials.Create(&t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

// PATCH /api/testimonials/:id/visibility
func (tc *TestimonialController) SetVisibility(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req visibilityIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, validate.Errors(err))
		return
	}

	t, err := tc.testimonials.SetVisibility(id, *req.IsVisible)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Testimonial not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /api/testimonials/:id
func (tc *TestimonialController) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := tc.testimonials.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
