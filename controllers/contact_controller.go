package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
	"github.com/A3K3SH/Catering/pkg/resp"
	"github.com/A3K3SH/Catering/pkg/validate"
	"github.com/A3K3SH/Catering/repository"
)

type ContactController struct {
	contacts *repository.ContactRepository
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{contacts: repository.NewContactRepository(db)}
}

type contactIn struct {
	Name      string `json:"name" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=6"`
	EventType string `json:"eventType" binding:"required"`
	Message   string `json:"message" binding:"required,min=10"`
}

// POST /api/contact
func (cc *ContactController) Create(c *gin.Context) {
	var req contactIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, validate.Errors(err))
		return
	}

	sub := entity.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		Message:   req.Message,
	}
	if err := cc.contacts.Create(&sub); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, sub)
}

// GET /api/contact
func (cc *ContactController) List(c *gin.Context) {
	subs, err := cc.contacts.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, subs)
}
