package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
	"github.com/A3K3SH/Catering/pkg/resp"
	"github.com/A3K3SH/Catering/pkg/validate"
	"github.com/A3K3SH/Catering/repository"
)

type CategoryController struct {
	categories *repository.CategoryRepository
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{categories: repository.NewCategoryRepository(db)}
}

type categoryIn struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description"`
}

type categoryUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Description *string `json:"description"`
}

// GET /api/categories
func (cc *CategoryController) List(c *gin.Context) {
	cats, err := cc.categories.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /api/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, validate.Errors(err))
		return
	}

	cat := entity.Category{Name: req.Name, Description: req.Description}
	if err := cc.categories.Create(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /api/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req categoryUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, validate.Errors(err))
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	cat, err := cc.categories.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /api/categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := cc.categories.Delete(id); err != nil {
		if errors.Is(err, repository.ErrCategoryHasProducts) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
