package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
	"github.com/A3K3SH/Catering/pkg/resp"
	"github.com/A3K3SH/Catering/pkg/validate"
	"github.com/A3K3SH/Catering/repository"
)

type ProductController struct {
	products   *repository.ProductRepository
	categories *repository.CategoryRepository
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{
		products:   repository.NewProductRepository(db),
		categories: repository.NewCategoryRepository(db),
	}
}

// flexID is a row id that admin forms may submit as either a JSON number
// or a string.
type flexID uint

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = flexID(v)
	return nil
}

// productIn accepts price and categoryId as either JSON numbers or strings;
// admin forms submit them as strings.
type productIn struct {
	Name        string          `json:"name" binding:"required,min=2"`
	Description string          `json:"description" binding:"required,min=10"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
	ImageURL    string          `json:"imageUrl" binding:"required,url"`
	ServingSize string          `json:"servingSize" binding:"required"`
	CategoryID  flexID          `json:"categoryId" binding:"required"`
}

type productUpdate struct {
	Name        *string          `json:"name" binding:"omitempty,min=2"`
	Description *string          `json:"description" binding:"omitempty,min=10"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gt=0"`
	ImageURL    *string          `json:"imageUrl" binding:"omitempty,url"`
	ServingSize *string          `json:"servingSize" binding:"omitempty,min=1"`
	CategoryID  *flexID          `json:"categoryId"`
}

// GET /api/products?categoryId=
func (pc *ProductController) List(c *gin.Context) {
	var (
		products []entity.Product
		err      error
	)
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, convErr := strconv.ParseUint(raw, 10, 32)
		if convErr != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		products, err = pc.products.ListByCategory(uint(categoryID))
	} else {
		products, err = pc.products.List()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /api/products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	product, err := pc.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

// POST /api/products
func (pc *ProductController) Create(c *gin.Context) {
	var req productIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, validate.Errors(err))
		return
	}

	categoryID := uint(req.CategoryID)
	if ok, err := pc.categoryExists(c, categoryID); !ok || err != nil {
		return
	}

	product := entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		ServingSize: req.ServingSize,
		CategoryID:  categoryID,
	}
	if err := pc.products.Create(&product); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, product)
}

// PATCH /api/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req productUpdate
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
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.ServingSize != nil {
		updates["serving_size"] = *req.ServingSize
	}
	if req.CategoryID != nil {
		categoryID := uint(*req.CategoryID)
		if categoryID == 0 {
			resp.ValidationFailed(c, []validate.FieldError{{Field: "categoryId", Message: "categoryId must be a positive number"}})
			return
		}
		if ok, err := pc.categoryExists(c, categoryID); !ok || err != nil {
			return
		}
		updates["category_id"] = categoryID
	}

	product, err := pc.products.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

// DELETE /api/products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := pc.products.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// categoryExists writes the error response itself when the category is
// missing or the lookup fails.
func (pc *ProductController) categoryExists(c *gin.Context, id uint) (bool, error) {
	if _, err := pc.categories.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "category not found")
			return false, nil
		}
		resp.ServerError(c, err)
		return false, err
	}
	return true, nil
}

