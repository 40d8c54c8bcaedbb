package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A3K3SH/Catering/entity"
)

func TestCategoryListOrderedByName(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	for _, name := range []string{"Desserts", "Appetizers", "Main Course"} {
		require.NoError(t, repo.Create(&entity.Category{Name: name}))
	}

	cats, err := repo.List()
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Appetizers", cats[0].Name)
	assert.Equal(t, "Desserts", cats[1].Name)
	assert.Equal(t, "Main Course", cats[2].Name)
}

func TestCategoryUpdateReturnsPostWriteRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	cat := entity.Category{Name: "Beverages", Description: "drinks"}
	require.NoError(t, repo.Create(&cat))

	updated, err := repo.Update(cat.ID, map[string]any{"description": "hot and cold drinks"})
	require.NoError(t, err)
	assert.Equal(t, "Beverages", updated.Name)
	assert.Equal(t, "hot and cold drinks", updated.Description)

	// empty patch is a read-through
	same, err := repo.Update(cat.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, updated.Description, same.Description)
}

func TestCategoryDeleteBlockedByProducts(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	cat := entity.Category{Name: "Main Course"}
	require.NoError(t, repo.Create(&cat))
	require.NoError(t, db.Create(&entity.Product{
		Name:        "Butter Chicken",
		Description: "Chicken in a creamy tomato sauce.",
		Price:       decimal.RequireFromString("450.00"),
		ImageURL:    "https://example.com/bc.jpg",
		ServingSize: "2-3",
		CategoryID:  cat.ID,
	}).Error)

	err := repo.Delete(cat.ID)
	require.ErrorIs(t, err, ErrCategoryHasProducts)

	// category row must still be present
	_, err = repo.FindByID(cat.ID)
	require.NoError(t, err)
}

func TestCategoryDeleteWithoutProducts(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	cat := entity.Category{Name: "Party Platters"}
	require.NoError(t, repo.Create(&cat))

	require.NoError(t, repo.Delete(cat.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Category{}).Where("id = ?", cat.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCategoryDeleteMissingIsNoop(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	require.NoError(t, repo.Delete(9999))
}
