package catalog

import (
	"testing"

	"genzshop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fixture() ([]models.Category, []models.Subcategory) {
	silkID := primitive.NewObjectID()
	cottonID := primitive.NewObjectID()
	categories := []models.Category{
		{ID: silkID, Name: "Soft Silk"},
		{ID: cottonID, Name: "Cotton"},
	}
	subcategories := []models.Subcategory{
		{Name: "Tussar Silk", CategoryID: silkID, CategoryName: "Soft Silk"},
		{Name: "Banarasi", CategoryID: silkID, CategoryName: "Soft Silk"},
		{Name: "Handloom", CategoryID: cottonID, CategoryName: "Cotton"},
	}
	return categories, subcategories
}

func TestResolveCategoryID(t *testing.T) {
	categories, _ := fixture()

	id, ok := ResolveCategoryID("Cotton", categories)
	require.True(t, ok)
	assert.Equal(t, categories[1].ID, id)

	_, ok = ResolveCategoryID("Linen", categories)
	assert.False(t, ok)

	// Name matching is exact, not case-folded.
	_, ok = ResolveCategoryID("cotton", categories)
	assert.False(t, ok)
}

func TestCategoryNameFor(t *testing.T) {
	categories, _ := fixture()

	assert.Equal(t, "Soft Silk", CategoryNameFor(categories[0].ID, categories))
	assert.Equal(t, "", CategoryNameFor(primitive.NewObjectID(), categories))
}

func TestSubcategoriesFor(t *testing.T) {
	categories, subcategories := fixture()

	children := SubcategoriesFor(categories[0].ID, subcategories)
	require.Len(t, children, 2)
	assert.Equal(t, "Tussar Silk", children[0].Name)
	assert.Equal(t, "Banarasi", children[1].Name)

	assert.Empty(t, SubcategoriesFor(primitive.NewObjectID(), subcategories))
}

func TestSubcategoriesForCategoryName(t *testing.T) {
	categories, subcategories := fixture()

	children := SubcategoriesForCategoryName("Cotton", categories, subcategories)
	require.Len(t, children, 1)
	assert.Equal(t, "Handloom", children[0].Name)

	// Unknown name (e.g. a deleted category still referenced by a
	// product) yields an empty set, never an error.
	assert.Empty(t, SubcategoriesForCategoryName("Linen", categories, subcategories))
}

func TestApplyCategoryChangeClearsSubcategory(t *testing.T) {
	existing := models.Product{Category: "Soft Silk", Subcategory: "Banarasi"}

	moved := models.Product{Category: "Cotton", Subcategory: "Banarasi"}
	ApplyCategoryChange(existing, &moved)
	assert.Equal(t, "", moved.Subcategory)

	same := models.Product{Category: "Soft Silk", Subcategory: "Banarasi"}
	ApplyCategoryChange(existing, &same)
	assert.Equal(t, "Banarasi", same.Subcategory)
}
