// Package catalog holds the category -> subcategory -> product relationship
// rules. Products reference their category by name, not id (that is how the
// documents were written and how the storefront filters), so the name->id
// adapter lives here rather than leaking into every handler.
package catalog

import (
	"genzshop-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolveCategoryID finds the category with the given name in the loaded
// list. The match is exact and case-sensitive, same as the stored product
// documents.
func ResolveCategoryID(name string, categories []models.Category) (primitive.ObjectID, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c.ID, true
		}
	}
	return primitive.NilObjectID, false
}

// CategoryNameFor returns the name of the category with the given id, or ""
// when the id no longer resolves. Subcategory saves use this to recompute
// the denormalized categoryName instead of trusting stale form state.
func CategoryNameFor(id primitive.ObjectID, categories []models.Category) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// SubcategoriesFor returns the direct children of the category id.
func SubcategoriesFor(categoryID primitive.ObjectID, subs []models.Subcategory) []models.Subcategory {
	children := make([]models.Subcategory, 0)
	for _, s := range subs {
		if s.CategoryID == categoryID {
			children = append(children, s)
		}
	}
	return children
}

// SubcategoriesForCategoryName is the name->id adapter used by the product
// edit form. An unknown category name yields an empty set, not an error --
// products can point at a deleted category and the form just offers no
// subcategories.
func SubcategoriesForCategoryName(name string, categories []models.Category, subs []models.Subcategory) []models.Subcategory {
	id, ok := ResolveCategoryID(name, categories)
	if !ok {
		return []models.Subcategory{}
	}
	return SubcategoriesFor(id, subs)
}

// ApplyCategoryChange clears the subcategory whenever the incoming update
// moves the product to a different category, so no subcategory reference
// survives across a category boundary.
func ApplyCategoryChange(existing models.Product, update *models.Product) {
	if update.Category != existing.Category {
		update.Subcategory = ""
	}
}
