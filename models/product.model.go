package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product mirrors the product documents. Category and Subcategory hold the
// referenced names, not ids -- that is how the documents were written by the
// original admin and how the storefront filters. catalog.ResolveCategoryID
// adapts the name back to an id where one is needed.
type Product struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" binding:"required"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64            `json:"price" bson:"price"`
	SalePrice    *float64           `json:"salePrice,omitempty" bson:"salePrice,omitempty"`
	Stock        int                `json:"stock" bson:"stock"`
	Category     string             `json:"category" bson:"category"`
	Subcategory  string             `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Collection   string             `json:"collection,omitempty" bson:"collection,omitempty"`
	Fabric       string             `json:"fabric,omitempty" bson:"fabric,omitempty"`
	Colors       []string           `json:"colors,omitempty" bson:"colors,omitempty"`
	Images       []string           `json:"images,omitempty" bson:"images,omitempty"`
	IsBestseller bool               `json:"isBestseller" bson:"isBestseller"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
