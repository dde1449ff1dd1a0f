package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a top-level catalog entry. Name doubles as the key products
// reference in their category field.
type Category struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" binding:"required"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	Link      string             `json:"link,omitempty" bson:"link,omitempty"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Subcategory belongs to exactly one category. CategoryName is denormalized
// for display and is recomputed from CategoryID on every save, never trusted
// from the incoming payload.
type Subcategory struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" binding:"required"`
	CategoryID   primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	CategoryName string             `json:"categoryName" bson:"categoryName"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	Active       bool               `json:"active" bson:"active"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
