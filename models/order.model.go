package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses known to the store. Anything else in the database is
// ignored by the status counters rather than rejected.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderStatuses lists the valid statuses in display order.
var OrderStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// IsValidStatus reports whether s is one of the known order statuses.
func IsValidStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem is a single line item inside an order document.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
}

// ShippingAddress holds the customer contact block of an order. Email is the
// identity key used by the customer roll-up.
type ShippingAddress struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
}

// Order mirrors the order documents in MongoDB. Older documents carry the
// amount under total or subtotal instead of totalAmount, so all three are
// pointers; see analytics.ResolveAmount for the precedence rule.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderID         string             `json:"orderId" bson:"orderId"`
	Items           []OrderItem        `json:"items" bson:"items"`
	TotalAmount     *float64           `json:"totalAmount,omitempty" bson:"totalAmount,omitempty"`
	Total           *float64           `json:"total,omitempty" bson:"total,omitempty"`
	Subtotal        *float64           `json:"subtotal,omitempty" bson:"subtotal,omitempty"`
	ShippingCost    *float64           `json:"shippingCost,omitempty" bson:"shippingCost,omitempty"`
	Status          string             `json:"status" bson:"status"`
	PaymentMethod   string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaymentStatus   string             `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	ShippingAddress ShippingAddress    `json:"shippingAddress" bson:"shippingAddress"`
	CreatedAt       time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// OrderStatusUpdate is the payload for PUT /orders/:id. Only the status can
// change after checkout.
type OrderStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
