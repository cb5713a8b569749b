package models

import "time"

type Product struct {
	ProductID     string    `json:"productId" bson:"productid"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Images        []string  `json:"images" bson:"images"`
	Category      string    `json:"category" bson:"category"`
	Stock         int       `json:"stock" bson:"stock"` // advisory only, never decremented by checkout
	Status        string    `json:"status" bson:"status"` // "active", "inactive", "out-of-stock"
	Featured      bool      `json:"featured" bson:"featured"`
	Tags          []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
