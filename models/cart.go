package models

import "time"

// CartItem is one (product, quantity) pair inside a cart. Quantity is
// always >= 1; a zero or negative quantity removes the entry instead.
type CartItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Cart is the single pre-checkout document for one shopper.
type Cart struct {
	UserID    string     `json:"userId" bson:"userid"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// CartLine is a cart entry resolved against the catalog for display.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}
