package models

import "time"

// Order statuses. Transitions are not validated anywhere; an admin may
// set any status over any other.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderDispatched = "dispatched"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// OrderItem is a line item with the unit price captured at order time.
type OrderItem struct {
	ProductID string  `json:"product" bson:"productId"`
	Name      string  `json:"name,omitempty" bson:"name,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

type Order struct {
	OrderID         string      `json:"orderId" bson:"orderid"`
	UserID          string      `json:"userId" bson:"userid"`
	Items           []OrderItem `json:"items" bson:"items"`
	Subtotal        float64     `json:"subtotal" bson:"subtotal"`
	Shipping        float64     `json:"shipping" bson:"shipping"`
	Tax             float64     `json:"tax" bson:"tax"`
	TotalAmount     float64     `json:"totalAmount" bson:"totalAmount"`
	ShippingAddress Address     `json:"shippingAddress" bson:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod" bson:"paymentMethod"` // "cod", "upi", "card", labels only
	Status          string      `json:"status" bson:"status"`
	PaymentStatus   string      `json:"paymentStatus" bson:"paymentStatus"`
	CreatedAt       time.Time   `json:"createdAt" bson:"createdAt"`
}
