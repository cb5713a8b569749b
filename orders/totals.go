package orders

import "vastra/models"

// Fixed business constants, not configurable policy.
const (
	ShippingFee       = 50.0
	FreeShippingAbove = 500.0 // fee waived strictly above this subtotal
	TaxRate           = 0.18
)

// ComputeTotals derives the charge breakdown from the captured line items.
func ComputeTotals(items []models.OrderItem) (subtotal, shipping, tax, total float64) {
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	shipping = ShippingFee
	if subtotal > FreeShippingAbove {
		shipping = 0
	}
	tax = subtotal * TaxRate
	return subtotal, shipping, tax, subtotal + shipping + tax
}

var knownStatuses = map[string]bool{
	models.OrderPending:    true,
	models.OrderConfirmed:  true,
	models.OrderDispatched: true,
	models.OrderDelivered:  true,
	models.OrderCancelled:  true,
}

var knownPaymentStatuses = map[string]bool{
	models.PaymentUnpaid: true,
	models.PaymentPaid:   true,
}

// KnownStatus reports whether s is one of the five order statuses. Which
// status may follow which is deliberately not checked anywhere.
func KnownStatus(s string) bool { return knownStatuses[s] }

func KnownPaymentStatus(s string) bool { return knownPaymentStatuses[s] }
