package orders

import (
	"math"
	"testing"

	"vastra/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotalsWithShipping(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "p1", Price: 100, Quantity: 2},
		{ProductID: "p2", Price: 50, Quantity: 1},
	}
	subtotal, shipping, tax, total := ComputeTotals(items)
	if !almostEqual(subtotal, 250) {
		t.Fatalf("subtotal: expected 250, got %v", subtotal)
	}
	if !almostEqual(shipping, 50) {
		t.Fatalf("shipping: expected 50, got %v", shipping)
	}
	if !almostEqual(tax, 45) {
		t.Fatalf("tax: expected 45, got %v", tax)
	}
	if !almostEqual(total, 345) {
		t.Fatalf("total: expected 345, got %v", total)
	}
}

func TestFreeShippingStrictlyAbove(t *testing.T) {
	// exactly 500 still pays shipping
	at := []models.OrderItem{{ProductID: "p1", Price: 500, Quantity: 1}}
	if _, shipping, _, _ := ComputeTotals(at); !almostEqual(shipping, 50) {
		t.Fatalf("subtotal 500: expected shipping 50, got %v", shipping)
	}

	above := []models.OrderItem{{ProductID: "p1", Price: 500.01, Quantity: 1}}
	if _, shipping, _, _ := ComputeTotals(above); !almostEqual(shipping, 0) {
		t.Fatalf("subtotal 500.01: expected free shipping, got %v", shipping)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	subtotal, shipping, tax, total := ComputeTotals(nil)
	if subtotal != 0 || tax != 0 {
		t.Fatalf("expected zero subtotal and tax, got %v / %v", subtotal, tax)
	}
	if !almostEqual(shipping, 50) || !almostEqual(total, 50) {
		t.Fatalf("empty order still carries the shipping fee, got shipping %v total %v", shipping, total)
	}
}

func TestStatusMembershipOnly(t *testing.T) {
	for _, s := range []string{
		models.OrderPending, models.OrderConfirmed, models.OrderDispatched,
		models.OrderDelivered, models.OrderCancelled,
	} {
		if !KnownStatus(s) {
			t.Fatalf("expected %q to be a known status", s)
		}
	}
	if KnownStatus("shipped") {
		t.Fatal("unexpected status accepted")
	}
	if !KnownPaymentStatus(models.PaymentUnpaid) || !KnownPaymentStatus(models.PaymentPaid) {
		t.Fatal("expected unpaid/paid to be known payment statuses")
	}
	if KnownPaymentStatus("refunded") {
		t.Fatal("unexpected payment status accepted")
	}
	// There is intentionally no ordering between statuses: a delivered
	// order may be set back to pending. Membership is the only check.
}
