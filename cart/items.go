package cart

import "vastra/models"

// The item list operations are pure so the invariants are easy to hold:
// productId is unique per cart and no surviving entry has quantity <= 0.

// ApplyAdd increments the entry's quantity, or appends a new entry.
func ApplyAdd(items []models.CartItem, productID string, quantity int) []models.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, models.CartItem{ProductID: productID, Quantity: quantity})
}

// ApplySetQuantity overwrites the entry's quantity, removing it when the
// quantity drops to zero or below. The bool reports whether the entry existed.
func ApplySetQuantity(items []models.CartItem, productID string, quantity int) ([]models.CartItem, bool) {
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			return append(items[:i], items[i+1:]...), true
		}
		items[i].Quantity = quantity
		return items, true
	}
	return items, false
}

// ApplyRemove deletes the entry if present; absent entries are a no-op.
func ApplyRemove(items []models.CartItem, productID string) []models.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// Total is the display total: sum of price x quantity over resolved lines.
func Total(lines []models.CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}
