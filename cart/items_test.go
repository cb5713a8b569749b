package cart

import (
	"testing"

	"vastra/models"
)

func TestApplyAddMergesDuplicates(t *testing.T) {
	items := []models.CartItem{}
	items = ApplyAdd(items, "p1", 2)
	items = ApplyAdd(items, "p1", 3)
	items = ApplyAdd(items, "p2", 1)

	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].ProductID != "p1" || items[0].Quantity != 5 {
		t.Fatalf("expected p1 quantity 5, got %+v", items[0])
	}
	if items[1].ProductID != "p2" || items[1].Quantity != 1 {
		t.Fatalf("expected p2 quantity 1, got %+v", items[1])
	}
}

func TestApplySetQuantityOverwrites(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Quantity: 5}}
	items, found := ApplySetQuantity(items, "p1", 2)
	if !found {
		t.Fatal("expected entry to be found")
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestApplySetQuantityZeroRemoves(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		items := []models.CartItem{
			{ProductID: "p1", Quantity: 5},
			{ProductID: "p2", Quantity: 1},
		}
		items, found := ApplySetQuantity(items, "p1", qty)
		if !found {
			t.Fatalf("qty %d: expected entry to be found", qty)
		}
		if len(items) != 1 || items[0].ProductID != "p2" {
			t.Fatalf("qty %d: expected only p2 to survive, got %+v", qty, items)
		}
	}
}

func TestApplySetQuantityMissing(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Quantity: 1}}
	_, found := ApplySetQuantity(items, "nope", 3)
	if found {
		t.Fatal("expected missing entry to report found=false")
	}
}

func TestApplyRemove(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}
	items = ApplyRemove(items, "p1")
	if len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("expected only p2, got %+v", items)
	}

	// absent product is a no-op
	items = ApplyRemove(items, "ghost")
	if len(items) != 1 {
		t.Fatalf("expected remove of absent entry to change nothing, got %+v", items)
	}
}

func TestNoSurvivingEntryBelowOne(t *testing.T) {
	items := []models.CartItem{}
	items = ApplyAdd(items, "a", 1)
	items = ApplyAdd(items, "b", 4)
	items, _ = ApplySetQuantity(items, "a", 0)
	items, _ = ApplySetQuantity(items, "b", -2)
	for _, it := range items {
		if it.Quantity <= 0 {
			t.Fatalf("entry with quantity <= 0 survived: %+v", it)
		}
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestTotal(t *testing.T) {
	lines := []models.CartLine{
		{ID: "p1", Price: 100, Quantity: 2},
		{ID: "p2", Price: 49.5, Quantity: 1},
	}
	if got := Total(lines); got != 249.5 {
		t.Fatalf("expected 249.5, got %v", got)
	}
	if got := Total(nil); got != 0 {
		t.Fatalf("expected 0 for empty cart, got %v", got)
	}
}
