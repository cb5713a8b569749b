package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vastra/db"
	"vastra/models"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCart returns the shopper's cart resolved against the catalog.
// A shopper without a cart document gets an empty item list.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var c models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": []models.CartLine{}})
		return
	} else if err != nil {
		log.Println("GetCart FindOne error:", err)
		http.Error(w, "Failed to fetch cart", http.StatusInternalServerError)
		return
	}

	lines, err := resolveLines(ctx, c.Items)
	if err != nil {
		log.Println("GetCart resolve error:", err)
		http.Error(w, "Failed to fetch cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": lines})
}

// AddToCart lazily creates the cart and increments or appends the entry.
// No stock check happens here; stock is display data only.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if input.ProductID == "" {
		http.Error(w, "Missing productId", http.StatusBadRequest)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 0 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	c, err := loadOrNewCart(ctx, userID)
	if err != nil {
		log.Println("AddToCart load error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	c.Items = ApplyAdd(c.Items, input.ProductID, input.Quantity)
	if err := saveCart(ctx, c); err != nil {
		log.Println("AddToCart save error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Item added to cart"})
}

// UpdateCart sets an entry's quantity; zero or below removes the entry.
func UpdateCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ProductID == "" {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var c models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Println("UpdateCart FindOne error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	items, found := ApplySetQuantity(c.Items, input.ProductID, input.Quantity)
	if !found {
		http.Error(w, "Item not found in cart", http.StatusNotFound)
		return
	}
	c.Items = items

	if err := saveCart(ctx, c); err != nil {
		log.Println("UpdateCart save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Cart updated successfully"})
}

// RemoveFromCart deletes an entry; removing an absent entry succeeds.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ProductID == "" {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var c models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Println("RemoveFromCart FindOne error:", err)
		http.Error(w, "Failed to remove item from cart", http.StatusInternalServerError)
		return
	}

	c.Items = ApplyRemove(c.Items, input.ProductID)
	if err := saveCart(ctx, c); err != nil {
		log.Println("RemoveFromCart save error:", err)
		http.Error(w, "Failed to remove item from cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}

// Clear empties the shopper's cart via the explicit endpoint.
func Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := ClearCart(ctx, userID); err != nil {
		log.Println("Clear cart error:", err)
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// ClearCart deletes the shopper's cart document. Used by checkout and the
// explicit clear endpoint; a missing document is not an error.
func ClearCart(ctx context.Context, userID string) error {
	_, err := db.CartCollection.DeleteOne(ctx, bson.M{"userid": userID})
	return err
}

func loadOrNewCart(ctx context.Context, userID string) (models.Cart, error) {
	var c models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	return c, err
}

func saveCart(ctx context.Context, c models.Cart) error {
	c.UpdatedAt = time.Now()
	_, err := db.CartCollection.ReplaceOne(ctx,
		bson.M{"userid": c.UserID}, c, options.Replace().SetUpsert(true))
	return err
}

// resolveLines joins cart entries with the catalog; entries whose product
// has vanished are dropped from the view but left in the document.
func resolveLines(ctx context.Context, items []models.CartItem) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	if len(items) == 0 {
		return lines, nil
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	cursor, err := db.ProductCollection.Find(ctx, bson.M{"productid": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		lines = append(lines, models.CartLine{
			ID:       p.ProductID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    image,
			Quantity: it.Quantity,
		})
	}
	return lines, nil
}
