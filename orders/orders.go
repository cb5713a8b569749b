package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vastra/cart"
	"vastra/db"
	"vastra/models"
	"vastra/mq"
	"vastra/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaceOrder converts the submitted cart snapshot into a durable order and
// then clears the server cart. The two writes are separate persistence
// calls: a failed cart delete after a successful insert is logged and
// accepted, and nothing guards against a double submission.
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Items           []models.OrderItem `json:"items"`
		ShippingAddress models.Address     `json:"shippingAddress"`
		PaymentMethod   string             `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "Order has no items", http.StatusBadRequest)
		return
	}
	for _, it := range input.Items {
		if it.ProductID == "" || it.Quantity < 1 {
			http.Error(w, "Invalid order item", http.StatusBadRequest)
			return
		}
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = "cod"
	}

	items, err := captureUnitPrices(ctx, input.Items)
	if err != nil {
		log.Println("PlaceOrder price capture error:", err)
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	subtotal, shipping, tax, total := ComputeTotals(items)

	order := models.Order{
		OrderID:         "ORD" + uuid.NewString()[:8],
		UserID:          userID,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		TotalAmount:     total,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Status:          models.OrderPending,
		PaymentStatus:   models.PaymentUnpaid,
		CreatedAt:       time.Now(),
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("PlaceOrder InsertOne error:", err)
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	// Best-effort: an order without a cleared cart is an accepted
	// inconsistency, not a rollback trigger.
	if err := cart.ClearCart(ctx, userID); err != nil {
		log.Println("PlaceOrder cart cleanup error:", err)
	}

	mq.Emit(ctx, mq.Event{Name: "order-placed", EntityID: order.OrderID, UserID: userID})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders lists the caller's orders, or every order for an admin.
// Supports ?status= and page/limit, newest first.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if !utils.IsAdminRequest(r) {
		filter["userid"] = userID
	}

	page, limit, skip := utils.ParsePagination(r.URL.Query(), 10)

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := db.OrderCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		http.Error(w, "Failed to fetch orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetOrders cursor error:", err)
		http.Error(w, "Failed to fetch orders", http.StatusInternalServerError)
		return
	}

	total, err := db.OrderCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("GetOrders count error:", err)
		http.Error(w, "Failed to fetch orders", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"orders": orders,
		"pagination": utils.M{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetOrder returns one order for its owner or an admin.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, err := findOrder(ctx, ps.ByName("orderid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Println("GetOrder FindOne error:", err)
		http.Error(w, "Failed to fetch order", http.StatusInternalServerError)
		return
	}

	if order.UserID != userID && !utils.IsAdminRequest(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateOrder lets an admin set orderStatus and/or paymentStatus. The
// values must be known labels but any value may overwrite any other;
// there is no transition table.
func UpdateOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Status        string `json:"status"`
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if input.Status != "" {
		if !KnownStatus(input.Status) {
			http.Error(w, "Unknown order status", http.StatusBadRequest)
			return
		}
		set["status"] = input.Status
	}
	if input.PaymentStatus != "" {
		if !KnownPaymentStatus(input.PaymentStatus) {
			http.Error(w, "Unknown payment status", http.StatusBadRequest)
			return
		}
		set["paymentStatus"] = input.PaymentStatus
	}
	if len(set) == 0 {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	orderID := ps.ByName("orderid")
	res := db.OrderCollection.FindOneAndUpdate(ctx,
		bson.M{"orderid": orderID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var order models.Order
	if err := res.Decode(&order); err == mongo.ErrNoDocuments {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Println("UpdateOrder error:", err)
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}

	BroadcastStatus(order)

	utils.RespondWithJSON(w, http.StatusOK, order)
}

func findOrder(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order)
	return order, err
}

// captureUnitPrices pins each line to the catalog price at order time.
// Items whose product is gone keep the submitted price.
func captureUnitPrices(ctx context.Context, items []models.OrderItem) ([]models.OrderItem, error) {
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

	out := make([]models.OrderItem, len(items))
	for i, it := range items {
		if p, ok := byID[it.ProductID]; ok {
			it.Price = p.Price
			it.Name = p.Name
		}
		out[i] = it
	}
	return out, nil
}
