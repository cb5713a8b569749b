package analytics

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
)

// LogEvents accepts a batch of client events. Auth is optional; when
// a token is present the events get stamped with the user id.
func LogEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var events []models.Event
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(events) == 0 {
		http.Error(w, "No events in batch", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	now := time.Now()
	docs := make([]interface{}, 0, len(events))
	for i := range events {
		if events[i].Name == "" {
			http.Error(w, "Every event needs a name", http.StatusBadRequest)
			return
		}
		if userID != "" {
			events[i].UserID = userID
		}
		events[i].Timestamp = now
		docs = append(docs, events[i])
	}

	if _, err := db.EventsCollection.InsertMany(ctx, docs); err != nil {
		log.Println("failed to insert analytics events:", err)
		http.Error(w, "Failed to log events", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"logged": len(events)})
}

// Summary aggregates the admin dashboard numbers: order count and
// revenue, user count, and event counts grouped by name.
func Summary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	ordersAgg := []bson.M{
		{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalAmount"},
		}},
	}
	cursor, err := db.OrderCollection.Aggregate(ctx, ordersAgg)
	if err != nil {
		http.Error(w, "Failed to aggregate orders", http.StatusInternalServerError)
		return
	}
	var orderTotals []struct {
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &orderTotals); err != nil {
		http.Error(w, "Failed to aggregate orders", http.StatusInternalServerError)
		return
	}
	var orderCount int64
	var revenue float64
	if len(orderTotals) > 0 {
		orderCount = orderTotals[0].Count
		revenue = orderTotals[0].Revenue
	}

	userCount, err := db.UserCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Failed to count users", http.StatusInternalServerError)
		return
	}

	eventsAgg := []bson.M{
		{"$group": bson.M{
			"_id":   "$name",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
	}
	cursor, err = db.EventsCollection.Aggregate(ctx, eventsAgg)
	if err != nil {
		http.Error(w, "Failed to aggregate events", http.StatusInternalServerError)
		return
	}
	var eventRows []struct {
		Name  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &eventRows); err != nil {
		http.Error(w, "Failed to aggregate events", http.StatusInternalServerError)
		return
	}
	eventsByName := map[string]int64{}
	for _, row := range eventRows {
		eventsByName[row.Name] = row.Count
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"orders":  orderCount,
		"revenue": revenue,
		"users":   userCount,
		"events":  eventsByName,
	})
}
