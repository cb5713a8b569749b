package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"vastra/db"
	"vastra/mailer"
	"vastra/models"
	"vastra/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUsers is the admin directory. Search matches name or e-mail,
// case insensitive.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := bson.M{}
	if search := strings.TrimSpace(q.Get("search")); search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	page, limit, skip := utils.ParsePagination(q, 20)

	total, err := db.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		http.Error(w, "Failed to fetch users", http.StatusInternalServerError)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cursor, err := db.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		http.Error(w, "Failed to fetch users", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	list := []models.User{}
	if err := cursor.All(ctx, &list); err != nil {
		http.Error(w, "Failed to decode users", http.StatusInternalServerError)
		return
	}

	pages := (total + int64(limit) - 1) / int64(limit)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"users": list,
		"pagination": utils.M{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// BulkEmail sends the same message to the selected users, or to every
// user when no ids are given. Each recipient is attempted regardless
// of earlier failures and the response reports both counts.
func BulkEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	var req struct {
		UserIDs []string `json:"userIds"`
		Subject string   `json:"subject"`
		Message string   `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Subject == "" || req.Message == "" {
		http.Error(w, "Subject and message are required", http.StatusBadRequest)
		return
	}

	filter := bson.M{}
	if len(req.UserIDs) > 0 {
		filter["userid"] = bson.M{"$in": req.UserIDs}
	}

	cursor, err := db.UserCollection.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"email": 1}))
	if err != nil {
		http.Error(w, "Failed to fetch recipients", http.StatusInternalServerError)
		return
	}
	var recipients []models.User
	if err := cursor.All(ctx, &recipients); err != nil {
		http.Error(w, "Failed to decode recipients", http.StatusInternalServerError)
		return
	}
	if len(recipients) == 0 {
		http.Error(w, "No recipients matched", http.StatusBadRequest)
		return
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		sent     int
		failed   int
		failures []string
	)
	for _, recipient := range recipients {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			err := mailer.Send(email, req.Subject, req.Message)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				failures = append(failures, email)
				return
			}
			sent++
		}(recipient.Email)
	}
	wg.Wait()

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"sent":    sent,
		"failed":  failed,
		"errors":  failures,
	})
}
