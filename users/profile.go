package users

import (
	"context"
	"encoding/json"
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

func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile lets the shopper edit name, phone and address. E-mail
// and admin flag are not editable here.
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name    *string         `json:"name"`
		Phone   *string         `json:"phone"`
		Address *models.Address `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Phone != nil {
		update["phone"] = *req.Phone
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if len(update) == 0 {
		http.Error(w, "No updatable fields in request", http.StatusBadRequest)
		return
	}
	update["updatedAt"] = time.Now()

	var user models.User
	err := db.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}
