package heroslides

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vastra/db"
	"vastra/models"
	"vastra/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetSlides returns slides sorted by (order asc, createdAt desc). The
// storefront wants active slides only; admins pass ?all=true to manage
// the full set.
func GetSlides(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if r.URL.Query().Get("all") == "true" && utils.IsAdminRequest(r) {
		filter = bson.M{}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: -1},
	})
	cursor, err := db.HeroSlideCollection.Find(ctx, filter, opts)
	if err != nil {
		http.Error(w, "Failed to fetch slides", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	slides := []models.HeroSlide{}
	if err := cursor.All(ctx, &slides); err != nil {
		http.Error(w, "Failed to decode slides", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"slides": slides})
}

// CreateSlide places the new slide after the current last one.
func CreateSlide(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var slide models.HeroSlide
	if err := json.NewDecoder(r.Body).Decode(&slide); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if slide.Title == "" || slide.Image == "" {
		http.Error(w, "Title and image are required", http.StatusBadRequest)
		return
	}
	if slide.Features == nil {
		slide.Features = []models.SlideFeature{}
	}

	slide.SlideID = "hs" + uuid.NewString()[:10]
	slide.Order = nextOrder(ctx)
	slide.IsActive = true
	slide.CreatedAt = time.Now()
	slide.UpdatedAt = slide.CreatedAt

	if _, err := db.HeroSlideCollection.InsertOne(ctx, slide); err != nil {
		http.Error(w, "Failed to create slide", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, slide)
}

func nextOrder(ctx context.Context) int {
	var last models.HeroSlide
	err := db.HeroSlideCollection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}}),
	).Decode(&last)
	if err != nil {
		return 0
	}
	return last.Order + 1
}

// UpdateSlide applies a partial update.
func UpdateSlide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	update := bson.M{}
	for _, field := range []string{
		"title", "subtitle", "description", "image", "buttonText",
		"buttonLink", "secondaryButtonText", "secondaryButtonLink",
		"badge", "features", "isActive", "order",
	} {
		if v, ok := body[field]; ok {
			update[field] = v
		}
	}
	if len(update) == 0 {
		http.Error(w, "No updatable fields in request", http.StatusBadRequest)
		return
	}
	update["updatedAt"] = time.Now()

	var slide models.HeroSlide
	err := db.HeroSlideCollection.FindOneAndUpdate(ctx,
		bson.M{"slideid": ps.ByName("slideid")},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&slide)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Slide not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to update slide", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, slide)
}

func DeleteSlide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.HeroSlideCollection.DeleteOne(ctx, bson.M{"slideid": ps.ByName("slideid")})
	if err != nil {
		http.Error(w, "Failed to delete slide", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Slide not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// ReorderSlides takes the full list of slide ids in display order. The
// index of each id in the array becomes its order value.
func ReorderSlides(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		SlideIDs []string `json:"slideIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SlideIDs == nil {
		http.Error(w, "slideIds must be an array", http.StatusBadRequest)
		return
	}

	for index, slideID := range req.SlideIDs {
		_, err := db.HeroSlideCollection.UpdateOne(ctx,
			bson.M{"slideid": slideID},
			bson.M{"$set": bson.M{"order": index, "updatedAt": time.Now()}},
		)
		if err != nil {
			http.Error(w, "Failed to reorder slides", http.StatusInternalServerError)
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
