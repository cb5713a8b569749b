package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"vastra/db"
	"vastra/filemgr"
	"vastra/models"
	"vastra/mq"
	"vastra/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProducts lists active products for the storefront. Category and
// featured filters come from the query string; results are newest
// first and paginated.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := bson.M{"status": "active"}
	if category := strings.TrimSpace(q.Get("category")); category != "" {
		filter["category"] = category
	}
	if q.Get("featured") == "true" {
		filter["featured"] = true
	}
	if search := strings.TrimSpace(q.Get("search")); search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	page, limit, skip := utils.ParsePagination(q, 12)

	total, err := db.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cursor, err := db.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		http.Error(w, "Failed to decode products", http.StatusInternalServerError)
		return
	}

	pages := (total + int64(limit) - 1) / int64(limit)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"products": products,
		"pagination": utils.M{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// GetProduct returns one product by id regardless of status so admins
// can preview inactive items via direct link.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": ps.ByName("productid")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to fetch product", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetCategories lists the distinct categories of active products.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	raw, err := db.ProductCollection.Distinct(ctx, "category", bson.M{"status": "active"})
	if err != nil {
		http.Error(w, "Failed to fetch categories", http.StatusInternalServerError)
		return
	}

	categories := []string{}
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"categories": categories})
}

// CreateProduct is admin only, enforced at the route.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if product.Name == "" || product.Price <= 0 {
		http.Error(w, "Name and a positive price are required", http.StatusBadRequest)
		return
	}
	if product.Status == "" {
		product.Status = "active"
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	product.ProductID = "p" + uuid.NewString()[:12]
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	mq.Emit(ctx, mq.Event{Name: "product-created", EntityID: product.ProductID})

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct applies a partial update from the request body.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	update := bson.M{}
	for _, field := range []string{
		"name", "description", "price", "originalPrice", "images",
		"category", "stock", "status", "featured", "tags",
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

	var product models.Product
	err := db.ProductCollection.FindOneAndUpdate(ctx,
		bson.M{"productid": ps.ByName("productid")},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct removes the product document. Uploaded images are
// deleted best effort.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var product models.Product
	err := db.ProductCollection.FindOneAndDelete(ctx, bson.M{"productid": productID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}

	for _, img := range product.Images {
		if err := filemgr.Remove(img); err != nil {
			log.Printf("delete image %s for product %s: %v", img, productID, err)
		}
	}

	mq.Emit(ctx, mq.Event{Name: "product-deleted", EntityID: productID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// UploadProductImages accepts multipart "images" files and appends the
// stored URLs to the product.
func UploadProductImages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{"productid": productID})
	if err != nil {
		http.Error(w, "Failed to fetch product", http.StatusInternalServerError)
		return
	}
	if count == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	urls, err := filemgr.SaveImages(r.MultipartForm, "images", filemgr.KindProduct)
	if err != nil {
		http.Error(w, "Image upload failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(urls) == 0 {
		http.Error(w, "No image files uploaded", http.StatusBadRequest)
		return
	}

	_, err = db.ProductCollection.UpdateOne(ctx,
		bson.M{"productid": productID},
		bson.M{
			"$push": bson.M{"images": bson.M{"$each": urls}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		http.Error(w, "Failed to save images", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"images": urls})
}
