package tryon

import (
	"context"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vastra/db"
	"vastra/models"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func parseFloat(v string, fallback float64) float64 {
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// TryOn composites a product image onto the uploaded shopper photo.
// Form fields: photo (file, required), productId or garment (file),
// x, y, scale, rotation.
func TryOn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	photo, err := formImage(r, "photo")
	if err != nil {
		http.Error(w, "A photo image is required", http.StatusBadRequest)
		return
	}

	garment, err := formImage(r, "garment")
	if err != nil {
		garment, err = productImage(ctx, r.FormValue("productId"))
		if err != nil {
			http.Error(w, "No garment image: upload one or pass a productId with images", http.StatusBadRequest)
			return
		}
	}

	placement := Placement{
		OffsetX:  parseFloat(r.FormValue("x"), 0),
		OffsetY:  parseFloat(r.FormValue("y"), 0),
		Scale:    parseFloat(r.FormValue("scale"), 1),
		Rotation: parseFloat(r.FormValue("rotation"), 0),
	}

	result := Composite(photo, garment, placement)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, result); err != nil {
		// Headers are gone already. Nothing left to do but log via the
		// request logger upstream.
		return
	}
}

func formImage(r *http.Request, field string) (image.Image, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	return img, err
}

// productImage loads the first catalog image of the product from the
// local uploads directory.
func productImage(ctx context.Context, productID string) (image.Image, error) {
	if productID == "" {
		return nil, mongo.ErrNoDocuments
	}
	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product)
	if err != nil {
		return nil, err
	}
	if len(product.Images) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	path := strings.TrimPrefix(product.Images[0], "/")
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}
