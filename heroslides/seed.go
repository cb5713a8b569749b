package heroslides

import (
	"context"
	"net/http"
	"time"

	"vastra/db"
	"vastra/models"
	"vastra/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var defaultSlides = []models.HeroSlide{
	{
		Title:               "Premium Shopping Experience",
		Subtitle:            "Discover curated products with exceptional quality",
		Description:         "Experience the best in online shopping with our premium services and exceptional customer care. Trusted by 10,000+ customers.",
		Image:               "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800&h=600&fit=crop&crop=center",
		ButtonText:          "Explore Products",
		ButtonLink:          "/products",
		SecondaryButtonText: "Learn More",
		SecondaryButtonLink: "/about",
		Badge:               "Trusted by 10,000+ customers",
		Features: []models.SlideFeature{
			{Icon: "Shield", Text: "Secure Payments"},
			{Icon: "Truck", Text: "Fast Delivery"},
			{Icon: "CheckCircle", Text: "Quality Guaranteed"},
		},
		Order: 0,
	},
	{
		Title:               "Exclusive Deals & Offers",
		Subtitle:            "Save big on premium products",
		Description:         "Get amazing discounts on our curated collection. Limited time offers on the best products with guaranteed quality and fast delivery.",
		Image:               "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=800&h=600&fit=crop&crop=center",
		ButtonText:          "Shop Now",
		ButtonLink:          "/products",
		SecondaryButtonText: "View Deals",
		SecondaryButtonLink: "/categories",
		Badge:               "Limited Time Offers",
		Features: []models.SlideFeature{
			{Icon: "Zap", Text: "Flash Sales"},
			{Icon: "Heart", Text: "Wishlist Favorites"},
			{Icon: "Star", Text: "Premium Quality"},
		},
		Order: 1,
	},
	{
		Title:               "24/7 Customer Support",
		Subtitle:            "We're here to help you",
		Description:         "Our dedicated support team is available round the clock to assist you with any questions or concerns. Your satisfaction is our priority.",
		Image:               "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=800&h=600&fit=crop&crop=center",
		ButtonText:          "Contact Us",
		ButtonLink:          "/contact",
		SecondaryButtonText: "Get Help",
		SecondaryButtonLink: "/help",
		Badge:               "24/7 Support Available",
		Features: []models.SlideFeature{
			{Icon: "Headphones", Text: "Live Chat"},
			{Icon: "Shield", Text: "Secure Shopping"},
			{Icon: "CheckCircle", Text: "Easy Returns"},
		},
		Order: 2,
	},
}

// SeedSlides inserts the default slide set. Refuses to run when any
// slide already exists so an accidental call cannot duplicate content.
func SeedSlides(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	existing, err := db.HeroSlideCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Failed to seed slides", http.StatusInternalServerError)
		return
	}
	if existing > 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": false,
			"message": "Hero slides already exist. Please delete existing slides first.",
		})
		return
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(defaultSlides))
	for _, slide := range defaultSlides {
		slide.SlideID = "hs" + uuid.NewString()[:10]
		slide.IsActive = true
		slide.CreatedAt = now
		slide.UpdatedAt = now
		docs = append(docs, slide)
	}

	if _, err := db.HeroSlideCollection.InsertMany(ctx, docs); err != nil {
		http.Error(w, "Failed to seed slides", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"slides":  docs,
	})
}
