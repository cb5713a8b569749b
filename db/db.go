package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection      *mongo.Collection
	ProductCollection   *mongo.Collection
	CartCollection      *mongo.Collection
	OrderCollection     *mongo.Collection
	HeroSlideCollection *mongo.Collection
	EventsCollection    *mongo.Collection
	Client              *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("storedb").Collection("users")
	ProductCollection = Client.Database("storedb").Collection("products")
	CartCollection = Client.Database("storedb").Collection("carts")
	OrderCollection = Client.Database("storedb").Collection("orders")
	HeroSlideCollection = Client.Database("storedb").Collection("heroslides")
	EventsCollection = Client.Database("storedb").Collection("events")
}
