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
	UserCollection        *mongo.Collection
	CoursesCollection     *mongo.Collection
	HotelsCollection      *mongo.Collection
	RestaurantsCollection *mongo.Collection
	ExperiencesCollection *mongo.Collection
	PackagesCollection    *mongo.Collection
	ItineraryCollection   *mongo.Collection
	BookingsCollection    *mongo.Collection
	LocksCollection       *mongo.Collection
	PaymentsCollection    *mongo.Collection
	IdempotencyCollection *mongo.Collection
	ReviewsCollection     *mongo.Collection
	MapsCollection        *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "fairwaydb"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database(dbName)
	UserCollection = database.Collection("users")
	CoursesCollection = database.Collection("courses")
	HotelsCollection = database.Collection("hotels")
	RestaurantsCollection = database.Collection("restaurants")
	ExperiencesCollection = database.Collection("experiences")
	PackagesCollection = database.Collection("packages")
	ItineraryCollection = database.Collection("itineraries")
	BookingsCollection = database.Collection("bookings")
	LocksCollection = database.Collection("slotlocks")
	PaymentsCollection = database.Collection("payments")
	IdempotencyCollection = database.Collection("idempotency")
	ReviewsCollection = database.Collection("reviews")
	MapsCollection = database.Collection("maps")
}
