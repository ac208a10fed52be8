package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/rdx"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const restaurantsCacheKey = "catalog:restaurants"

// GET /api/restaurants
func GetRestaurants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := commonFilter(r)
	if cuisine := r.URL.Query().Get("cuisine"); cuisine != "" {
		filter["cuisine"] = cuisine
	}

	if cacheable(r, filter) {
		if cached, _ := rdx.RdxGet(restaurantsCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	skip, limit := utils.ParsePagination(r, 10, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "name", Value: 1}}, nil)

	restaurants, err := utils.FindAndDecode[models.Restaurant](ctx, db.RestaurantsCollection, filter, findOptions(r, skip, limit, sort))
	if err != nil {
		log.Println("GetRestaurants Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve restaurants")
		return
	}

	if cacheable(r, filter) {
		if data, err := json.Marshal(restaurants); err == nil {
			rdx.RdxSetWithTTL(restaurantsCacheKey, string(data), 5*time.Minute)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, restaurants)
}

// GET /api/restaurants/:id
func GetRestaurant(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var restaurant models.Restaurant
	if err := db.RestaurantsCollection.FindOne(ctx, bson.M{"restaurantid": ps.ByName("id")}).Decode(&restaurant); err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, restaurant)
}

// POST /api/restaurants
func CreateRestaurant(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var restaurant models.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if restaurant.Name == "" || restaurant.AvgCost <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	restaurant.RestaurantID = "r" + utils.GenerateRandomString(12)
	restaurant.CreatedBy = userID
	restaurant.CreatedAt = time.Now()
	restaurant.UpdatedAt = time.Now()

	if _, err := db.RestaurantsCollection.InsertOne(ctx, restaurant); err != nil {
		log.Println("CreateRestaurant insert error:", err)
		http.Error(w, "Error inserting restaurant", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel(restaurantsCacheKey)
	utils.RespondWithJSON(w, http.StatusCreated, restaurant)
}

// PUT /api/restaurants/:id
func UpdateRestaurant(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var updated models.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"name":        updated.Name,
		"description": updated.Description,
		"cuisine":     updated.Cuisine,
		"price":       updated.AvgCost,
		"city":        updated.City,
		"address":     updated.Address,
		"location":    updated.Location,
		"tags":        updated.Tags,
		"updated_at":  time.Now(),
	}}

	res, err := db.RestaurantsCollection.UpdateOne(ctx, bson.M{"restaurantid": ps.ByName("id")}, update)
	if err != nil {
		http.Error(w, "Error updating restaurant", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(restaurantsCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Restaurant updated successfully"})
}

// DELETE /api/restaurants/:id
func DeleteRestaurant(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := db.RestaurantsCollection.DeleteOne(ctx, bson.M{"restaurantid": ps.ByName("id")})
	if err != nil {
		http.Error(w, "Error deleting restaurant", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(restaurantsCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Restaurant deleted successfully"})
}
