package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/rdx"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const hotelsCacheKey = "catalog:hotels"

// GET /api/hotels
func GetHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := commonFilter(r)
	if stars := r.URL.Query().Get("stars"); stars != "" {
		if v, err := strconv.Atoi(stars); err == nil {
			filter["stars"] = bson.M{"$gte": v}
		}
	}

	if cacheable(r, filter) {
		if cached, _ := rdx.RdxGet(hotelsCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	skip, limit := utils.ParsePagination(r, 10, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "name", Value: 1}}, nil)

	hotels, err := utils.FindAndDecode[models.Hotel](ctx, db.HotelsCollection, filter, findOptions(r, skip, limit, sort))
	if err != nil {
		log.Println("GetHotels Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve hotels")
		return
	}

	if cacheable(r, filter) {
		if data, err := json.Marshal(hotels); err == nil {
			rdx.RdxSetWithTTL(hotelsCacheKey, string(data), 5*time.Minute)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, hotels)
}

// GET /api/hotels/:id
func GetHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var hotel models.Hotel
	if err := db.HotelsCollection.FindOne(ctx, bson.M{"hotelid": ps.ByName("id")}).Decode(&hotel); err != nil {
		http.Error(w, "Hotel not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, hotel)
}

// POST /api/hotels
func CreateHotel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var hotel models.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if hotel.Name == "" || hotel.PricePerNight <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	hotel.HotelID = "h" + utils.GenerateRandomString(12)
	hotel.CreatedBy = userID
	hotel.CreatedAt = time.Now()
	hotel.UpdatedAt = time.Now()

	if _, err := db.HotelsCollection.InsertOne(ctx, hotel); err != nil {
		log.Println("CreateHotel insert error:", err)
		http.Error(w, "Error inserting hotel", http.StatusInternalServerError)
		return
	}

	rdx.RdxDel(hotelsCacheKey)
	utils.RespondWithJSON(w, http.StatusCreated, hotel)
}

// PUT /api/hotels/:id
func UpdateHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var updated models.Hotel
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"name":        updated.Name,
		"description": updated.Description,
		"stars":       updated.Stars,
		"price":       updated.PricePerNight,
		"city":        updated.City,
		"address":     updated.Address,
		"location":    updated.Location,
		"amenities":   updated.Amenities,
		"tags":        updated.Tags,
		"updated_at":  time.Now(),
	}}

	res, err := db.HotelsCollection.UpdateOne(ctx, bson.M{"hotelid": ps.ByName("id")}, update)
	if err != nil {
		http.Error(w, "Error updating hotel", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Hotel not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(hotelsCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Hotel updated successfully"})
}

// DELETE /api/hotels/:id
func DeleteHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := db.HotelsCollection.DeleteOne(ctx, bson.M{"hotelid": ps.ByName("id")})
	if err != nil {
		http.Error(w, "Error deleting hotel", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Hotel not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(hotelsCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Hotel deleted successfully"})
}
