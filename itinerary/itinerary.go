package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/schedule"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// itemField maps an item type onto its array field in the itinerary
// document.
func itemField(itemType string) (string, error) {
	switch itemType {
	case models.TypeGolf:
		return "golf", nil
	case models.TypeHotel:
		return "hotels", nil
	case models.TypeRestaurant:
		return "restaurants", nil
	case models.TypeExperience:
		return "experiences", nil
	case models.TypePackage:
		return "packages", nil
	default:
		return "", fmt.Errorf("unknown item type %q", itemType)
	}
}

// fetchSnapshot loads the live catalog document and freezes the fields the
// itinerary keeps.
func fetchSnapshot(ctx context.Context, itemType, itemID string) (models.ItineraryItem, error) {
	var coll *mongo.Collection
	var idField string

	switch itemType {
	case models.TypeGolf:
		coll, idField = db.CoursesCollection, "courseid"
	case models.TypeHotel:
		coll, idField = db.HotelsCollection, "hotelid"
	case models.TypeRestaurant:
		coll, idField = db.RestaurantsCollection, "restaurantid"
	case models.TypeExperience:
		coll, idField = db.ExperiencesCollection, "experienceid"
	case models.TypePackage:
		coll, idField = db.PackagesCollection, "packageid"
	default:
		return models.ItineraryItem{}, fmt.Errorf("unknown item type %q", itemType)
	}

	var doc struct {
		Name  string `bson:"name"`
		Price int64  `bson:"price"`
		City  string `bson:"city"`
	}
	if err := coll.FindOne(ctx, bson.M{idField: itemID}).Decode(&doc); err != nil {
		return models.ItineraryItem{}, err
	}

	return models.ItineraryItem{
		ItemID: itemID,
		Type:   itemType,
		Name:   doc.Name,
		Price:  doc.Price,
		City:   doc.City,
	}, nil
}

// getOrCreate returns the user's itinerary, creating an empty one with a
// week-out default date range on first touch.
func getOrCreate(ctx context.Context, userID string) (*models.Itinerary, error) {
	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&it)
	if err == nil {
		return &it, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	start := time.Now().AddDate(0, 0, 7)
	it = models.Itinerary{
		ItineraryID: utils.GenerateRandomString(13),
		UserID:      userID,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     start.AddDate(0, 0, 2).Format("2006-01-02"),
		Golf:        []models.ItineraryItem{},
		Hotels:      []models.ItineraryItem{},
		Restaurants: []models.ItineraryItem{},
		Experiences: []models.ItineraryItem{},
		Packages:    []models.ItineraryItem{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if _, err := db.ItineraryCollection.InsertOne(ctx, it); err != nil {
		return nil, err
	}
	return &it, nil
}

// GET /api/itinerary
func GetItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	it, err := getOrCreate(ctx, userID)
	if err != nil {
		log.Println("GetItinerary error:", err)
		http.Error(w, "Error loading itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// POST /api/itinerary/items
func AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		ItemType string `json:"itemType"`
		ItemID   string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	field, err := itemField(body.ItemType)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	it, err := getOrCreate(ctx, userID)
	if err != nil {
		http.Error(w, "Error loading itinerary", http.StatusInternalServerError)
		return
	}

	for _, existing := range it.AllItems() {
		if existing.Type == body.ItemType && existing.ItemID == body.ItemID {
			utils.RespondWithError(w, http.StatusConflict, "Item already in itinerary")
			return
		}
	}

	snapshot, err := fetchSnapshot(ctx, body.ItemType, body.ItemID)
	if err != nil {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	update := bson.M{
		"$push": bson.M{field: snapshot},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		log.Println("AddItem update error:", err)
		http.Error(w, "Error adding item", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, snapshot)
}

// DELETE /api/itinerary/items/:itemType/:itemId
// Removing an item also drops its manual placement, if any.
func RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itemType := ps.ByName("itemType")
	itemID := ps.ByName("itemId")

	field, err := itemField(itemType)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{
		"$pull":  bson.M{field: bson.M{"itemid": itemID}},
		"$unset": bson.M{"overrides." + schedule.EntryKey(itemType, itemID): ""},
		"$set":   bson.M{"updated_at": time.Now()},
	}
	res, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		log.Println("RemoveItem update error:", err)
		http.Error(w, "Error removing item", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// PUT /api/itinerary/notes
func UpdateNotes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	it, err := getOrCreate(ctx, userID)
	if err != nil {
		http.Error(w, "Error loading itinerary", http.StatusInternalServerError)
		return
	}

	update := bson.M{"$set": bson.M{"notes": body.Notes, "updated_at": time.Now()}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		http.Error(w, "Error updating notes", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// PUT /api/itinerary/dates
func UpdateDates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if _, err := schedule.DayCount(body.StartDate, body.EndDate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	it, err := getOrCreate(ctx, userID)
	if err != nil {
		http.Error(w, "Error loading itinerary", http.StatusInternalServerError)
		return
	}

	update := bson.M{"$set": bson.M{
		"start_date": body.StartDate,
		"end_date":   body.EndDate,
		"updated_at": time.Now(),
	}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		http.Error(w, "Error updating dates", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DELETE /api/itinerary
// Used after checkout and by the explicit reset control.
func ClearItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := Clear(ctx, userID); err != nil {
		log.Println("ClearItinerary error:", err)
		http.Error(w, "Error clearing itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// Clear empties the item lists, notes and manual placements but keeps the
// date range.
func Clear(ctx context.Context, userID string) error {
	update := bson.M{"$set": bson.M{
		"golf":        []models.ItineraryItem{},
		"hotels":      []models.ItineraryItem{},
		"restaurants": []models.ItineraryItem{},
		"experiences": []models.ItineraryItem{},
		"packages":    []models.ItineraryItem{},
		"notes":       "",
		"overrides":   map[string]models.ManualPlacement{},
		"updated_at":  time.Now(),
	}}
	_, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	return err
}
