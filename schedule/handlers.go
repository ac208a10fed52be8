package schedule

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fairway/db"
	"fairway/metrics"
	"fairway/models"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func loadItinerary(ctx context.Context, userID string) (*models.Itinerary, error) {
	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&it)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GET /api/schedule
// Regenerates the calendar and conflict list from the persisted itinerary.
func GetSchedule(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	it, err := loadItinerary(ctx, userID)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	entries, err := Build(it)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	conflicts := Detect(entries)
	deduped := DedupePairs(conflicts)
	if len(deduped) > 0 {
		metrics.ConflictsDetected.Add(float64(len(deduped)))
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"entries":   entries,
		"conflicts": deduped,
		"warnings":  Summarize(conflicts, 3),
	})
}

// POST /api/schedule/place
// Drops an item onto a (date, time) cell. Dropping the same item onto the
// same cell twice still yields one entry.
func PlaceEntry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
		Date     string `json:"date"`
		Time     string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	it, err := loadItinerary(ctx, userID)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	if err := Place(it, body.ItemType, body.ItemID, body.Date, body.Time); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{"$set": bson.M{"overrides": it.Overrides, "updated_at": time.Now()}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		log.Println("PlaceEntry update error:", err)
		http.Error(w, "Error saving placement", http.StatusInternalServerError)
		return
	}

	entries, err := Build(it)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"entries":   entries,
		"conflicts": DedupePairs(Detect(entries)),
	})
}

// DELETE /api/schedule/place/:itemType/:itemId
func RemovePlacement(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	it, err := loadItinerary(ctx, userID)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	ClearPlacement(it, ps.ByName("itemType"), ps.ByName("itemId"))

	update := bson.M{"$set": bson.M{"overrides": it.Overrides, "updated_at": time.Now()}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		log.Println("RemovePlacement update error:", err)
		http.Error(w, "Error saving placement", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
