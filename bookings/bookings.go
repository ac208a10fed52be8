package bookings

import (
	"context"
	"net/http"
	"time"

	"fairway/db"
	"fairway/metrics"
	"fairway/models"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/bookings
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := bson.M{"userid": userID}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	list, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"bookings": list})
}

// GET /api/bookings/:id
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var booking models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": ps.ByName("id"), "userid": userID}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// POST /api/bookings/:id/cancel
func CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := bson.M{
		"bookingid": ps.ByName("id"),
		"userid":    userID,
		"status":    models.BookingConfirmed,
	}
	update := bson.M{"$set": bson.M{
		"status":    models.BookingCancelled,
		"updatedAt": time.Now(),
	}}

	res, err := db.BookingsCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		http.Error(w, "Error cancelling booking", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Booking not found or already cancelled", http.StatusNotFound)
		return
	}

	metrics.BookingsCancelled.Inc()
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
