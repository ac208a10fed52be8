package reservations

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"fairway/db"
	"fairway/metrics"
	"fairway/models"
	"fairway/rdx"
	"fairway/schedule"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LockTTL is how long a held slot stays reserved before it lapses back to
// availability.
const LockTTL = 5 * time.Minute

func slotKey(restaurantID, date, timeLabel string) string {
	return fmt.Sprintf("slotlock:%s:%s:%s", restaurantID, date, timeLabel)
}

// EffectiveStatus resolves what a lock is right now. A stored LOCKED past
// its deadline reads as EXPIRED even before the sweeper flips it.
func EffectiveStatus(lock models.SlotLock, now time.Time) models.LockStatus {
	if lock.Status == models.LockLocked && now.After(lock.ExpiresAt) {
		return models.LockExpired
	}
	return lock.Status
}

type lockRequest struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"partySize"`
}

// POST /api/restaurants/:id/lock
//
// Phase one of the two-phase dining reservation. The slot is held for
// LockTTL; the hold is advertised over the availability websocket so
// other browsers grey the slot out immediately.
func LockSlot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	restaurantID := ps.ByName("id")

	var req lockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Date == "" || req.Time == "" {
		http.Error(w, "date and time are required", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if _, err := schedule.ParseClock(req.Time); err != nil {
		http.Error(w, "time must be a 12-hour label like 7:30 PM", http.StatusBadRequest)
		return
	}
	if req.PartySize <= 0 {
		req.PartySize = 2
	}

	count, err := db.RestaurantsCollection.CountDocuments(ctx, bson.M{"restaurantid": restaurantID})
	if err != nil || count == 0 {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	token := "lk" + utils.GenerateRandomString(16)

	// Redis SETNX is the actual mutual exclusion; Mongo keeps the audit
	// record the sweeper and confirm step read.
	ok, err := rdx.RdxSetNX(slotKey(restaurantID, req.Date, req.Time), token, LockTTL)
	if err != nil {
		http.Error(w, "Lock service unavailable", http.StatusInternalServerError)
		return
	}
	if !ok {
		utils.RespondWithError(w, http.StatusConflict, "Slot is held by another diner")
		return
	}

	lock := models.SlotLock{
		Token:        token,
		RestaurantID: restaurantID,
		UserID:       userID,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
		Status:       models.LockLocked,
		ExpiresAt:    time.Now().Add(LockTTL),
		CreatedAt:    time.Now(),
	}
	if _, err := db.LocksCollection.InsertOne(ctx, lock); err != nil {
		rdx.RdxDel(slotKey(restaurantID, req.Date, req.Time))
		http.Error(w, "Failed to record lock", http.StatusInternalServerError)
		return
	}

	metrics.SlotLocksTaken.Inc()
	BroadcastAvailability(restaurantID, req.Date)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"token":     token,
		"status":    lock.Status,
		"expiresAt": lock.ExpiresAt,
	})
}

// POST /api/restaurants/:id/confirm
//
// Phase two. Only a still-live LOCKED hold owned by the caller can be
// confirmed; a lapsed hold answers 410 and the diner starts over.
func ConfirmSlot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	restaurantID := ps.ByName("id")

	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	var lock models.SlotLock
	err := db.LocksCollection.FindOne(ctx, bson.M{
		"token":        req.Token,
		"restaurantId": restaurantID,
		"userId":       userID,
	}).Decode(&lock)
	if err != nil {
		http.Error(w, "Lock not found", http.StatusNotFound)
		return
	}

	switch EffectiveStatus(lock, time.Now()) {
	case models.LockConfirmed:
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"status":    lock.Status,
			"bookingId": lock.BookingID,
		})
		return
	case models.LockExpired:
		if lock.Status == models.LockLocked {
			// Sweeper has not caught it yet; flip it now.
			db.LocksCollection.UpdateOne(ctx,
				bson.M{"token": lock.Token, "status": models.LockLocked},
				bson.M{"$set": bson.M{"status": models.LockExpired}})
			metrics.SlotLocksExpired.Inc()
		}
		http.Error(w, "Lock has expired, please pick a slot again", http.StatusGone)
		return
	}

	var restaurant models.Restaurant
	if err := db.RestaurantsCollection.FindOne(ctx, bson.M{"restaurantid": restaurantID}).Decode(&restaurant); err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}

	booking := models.Booking{
		BookingID:        "b" + utils.GenerateRandomString(14),
		UserID:           userID,
		ItemType:         models.TypeRestaurant,
		ItemID:           restaurantID,
		ItemName:         restaurant.Name,
		Date:             lock.Date,
		Start:            lock.Time,
		PricePaid:        0, // dining reservations are pay-at-venue
		ConfirmationCode: utils.GenerateConfirmationCode(8),
		Status:           models.BookingConfirmed,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		http.Error(w, "Failed to create booking", http.StatusInternalServerError)
		return
	}
	metrics.BookingsCreated.Inc()

	res, err := db.LocksCollection.UpdateOne(ctx,
		bson.M{"token": lock.Token, "status": models.LockLocked},
		bson.M{"$set": bson.M{"status": models.LockConfirmed, "bookingId": booking.BookingID}})
	if err != nil || res.MatchedCount == 0 {
		// Lost the race against the sweeper; undo the booking.
		db.BookingsCollection.UpdateOne(ctx,
			bson.M{"bookingid": booking.BookingID},
			bson.M{"$set": bson.M{"status": models.BookingCancelled}})
		http.Error(w, "Lock has expired, please pick a slot again", http.StatusGone)
		return
	}

	// A confirmed slot stays taken past the hold TTL.
	rdx.RdxSetWithTTL(slotKey(restaurantID, lock.Date, lock.Time), "confirmed:"+booking.BookingID, 48*time.Hour)
	BroadcastAvailability(restaurantID, lock.Date)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"status":           models.LockConfirmed,
		"bookingId":        booking.BookingID,
		"confirmationCode": booking.ConfirmationCode,
	})
}

// GET /api/restaurants/:id/slots?date=YYYY-MM-DD
//
// Lists the evening seating grid with held/confirmed slots marked.
func GetSlots(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	restaurantID := ps.ByName("id")
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}

	taken := map[string]string{}
	cursor, err := db.LocksCollection.Find(ctx,
		bson.M{"restaurantId": restaurantID, "date": date, "status": bson.M{"$ne": models.LockExpired}},
		options.Find())
	if err == nil {
		var locks []models.SlotLock
		if err := cursor.All(ctx, &locks); err == nil {
			for _, l := range locks {
				if l.Status == models.LockLocked && time.Now().After(l.ExpiresAt) {
					continue
				}
				taken[l.Time] = string(l.Status)
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"restaurantid": restaurantID,
		"date":         date,
		"slots":        SeatingGrid(taken),
	})
}

type Slot struct {
	Time   string `json:"time"`
	Status string `json:"status"` // available | locked | confirmed
}

// SeatingGrid lays out dinner service seatings every 30 minutes from
// 5:00 PM through 9:30 PM, marking held and confirmed slots.
func SeatingGrid(taken map[string]string) []Slot {
	var slots []Slot
	for m := 17 * 60; m <= 21*60+30; m += 30 {
		label := schedule.FormatClock(m)
		status := "available"
		if s, ok := taken[label]; ok {
			status = s
		}
		slots = append(slots, Slot{Time: label, Status: status})
	}
	return slots
}

// ReleaseExpired flips overdue LOCKED holds to EXPIRED and frees their
// Redis keys. Called by the sweeper and safe to run concurrently.
func ReleaseExpired(ctx context.Context) int {
	cursor, err := db.LocksCollection.Find(ctx, bson.M{
		"status":    models.LockLocked,
		"expiresAt": bson.M{"$lt": time.Now()},
	})
	if err != nil {
		log.Printf("lock sweep query failed: %v", err)
		return 0
	}

	var overdue []models.SlotLock
	if err := cursor.All(ctx, &overdue); err != nil {
		log.Printf("lock sweep decode failed: %v", err)
		return 0
	}

	released := 0
	for _, l := range overdue {
		res, err := db.LocksCollection.UpdateOne(ctx,
			bson.M{"token": l.Token, "status": models.LockLocked},
			bson.M{"$set": bson.M{"status": models.LockExpired}})
		if err != nil || res.ModifiedCount == 0 {
			continue
		}
		rdx.RdxDel(slotKey(l.RestaurantID, l.Date, l.Time))
		metrics.SlotLocksExpired.Inc()
		BroadcastAvailability(l.RestaurantID, l.Date)
		released++
	}
	return released
}
