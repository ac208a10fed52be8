package checkout

import (
	"context"
	"log"
	"net/http"
	"time"

	"fairway/bookings"
	"fairway/db"
	"fairway/itinerary"
	"fairway/models"
	"fairway/mq"
	"fairway/pay"
	"fairway/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var service = NewService(pay.NewHostedGateway(), bookings.NewStore())

// POST /api/checkout
// The route is wrapped in pay.Idempotency, so replays with the same
// Idempotency-Key return the recorded response instead of re-charging.
func Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	checkoutID := r.Header.Get("Idempotency-Key")
	if checkoutID == "" {
		checkoutID = utils.GetUUID()
	}

	var it models.Itinerary
	if err := db.ItineraryCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&it); err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	result, err := service.Run(ctx, userID, &it, checkoutID)
	if err != nil {
		log.Println("Checkout failed:", err)
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		return
	}

	if err := itinerary.Clear(ctx, userID); err != nil {
		log.Println("Checkout: failed to clear itinerary:", err)
	}
	mq.Emit(ctx, mq.Event{Name: "checkout-completed", EntityID: checkoutID, UserID: userID})

	utils.RespondWithJSON(w, http.StatusOK, result)
}
