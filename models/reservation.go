package models

import "time"

// Slot lock lifecycle: LOCKED -> CONFIRMED or LOCKED -> EXPIRED. An expired
// lock cannot be confirmed; the caller restarts from a fresh lock.
type LockStatus string

const (
	LockLocked    LockStatus = "locked"
	LockConfirmed LockStatus = "confirmed"
	LockExpired   LockStatus = "expired"
)

type SlotLock struct {
	Token        string     `json:"token" bson:"token"`
	RestaurantID string     `json:"restaurantId" bson:"restaurantId"`
	UserID       string     `json:"userId" bson:"userId"`
	Date         string     `json:"date" bson:"date"` // YYYY-MM-DD
	Time         string     `json:"time" bson:"time"` // 12-hour label
	PartySize    int        `json:"partySize" bson:"partySize"`
	Status       LockStatus `json:"status" bson:"status"`
	ExpiresAt    time.Time  `json:"expiresAt" bson:"expiresAt"`
	BookingID    string     `json:"bookingId,omitempty" bson:"bookingId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
}
