package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	BookingID        string        `json:"bookingid" bson:"bookingid"`
	UserID           string        `json:"userid" bson:"userid"`
	ItemType         string        `json:"itemType" bson:"itemType"`
	ItemID           string        `json:"itemId" bson:"itemId"`
	ItemName         string        `json:"itemName" bson:"itemName"`
	Date             string        `json:"date,omitempty" bson:"date,omitempty"`
	Start            string        `json:"start,omitempty" bson:"start,omitempty"`
	EndDate          string        `json:"endDate,omitempty" bson:"endDate,omitempty"`
	PricePaid        int64         `json:"pricePaid" bson:"pricePaid"`
	ConfirmationCode string        `json:"confirmationCode" bson:"confirmationCode"`
	Status           BookingStatus `json:"status" bson:"status"`
	CheckoutID       string        `json:"checkoutId,omitempty" bson:"checkoutId,omitempty"`
	PaymentRef       string        `json:"paymentRef,omitempty" bson:"paymentRef,omitempty"`
	CreatedAt        time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt" bson:"updatedAt"`
}
