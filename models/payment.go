package models

import "time"

type IdempotencyRecord struct {
	Key         string                 `bson:"key"`
	Method      string                 `bson:"method"`
	Path        string                 `bson:"path"`
	UserID      string                 `bson:"user_id"`
	RequestHash string                 `bson:"request_hash"`
	Response    map[string]interface{} `bson:"response,omitempty"`
	CreatedAt   time.Time              `bson:"created_at"`
	ExpiresAt   time.Time              `bson:"expires_at"`
}

type PaymentStatus string

const (
	PaymentCaptured PaymentStatus = "captured"
	PaymentFailed   PaymentStatus = "failed"
)

type Payment struct {
	PaymentID   string        `json:"paymentid" bson:"paymentid"`
	UserID      string        `json:"userid" bson:"userid"`
	Amount      int64         `json:"amount" bson:"amount"` // minor units
	Currency    string        `json:"currency" bson:"currency"`
	Status      PaymentStatus `json:"status" bson:"status"`
	ProviderRef string        `json:"providerRef" bson:"providerRef"`
	CheckoutID  string        `json:"checkoutId" bson:"checkoutId"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
}
