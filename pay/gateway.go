package pay

import (
	"context"
	"fmt"
	"time"

	"fairway/db"
	"fairway/models"
	"fairway/utils"
)

// Gateway is the contract with the hosted payment provider: one capture per
// checkout attempt, returning an opaque provider reference. No partial
// payment or split tender.
type Gateway interface {
	Charge(ctx context.Context, userID string, amount int64, currency, idempotencyKey string) (ChargeResult, error)
}

type ChargeResult struct {
	Ref      string `json:"ref"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// HostedGateway stands in for the provider's client SDK. It fabricates a
// capture reference locally, the way a sandbox-mode SDK does.
type HostedGateway struct{}

func NewHostedGateway() *HostedGateway {
	return &HostedGateway{}
}

func (g *HostedGateway) Charge(ctx context.Context, userID string, amount int64, currency, idempotencyKey string) (ChargeResult, error) {
	if amount <= 0 {
		return ChargeResult{}, fmt.Errorf("invalid charge amount %d", amount)
	}

	result := ChargeResult{
		Ref:      "pay_" + utils.GetUUID(),
		Amount:   amount,
		Currency: currency,
	}

	payment := models.Payment{
		PaymentID:   result.Ref,
		UserID:      userID,
		Amount:      amount,
		Currency:    currency,
		Status:      models.PaymentCaptured,
		ProviderRef: result.Ref,
		CheckoutID:  idempotencyKey,
		CreatedAt:   time.Now(),
	}
	if _, err := db.PaymentsCollection.InsertOne(ctx, payment); err != nil {
		return ChargeResult{}, err
	}

	return result, nil
}
