package checkout

import (
	"context"
	"fmt"
	"time"

	"fairway/metrics"
	"fairway/models"
	"fairway/pay"
	"fairway/schedule"
	"fairway/utils"
)

// BookingWriter abstracts booking persistence so the fan-out can be
// exercised against fakes.
type BookingWriter interface {
	Create(ctx context.Context, b models.Booking) error
	Cancel(ctx context.Context, bookingID string) error
}

type Service struct {
	gateway  pay.Gateway
	bookings BookingWriter
	currency string
}

func NewService(gateway pay.Gateway, bookings BookingWriter) *Service {
	return &Service{gateway: gateway, bookings: bookings, currency: "USD"}
}

type Result struct {
	CheckoutID string           `json:"checkoutId"`
	PaymentRef string           `json:"paymentRef"`
	Total      int64            `json:"total"`
	Bookings   []models.Booking `json:"bookings"`
}

// Total sums item prices in minor units.
func Total(items []models.ItineraryItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// Run captures payment for the whole itinerary, then creates one booking
// per item. If any creation fails, bookings already created in this attempt
// are cancelled and the whole checkout reports failure; there is no silent
// partial success. Replays with the same idempotency key are absorbed by
// the pay.Idempotency middleware above this.
func (s *Service) Run(ctx context.Context, userID string, it *models.Itinerary, checkoutID string) (Result, error) {
	items := it.AllItems()
	if len(items) == 0 {
		return Result{}, fmt.Errorf("itinerary is empty")
	}

	total := Total(items)
	charge, err := s.gateway.Charge(ctx, userID, total, s.currency, checkoutID)
	if err != nil {
		metrics.PaymentsFailed.Inc()
		return Result{}, fmt.Errorf("payment capture failed: %w", err)
	}
	metrics.PaymentsCaptured.Inc()

	// Calendar placements enrich bookings with date/time where one exists.
	placements := map[string]models.ScheduledEntry{}
	if entries, err := schedule.Build(it); err == nil {
		for _, e := range entries {
			placements[e.Key] = e
		}
	}

	var created []models.Booking
	for _, item := range items {
		b := models.Booking{
			BookingID:        "b" + utils.GenerateRandomString(14),
			UserID:           userID,
			ItemType:         item.Type,
			ItemID:           item.ItemID,
			ItemName:         item.Name,
			PricePaid:        item.Price,
			ConfirmationCode: utils.GenerateConfirmationCode(8),
			Status:           models.BookingConfirmed,
			CheckoutID:       checkoutID,
			PaymentRef:       charge.Ref,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}
		if e, ok := placements[schedule.EntryKey(item.Type, item.ItemID)]; ok {
			b.Date = e.Date
			b.Start = e.Start
			b.EndDate = e.EndDate
		}

		if err := s.bookings.Create(ctx, b); err != nil {
			s.compensate(ctx, created)
			return Result{}, fmt.Errorf("booking %s (%s) failed: %w", item.Name, item.Type, err)
		}
		created = append(created, b)
		metrics.BookingsCreated.Inc()
	}

	return Result{
		CheckoutID: checkoutID,
		PaymentRef: charge.Ref,
		Total:      total,
		Bookings:   created,
	}, nil
}

// compensate cancels every booking created in a failed attempt.
func (s *Service) compensate(ctx context.Context, created []models.Booking) {
	for _, b := range created {
		if err := s.bookings.Cancel(ctx, b.BookingID); err != nil {
			// Nothing more we can do inline; the booking is flagged by
			// checkoutId for reconciliation.
			continue
		}
		metrics.BookingsCancelled.Inc()
	}
}
