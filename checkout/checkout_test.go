package checkout

import (
	"context"
	"errors"
	"testing"

	"fairway/models"
	"fairway/pay"
)

type fakeGateway struct {
	charges []int64
	err     error
}

func (g *fakeGateway) Charge(ctx context.Context, userID string, amount int64, currency, idempotencyKey string) (pay.ChargeResult, error) {
	if g.err != nil {
		return pay.ChargeResult{}, g.err
	}
	g.charges = append(g.charges, amount)
	return pay.ChargeResult{Ref: "pay_test", Amount: amount, Currency: currency}, nil
}

type fakeWriter struct {
	created   []models.Booking
	cancelled []string
	failAt    int // fail the Nth Create (1-based), 0 = never
}

func (w *fakeWriter) Create(ctx context.Context, b models.Booking) error {
	if w.failAt > 0 && len(w.created)+1 == w.failAt {
		return errors.New("insert failed")
	}
	w.created = append(w.created, b)
	return nil
}

func (w *fakeWriter) Cancel(ctx context.Context, bookingID string) error {
	w.cancelled = append(w.cancelled, bookingID)
	return nil
}

func testItinerary() *models.Itinerary {
	return &models.Itinerary{
		UserID:    "u1",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-03",
		Golf: []models.ItineraryItem{
			{ItemID: "c1", Type: models.TypeGolf, Name: "Pebble Links", Price: 25000},
		},
		Hotels: []models.ItineraryItem{
			{ItemID: "h1", Type: models.TypeHotel, Name: "Fairway Inn", Price: 18000},
		},
		Restaurants: []models.ItineraryItem{
			{ItemID: "r1", Type: models.TypeRestaurant, Name: "The Grill", Price: 6000},
		},
	}
}

func TestTotalSumsAllCategories(t *testing.T) {
	it := testItinerary()
	if got := Total(it.AllItems()); got != 49000 {
		t.Fatalf("Total = %d, want 49000", got)
	}
}

func TestRunChargesOnceAndFansOut(t *testing.T) {
	gw := &fakeGateway{}
	wr := &fakeWriter{}
	svc := NewService(gw, wr)

	res, err := svc.Run(context.Background(), "u1", testItinerary(), "ck_1")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(gw.charges) != 1 {
		t.Fatalf("gateway charged %d times, want 1", len(gw.charges))
	}
	if gw.charges[0] != 49000 {
		t.Errorf("charged %d, want 49000", gw.charges[0])
	}
	if len(wr.created) != 3 {
		t.Fatalf("created %d bookings, want 3", len(wr.created))
	}
	if res.Total != 49000 || res.PaymentRef != "pay_test" || res.CheckoutID != "ck_1" {
		t.Errorf("unexpected result: %+v", res)
	}

	for _, b := range wr.created {
		if b.Status != models.BookingConfirmed {
			t.Errorf("booking %s status = %s, want confirmed", b.BookingID, b.Status)
		}
		if b.CheckoutID != "ck_1" || b.PaymentRef != "pay_test" {
			t.Errorf("booking %s missing checkout linkage: %+v", b.BookingID, b)
		}
		if len(b.ConfirmationCode) != 8 {
			t.Errorf("confirmation code %q, want 8 chars", b.ConfirmationCode)
		}
	}
}

func TestRunEnrichesBookingsWithPlacements(t *testing.T) {
	gw := &fakeGateway{}
	wr := &fakeWriter{}
	svc := NewService(gw, wr)

	if _, err := svc.Run(context.Background(), "u1", testItinerary(), "ck_2"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	byType := map[string]models.Booking{}
	for _, b := range wr.created {
		byType[b.ItemType] = b
	}

	golf := byType[models.TypeGolf]
	if golf.Date != "2026-06-01" || golf.Start != "9:00 AM" {
		t.Errorf("golf booking placement = %q %q, want 2026-06-01 9:00 AM", golf.Date, golf.Start)
	}
	hotel := byType[models.TypeHotel]
	if hotel.Date != "2026-06-01" || hotel.EndDate != "2026-06-03" {
		t.Errorf("hotel booking span = %q..%q, want 2026-06-01..2026-06-03", hotel.Date, hotel.EndDate)
	}
}

func TestRunEmptyItineraryFails(t *testing.T) {
	gw := &fakeGateway{}
	wr := &fakeWriter{}
	svc := NewService(gw, wr)

	if _, err := svc.Run(context.Background(), "u1", &models.Itinerary{}, "ck_3"); err == nil {
		t.Fatal("expected error for empty itinerary")
	}
	if len(gw.charges) != 0 {
		t.Errorf("gateway charged %d times for empty itinerary", len(gw.charges))
	}
}

func TestRunPaymentFailureCreatesNothing(t *testing.T) {
	gw := &fakeGateway{err: errors.New("card declined")}
	wr := &fakeWriter{}
	svc := NewService(gw, wr)

	if _, err := svc.Run(context.Background(), "u1", testItinerary(), "ck_4"); err == nil {
		t.Fatal("expected payment error")
	}
	if len(wr.created) != 0 {
		t.Errorf("created %d bookings after failed payment", len(wr.created))
	}
}

func TestRunCompensatesOnPartialFailure(t *testing.T) {
	gw := &fakeGateway{}
	wr := &fakeWriter{failAt: 3}
	svc := NewService(gw, wr)

	_, err := svc.Run(context.Background(), "u1", testItinerary(), "ck_5")
	if err == nil {
		t.Fatal("expected error when third booking insert fails")
	}

	if len(wr.created) != 2 {
		t.Fatalf("created %d bookings before failure, want 2", len(wr.created))
	}
	if len(wr.cancelled) != 2 {
		t.Fatalf("cancelled %d bookings, want 2", len(wr.cancelled))
	}
	want := map[string]bool{}
	for _, b := range wr.created {
		want[b.BookingID] = true
	}
	for _, id := range wr.cancelled {
		if !want[id] {
			t.Errorf("cancelled unknown booking %s", id)
		}
	}
}
