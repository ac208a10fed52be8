package schedule

import (
	"testing"

	"fairway/models"
)

func testItinerary() *models.Itinerary {
	return &models.Itinerary{
		ItineraryID: "itin1",
		UserID:      "u1",
		StartDate:   "2026-06-01", // Monday
		EndDate:     "2026-06-03", // Wednesday
	}
}

func golfItem(id, name string) models.ItineraryItem {
	return models.ItineraryItem{ItemID: id, Type: models.TypeGolf, Name: name, Price: 12000}
}

func findEntry(t *testing.T, entries []models.ScheduledEntry, key string) models.ScheduledEntry {
	t.Helper()
	for _, e := range entries {
		if e.Key == key {
			return e
		}
	}
	t.Fatalf("entry %s not found", key)
	return models.ScheduledEntry{}
}

func TestRoundRobinDayAssignment(t *testing.T) {
	it := testItinerary()
	for _, id := range []string{"g1", "g2", "g3", "g4", "g5"} {
		it.Golf = append(it.Golf, golfItem(id, "Course "+id))
	}

	entries, err := Build(it)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	// 5 courses over a 3-day range land on days {0,1,2,0,1}
	wantDates := []string{"2026-06-01", "2026-06-02", "2026-06-03", "2026-06-01", "2026-06-02"}
	for i, id := range []string{"g1", "g2", "g3", "g4", "g5"} {
		e := findEntry(t, entries, "golf_"+id)
		if e.Date != wantDates[i] {
			t.Errorf("course %s on %s, want %s", id, e.Date, wantDates[i])
		}
		if e.Start != "9:00 AM" || e.Duration != 240 {
			t.Errorf("course %s slot %s/%d, want 9:00 AM/240", id, e.Start, e.Duration)
		}
	}
}

func TestHotelSpanInvariant(t *testing.T) {
	it := testItinerary()
	it.Hotels = append(it.Hotels, models.ItineraryItem{ItemID: "h1", Type: models.TypeHotel, Name: "Dunes Lodge"})
	// other items must not perturb the hotel span
	it.Golf = append(it.Golf, golfItem("g1", "Course A"), golfItem("g2", "Course B"))
	it.Restaurants = append(it.Restaurants, models.ItineraryItem{ItemID: "r1", Type: models.TypeRestaurant, Name: "Clubhouse Grill"})

	entries, err := Build(it)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	e := findEntry(t, entries, "hotel_h1")
	if e.Date != "2026-06-01" || e.Start != "3:00 PM" {
		t.Errorf("hotel check-in %s %s, want 2026-06-01 3:00 PM", e.Date, e.Start)
	}
	if e.EndDate != "2026-06-03" || e.EndTime != "11:00 AM" {
		t.Errorf("hotel check-out %s %s, want 2026-06-03 11:00 AM", e.EndDate, e.EndTime)
	}
}

func TestPackagesNotPlaced(t *testing.T) {
	it := testItinerary()
	it.Packages = append(it.Packages, models.ItineraryItem{ItemID: "p1", Type: models.TypePackage, Name: "Links Weekend"})

	entries, err := Build(it)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected packages to stay list-only, got %d entries", len(entries))
	}
}

func TestOneEntryPerItem(t *testing.T) {
	it := testItinerary()
	it.Golf = append(it.Golf, golfItem("g1", "Course A"))
	it.Hotels = append(it.Hotels, models.ItineraryItem{ItemID: "h1", Type: models.TypeHotel, Name: "Lodge"})
	it.Restaurants = append(it.Restaurants, models.ItineraryItem{ItemID: "r1", Type: models.TypeRestaurant, Name: "Grill"})
	it.Experiences = append(it.Experiences, models.ItineraryItem{ItemID: "e1", Type: models.TypeExperience, Name: "Spa"})

	entries, err := Build(it)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.Key] {
			t.Errorf("duplicate entry key %s", e.Key)
		}
		seen[e.Key] = true
	}
}

func TestPlaceOverridesGeneratedSlot(t *testing.T) {
	it := testItinerary()
	it.Golf = append(it.Golf, golfItem("g1", "Course A"))

	if err := Place(it, models.TypeGolf, "g1", "2026-06-02", "7:30 AM"); err != nil {
		t.Fatalf("Place error: %v", err)
	}

	entries, err := Build(it)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	e := findEntry(t, entries, "golf_g1")
	if e.Date != "2026-06-02" || e.Start != "7:30 AM" || !e.Manual {
		t.Errorf("override not applied: %+v", e)
	}
	if e.Duration != 240 {
		t.Errorf("golf drag duration = %d, want 240", e.Duration)
	}
}

func TestDragOverwriteIdempotence(t *testing.T) {
	it := testItinerary()
	it.Experiences = append(it.Experiences, models.ItineraryItem{ItemID: "e1", Type: models.TypeExperience, Name: "Spa"})

	for i := 0; i < 2; i++ {
		if err := Place(it, models.TypeExperience, "e1", "2026-06-02", "10:00 AM"); err != nil {
			t.Fatalf("Place error: %v", err)
		}
	}

	entries, err := Build(it)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after double drop, got %d", len(entries))
	}
	if len(it.Overrides) != 1 {
		t.Fatalf("expected 1 override, got %d", len(it.Overrides))
	}

	e := entries[0]
	if e.Duration != 180 {
		t.Errorf("experience drag duration = %d, want 180", e.Duration)
	}
}

func TestOverrideSurvivesDateRangeChange(t *testing.T) {
	it := testItinerary()
	it.Golf = append(it.Golf, golfItem("g1", "Course A"))

	if err := Place(it, models.TypeGolf, "g1", "2026-06-02", "8:00 AM"); err != nil {
		t.Fatalf("Place error: %v", err)
	}

	// user widens the trip; the pinned placement stays
	it.EndDate = "2026-06-07"

	entries, err := Build(it)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	e := findEntry(t, entries, "golf_g1")
	if e.Date != "2026-06-02" || !e.Manual {
		t.Errorf("override lost after range change: %+v", e)
	}

	ClearPlacement(it, models.TypeGolf, "g1")
	entries, _ = Build(it)
	e = findEntry(t, entries, "golf_g1")
	if e.Manual || e.Date != "2026-06-01" {
		t.Errorf("expected generated slot after clearing, got %+v", e)
	}
}

func TestDefaultDurationTable(t *testing.T) {
	cases := map[string]int{
		models.TypeGolf:       240,
		models.TypeRestaurant: 120,
		models.TypeExperience: 180,
		models.TypeHotel:      1440,
		"unknown":             120,
	}
	for itemType, want := range cases {
		if got := DefaultDuration(itemType); got != want {
			t.Errorf("DefaultDuration(%s) = %d, want %d", itemType, got, want)
		}
	}
}

func TestBuildRejectsInvertedRange(t *testing.T) {
	it := testItinerary()
	it.StartDate, it.EndDate = it.EndDate, it.StartDate
	it.Golf = append(it.Golf, golfItem("g1", "Course A"))

	if _, err := Build(it); err == nil {
		t.Fatal("expected error for inverted date range")
	}
}

// End-to-end scenario: 2 golf courses, 1 hotel, 1 restaurant, Mon-Wed.
func TestEndToEndScenario(t *testing.T) {
	it := testItinerary()
	it.Golf = append(it.Golf, golfItem("g1", "Old Links"), golfItem("g2", "New Links"))
	it.Hotels = append(it.Hotels, models.ItineraryItem{ItemID: "h1", Type: models.TypeHotel, Name: "Lodge"})
	it.Restaurants = append(it.Restaurants, models.ItineraryItem{ItemID: "r1", Type: models.TypeRestaurant, Name: "Grill"})

	if len(it.AllItems()) != 4 {
		t.Fatalf("expected 4 bookable items, got %d", len(it.AllItems()))
	}

	entries, err := Build(it)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if e := findEntry(t, entries, "golf_g1"); e.Date != "2026-06-01" {
		t.Errorf("first course on %s, want Monday", e.Date)
	}
	if e := findEntry(t, entries, "golf_g2"); e.Date != "2026-06-02" {
		t.Errorf("second course on %s, want Tuesday", e.Date)
	}
	if e := findEntry(t, entries, "hotel_h1"); e.Date != "2026-06-01" || e.EndDate != "2026-06-03" {
		t.Errorf("hotel span %s..%s, want Monday..Wednesday", e.Date, e.EndDate)
	}
	if e := findEntry(t, entries, "restaurant_r1"); e.Date != "2026-06-01" || e.Start != "7:00 PM" {
		t.Errorf("restaurant at %s %s, want Monday 7:00 PM", e.Date, e.Start)
	}

	// golf ends 13:00, dinner starts 19:00: no conflicts
	if conflicts := Detect(entries); len(conflicts) != 0 {
		t.Errorf("expected zero conflicts, got %d", len(conflicts))
	}
}
