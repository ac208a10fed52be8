package models

import "time"

// ItineraryItem is an immutable snapshot of a catalog item at the moment it
// was added. The live catalog document may change afterwards; the itinerary
// keeps what the user saw.
type ItineraryItem struct {
	ItemID string `json:"itemid" bson:"itemid"`
	Type   string `json:"type" bson:"type"`
	Name   string `json:"name" bson:"name"`
	Price  int64  `json:"price" bson:"price"`
	City   string `json:"city,omitempty" bson:"city,omitempty"`
}

// ManualPlacement pins an entry to a cell the user dragged it onto. Kept
// keyed by entry key until the item is removed or the override is cleared.
type ManualPlacement struct {
	Date string `json:"date" bson:"date"`   // YYYY-MM-DD
	Time string `json:"time" bson:"time"`   // 12-hour label, e.g. "7:30 PM"
}

// Itinerary is the only persisted planning state: item lists, notes, the
// chosen date range and manual placements. Schedule and conflicts are
// derived on demand.
type Itinerary struct {
	ItineraryID string                     `json:"itineraryid" bson:"itineraryid"`
	UserID      string                     `json:"user_id" bson:"user_id"`
	Name        string                     `json:"name,omitempty" bson:"name,omitempty"`
	Notes       string                     `json:"notes,omitempty" bson:"notes,omitempty"`
	StartDate   string                     `json:"start_date" bson:"start_date"` // YYYY-MM-DD
	EndDate     string                     `json:"end_date" bson:"end_date"`     // YYYY-MM-DD
	Golf        []ItineraryItem            `json:"golf" bson:"golf"`
	Hotels      []ItineraryItem            `json:"hotels" bson:"hotels"`
	Restaurants []ItineraryItem            `json:"restaurants" bson:"restaurants"`
	Experiences []ItineraryItem            `json:"experiences" bson:"experiences"`
	Packages    []ItineraryItem            `json:"packages" bson:"packages"`
	Overrides   map[string]ManualPlacement `json:"overrides,omitempty" bson:"overrides,omitempty"`
	CreatedAt   time.Time                  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at" bson:"updated_at"`
}

// AllItems returns every bookable item across categories.
func (it *Itinerary) AllItems() []ItineraryItem {
	out := make([]ItineraryItem, 0,
		len(it.Golf)+len(it.Hotels)+len(it.Restaurants)+len(it.Experiences)+len(it.Packages))
	out = append(out, it.Golf...)
	out = append(out, it.Hotels...)
	out = append(out, it.Restaurants...)
	out = append(out, it.Experiences...)
	out = append(out, it.Packages...)
	return out
}

// ScheduledEntry is a derived calendar placement for one itinerary item.
// Multi-day items (hotels) carry an end date/time; everything else uses
// Duration minutes from Start.
type ScheduledEntry struct {
	Key          string `json:"key"`
	Type         string `json:"type"`
	ItemID       string `json:"itemid"`
	Name         string `json:"name"`
	Date         string `json:"date"`  // YYYY-MM-DD
	Start        string `json:"start"` // 12-hour label
	StartMinutes int    `json:"start_minutes"`
	Duration     int    `json:"duration"` // minutes
	EndDate      string `json:"end_date,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Manual       bool   `json:"manual,omitempty"`
}

// Conflict is a derived pair of same-day entries whose time intervals
// overlap. Advisory only; never blocks checkout.
type Conflict struct {
	AKey    string `json:"a_key"`
	BKey    string `json:"b_key"`
	Date    string `json:"date"`
	Message string `json:"message"`
}
