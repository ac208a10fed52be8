package schedule

import (
	"fmt"
	"time"

	"fairway/models"
)

const dateLayout = "2006-01-02"

// Default placement slots per item type, applied during (re)generation.
const (
	golfStartMin       = 9 * 60  // 09:00
	restaurantStartMin = 19 * 60 // 19:00
	experienceStartMin = 14 * 60 // 14:00

	golfDuration       = 240
	restaurantDuration = 120
	experienceDuration = 120

	hotelCheckInMin  = 15 * 60 // 15:00
	hotelCheckOutMin = 11 * 60 // 11:00
)

// EntryKey builds the unique key for an item's calendar entry.
func EntryKey(itemType, itemID string) string {
	return itemType + "_" + itemID
}

// DayCount returns the inclusive number of days between two YYYY-MM-DD
// dates, or an error for an unparseable or inverted range.
func DayCount(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s before start date %s", endDate, startDate)
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

func dateOfDay(startDate string, offset int) string {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return startDate
	}
	return start.AddDate(0, 0, offset).Format(dateLayout)
}

// Build derives the full calendar from an itinerary. It is deterministic:
// the same itinerary always yields the same entries, one per placed item,
// keyed {type}_{itemID}. Golf, restaurants and experiences round-robin
// across the inclusive day range by index mod day count; hotels span
// check-in on the start date to check-out on the end date; packages stay
// list-only. Manual placements recorded on the itinerary win over the
// generated slot until the item itself is removed.
func Build(it *models.Itinerary) ([]models.ScheduledEntry, error) {
	days, err := DayCount(it.StartDate, it.EndDate)
	if err != nil {
		return nil, err
	}

	var entries []models.ScheduledEntry

	place := func(items []models.ItineraryItem, itemType string, startMin, duration int) {
		for i, item := range items {
			day := i % days
			e := models.ScheduledEntry{
				Key:          EntryKey(itemType, item.ItemID),
				Type:         itemType,
				ItemID:       item.ItemID,
				Name:         item.Name,
				Date:         dateOfDay(it.StartDate, day),
				Start:        FormatClock(startMin),
				StartMinutes: startMin,
				Duration:     duration,
			}
			entries = append(entries, applyOverride(it, e))
		}
	}

	place(it.Golf, models.TypeGolf, golfStartMin, golfDuration)

	for _, h := range it.Hotels {
		e := models.ScheduledEntry{
			Key:          EntryKey(models.TypeHotel, h.ItemID),
			Type:         models.TypeHotel,
			ItemID:       h.ItemID,
			Name:         h.Name,
			Date:         it.StartDate,
			Start:        FormatClock(hotelCheckInMin),
			StartMinutes: hotelCheckInMin,
			EndDate:      it.EndDate,
			EndTime:      FormatClock(hotelCheckOutMin),
		}
		entries = append(entries, applyOverride(it, e))
	}

	place(it.Restaurants, models.TypeRestaurant, restaurantStartMin, restaurantDuration)
	place(it.Experiences, models.TypeExperience, experienceStartMin, experienceDuration)

	// Packages are never placed.

	return entries, nil
}

// applyOverride replaces the generated slot with the user's pinned
// placement, if one exists for this entry.
func applyOverride(it *models.Itinerary, e models.ScheduledEntry) models.ScheduledEntry {
	ov, ok := it.Overrides[e.Key]
	if !ok {
		return e
	}

	minutes, err := ParseClock(ov.Time)
	if err != nil {
		return e
	}

	e.Date = ov.Date
	e.Start = FormatClock(minutes)
	e.StartMinutes = minutes
	e.Duration = DefaultDuration(e.Type)
	e.EndDate = ""
	e.EndTime = ""
	e.Manual = true
	return e
}

// DefaultDuration is the per-type duration table used when a drag creates
// or moves an entry.
func DefaultDuration(itemType string) int {
	switch itemType {
	case models.TypeGolf:
		return 240
	case models.TypeRestaurant:
		return 120
	case models.TypeExperience:
		return 180
	case models.TypeHotel:
		return 1440
	default:
		return 120
	}
}

// Place records a manual placement for an item onto a (date, time) cell.
// Dropping the same item twice leaves a single override; the map key makes
// this idempotent.
func Place(it *models.Itinerary, itemType, itemID, date, clock string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return err
	}

	if it.Overrides == nil {
		it.Overrides = make(map[string]models.ManualPlacement)
	}
	it.Overrides[EntryKey(itemType, itemID)] = models.ManualPlacement{
		Date: date,
		Time: FormatClock(minutes),
	}
	return nil
}

// ClearPlacement drops the manual placement for an item, reverting it to
// the generated slot on the next Build.
func ClearPlacement(it *models.Itinerary, itemType, itemID string) {
	delete(it.Overrides, EntryKey(itemType, itemID))
}
