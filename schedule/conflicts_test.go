package schedule

import (
	"strings"
	"testing"

	"fairway/models"
)

func entry(key, name, date string, startMin, duration int) models.ScheduledEntry {
	return models.ScheduledEntry{
		Key:          key,
		Name:         name,
		Date:         date,
		Start:        FormatClock(startMin),
		StartMinutes: startMin,
		Duration:     duration,
	}
}

func TestConflictSymmetry(t *testing.T) {
	entries := []models.ScheduledEntry{
		entry("golf_a", "Course A", "2026-06-01", 540, 240),        // 9:00-13:00
		entry("experience_b", "Spa", "2026-06-01", 720, 120),       // 12:00-14:00, clashes
		entry("restaurant_c", "Grill", "2026-06-01", 1140, 120),    // 19:00-21:00, clear
	}

	conflicts := Detect(entries)
	if len(conflicts)%2 != 0 {
		t.Fatalf("ordered conflict count %d not even", len(conflicts))
	}

	// every (A,B) has its mirror (B,A)
	pairs := make(map[string]bool)
	for _, c := range conflicts {
		pairs[c.AKey+"|"+c.BKey] = true
	}
	for _, c := range conflicts {
		if !pairs[c.BKey+"|"+c.AKey] {
			t.Errorf("conflict %s vs %s has no mirror", c.AKey, c.BKey)
		}
	}

	deduped := DedupePairs(conflicts)
	if len(deduped) != 1 {
		t.Fatalf("expected 1 deduped conflict, got %d", len(deduped))
	}
	if !strings.Contains(deduped[0].Message, "on 2026-06-01") {
		t.Errorf("unexpected message %q", deduped[0].Message)
	}
}

func TestNoConflictAcrossDays(t *testing.T) {
	entries := []models.ScheduledEntry{
		entry("golf_a", "Course A", "2026-06-01", 540, 240),
		entry("golf_b", "Course B", "2026-06-02", 540, 240),
	}
	if conflicts := Detect(entries); len(conflicts) != 0 {
		t.Fatalf("entries on different days conflicted: %v", conflicts)
	}
}

func TestHalfOpenIntervalsTouchingDoNotConflict(t *testing.T) {
	entries := []models.ScheduledEntry{
		entry("golf_a", "Course A", "2026-06-01", 540, 240),     // ends 13:00
		entry("experience_b", "Spa", "2026-06-01", 780, 120),    // starts 13:00
	}
	if conflicts := Detect(entries); len(conflicts) != 0 {
		t.Fatalf("touching intervals conflicted: %v", conflicts)
	}
}

func TestContainmentConflicts(t *testing.T) {
	entries := []models.ScheduledEntry{
		entry("golf_a", "Course A", "2026-06-01", 540, 240),   // 9:00-13:00
		entry("experience_b", "Spa", "2026-06-01", 600, 60),   // 10:00-11:00, inside
	}
	if conflicts := Detect(entries); len(conflicts) != 2 {
		t.Fatalf("expected containment conflict both ways, got %d", len(conflicts))
	}
}

func TestHotelSpansNeverConflict(t *testing.T) {
	entries := []models.ScheduledEntry{
		{Key: "hotel_h", Name: "Lodge", Date: "2026-06-01", StartMinutes: 900, EndDate: "2026-06-03", EndTime: "11:00 AM"},
		entry("golf_a", "Course A", "2026-06-01", 900, 240),
	}
	if conflicts := Detect(entries); len(conflicts) != 0 {
		t.Fatalf("hotel span conflicted with same-day activity: %v", conflicts)
	}
}

func TestSummarizeCapsAtThree(t *testing.T) {
	// five activities all at the same time produce C(5,2)=10 unordered pairs
	var entries []models.ScheduledEntry
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		entries = append(entries, entry("experience_"+id, "X "+id, "2026-06-01", 600, 120))
	}

	msgs := Summarize(Detect(entries), 3)
	if len(msgs) != 4 {
		t.Fatalf("expected 3 messages plus summary, got %d: %v", len(msgs), msgs)
	}
	if msgs[3] != "+7 more" {
		t.Errorf("summary line = %q, want \"+7 more\"", msgs[3])
	}
}
