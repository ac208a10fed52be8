package schedule

import (
	"fmt"

	"fairway/models"
)

// Detect flags every ordered pair of same-day entries whose half-open
// minute intervals [start, start+duration) overlap. The relation is
// symmetric, so each clashing pair appears twice (A vs B and B vs A);
// DedupePairs collapses them. Pairwise comparison is fine here: a trip
// holds a handful of entries per day. Entries without a duration (hotel
// spans) never conflict.
func Detect(entries []models.ScheduledEntry) []models.Conflict {
	var conflicts []models.Conflict

	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			a, b := entries[i], entries[j]
			if a.Date != b.Date || a.Duration <= 0 || b.Duration <= 0 {
				continue
			}
			if overlaps(a.StartMinutes, a.Duration, b.StartMinutes, b.Duration) {
				conflicts = append(conflicts, models.Conflict{
					AKey:    a.Key,
					BKey:    b.Key,
					Date:    a.Date,
					Message: fmt.Sprintf("%s conflicts with %s on %s", a.Name, b.Name, a.Date),
				})
			}
		}
	}

	return conflicts
}

func overlaps(aStart, aDur, bStart, bDur int) bool {
	aEnd := aStart + aDur
	bEnd := bStart + bDur

	startsDuring := aStart >= bStart && aStart < bEnd
	endsDuring := aEnd > bStart && aEnd <= bEnd
	contains := aStart <= bStart && aEnd >= bEnd

	return startsDuring || endsDuring || contains
}

// DedupePairs keeps one conflict per unordered entry pair.
func DedupePairs(conflicts []models.Conflict) []models.Conflict {
	seen := make(map[string]bool)
	var out []models.Conflict

	for _, c := range conflicts {
		key := c.AKey + "|" + c.BKey
		if c.BKey < c.AKey {
			key = c.BKey + "|" + c.AKey
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// Summarize renders at most max conflict messages plus a "+N more" line.
// Conflicts are advisory; they never block checkout.
func Summarize(conflicts []models.Conflict, max int) []string {
	deduped := DedupePairs(conflicts)

	var msgs []string
	for i, c := range deduped {
		if i == max {
			msgs = append(msgs, fmt.Sprintf("+%d more", len(deduped)-max))
			break
		}
		msgs = append(msgs, c.Message)
	}
	return msgs
}
