package reservations

import (
	"testing"
	"time"

	"fairway/models"
)

func TestEffectiveStatusLiveLock(t *testing.T) {
	now := time.Now()
	lock := models.SlotLock{
		Status:    models.LockLocked,
		ExpiresAt: now.Add(2 * time.Minute),
	}
	if got := EffectiveStatus(lock, now); got != models.LockLocked {
		t.Errorf("live lock reads as %s, want locked", got)
	}
}

func TestEffectiveStatusOverdueLockReadsExpired(t *testing.T) {
	now := time.Now()
	lock := models.SlotLock{
		Status:    models.LockLocked,
		ExpiresAt: now.Add(-time.Second),
	}
	if got := EffectiveStatus(lock, now); got != models.LockExpired {
		t.Errorf("overdue lock reads as %s, want expired", got)
	}
}

func TestEffectiveStatusTerminalStatesStick(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	confirmed := models.SlotLock{Status: models.LockConfirmed, ExpiresAt: past}
	if got := EffectiveStatus(confirmed, now); got != models.LockConfirmed {
		t.Errorf("confirmed lock reads as %s past its TTL, want confirmed", got)
	}

	expired := models.SlotLock{Status: models.LockExpired, ExpiresAt: past}
	if got := EffectiveStatus(expired, now); got != models.LockExpired {
		t.Errorf("expired lock reads as %s, want expired", got)
	}
}

func TestSlotKeyShape(t *testing.T) {
	got := slotKey("r1", "2026-06-05", "7:30 PM")
	want := "slotlock:r1:2026-06-05:7:30 PM"
	if got != want {
		t.Errorf("slotKey = %q, want %q", got, want)
	}
}

func TestSeatingGridCoversDinnerService(t *testing.T) {
	grid := SeatingGrid(nil)
	if len(grid) != 10 {
		t.Fatalf("grid has %d slots, want 10", len(grid))
	}
	if grid[0].Time != "5:00 PM" {
		t.Errorf("first slot %q, want 5:00 PM", grid[0].Time)
	}
	if grid[len(grid)-1].Time != "9:30 PM" {
		t.Errorf("last slot %q, want 9:30 PM", grid[len(grid)-1].Time)
	}
	for _, s := range grid {
		if s.Status != "available" {
			t.Errorf("slot %s status %q with no holds", s.Time, s.Status)
		}
	}
}

func TestSeatingGridMarksHolds(t *testing.T) {
	taken := map[string]string{
		"7:00 PM": "locked",
		"8:30 PM": "confirmed",
	}
	byTime := map[string]string{}
	for _, s := range SeatingGrid(taken) {
		byTime[s.Time] = s.Status
	}
	if byTime["7:00 PM"] != "locked" {
		t.Errorf("7:00 PM status %q, want locked", byTime["7:00 PM"])
	}
	if byTime["8:30 PM"] != "confirmed" {
		t.Errorf("8:30 PM status %q, want confirmed", byTime["8:30 PM"])
	}
	if byTime["6:00 PM"] != "available" {
		t.Errorf("6:00 PM status %q, want available", byTime["6:00 PM"])
	}
}
