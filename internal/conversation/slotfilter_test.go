package conversation

import (
	"testing"
	"time"
)

func slotAt(loc *time.Location, day, hour, min int) Slot {
	start := time.Date(2025, 10, day, hour, min, 0, 0, loc)
	return Slot{Start: start, End: start.Add(30 * time.Minute)}
}

func TestFilterSlots_DropsPastAndDuplicates(t *testing.T) {
	loc := pragueLoc(t)
	now := time.Date(2025, 10, 7, 10, 15, 0, 0, loc)

	slots := []Slot{
		slotAt(loc, 7, 9, 0),   // past
		slotAt(loc, 7, 10, 15), // exactly now, not strictly after
		slotAt(loc, 7, 11, 0),
		slotAt(loc, 7, 11, 0), // duplicate
		slotAt(loc, 7, 14, 0),
	}

	got := FilterSlots(slots, now, loc, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 slots, got %d: %+v", len(got), got)
	}
	for _, s := range got {
		if !s.Start.After(now) {
			t.Errorf("slot %s not strictly after now", s.Start)
		}
	}
	if got[0].Start.Hour() != 11 || got[1].Start.Hour() != 14 {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestFilterSlots_TimePreference(t *testing.T) {
	loc := pragueLoc(t)
	now := time.Date(2025, 10, 7, 0, 0, 0, 0, loc)

	slots := []Slot{
		slotAt(loc, 7, 9, 0),
		slotAt(loc, 7, 11, 30),
		slotAt(loc, 7, 12, 0),
		slotAt(loc, 7, 16, 30),
		slotAt(loc, 7, 17, 0),
		slotAt(loc, 7, 19, 0),
	}

	tests := []struct {
		pref  TimePreference
		hours []int
	}{
		{PrefMorning, []int{9, 11}},
		{PrefAfternoon, []int{12, 16}},
		{PrefEvening, []int{17, 19}},
	}

	for _, tt := range tests {
		got := FilterSlots(slots, now, loc, tt.pref)
		if len(got) != len(tt.hours) {
			t.Fatalf("%s: expected %d slots, got %+v", tt.pref, len(tt.hours), got)
		}
		for i, s := range got {
			if s.Start.In(loc).Hour() != tt.hours[i] {
				t.Errorf("%s: slot %d at hour %d, want %d", tt.pref, i, s.Start.In(loc).Hour(), tt.hours[i])
			}
		}
	}
}

func TestFilterSlots_Idempotent(t *testing.T) {
	loc := pragueLoc(t)
	now := time.Date(2025, 10, 7, 8, 0, 0, 0, loc)

	slots := []Slot{
		slotAt(loc, 7, 7, 0),
		slotAt(loc, 7, 9, 0),
		slotAt(loc, 7, 9, 0),
		slotAt(loc, 7, 13, 0),
	}

	once := FilterSlots(slots, now, loc, PrefMorning)
	twice := FilterSlots(once, now, loc, PrefMorning)

	if len(once) != len(twice) {
		t.Fatalf("not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Equal(twice[i]) {
			t.Errorf("slot %d differs after refiltering", i)
		}
	}
}

func TestFindNearbySlots(t *testing.T) {
	loc := pragueLoc(t)

	slots := []Slot{
		slotAt(loc, 7, 9, 0),
		slotAt(loc, 7, 10, 30),
		slotAt(loc, 7, 11, 15),
		slotAt(loc, 7, 15, 0),
	}

	got := FindNearbySlots(10, slots, loc, 90*time.Minute)
	if len(got) != 3 {
		t.Fatalf("expected 3 nearby slots, got %+v", got)
	}
	// Closest first: 10:30 (30m), 9:00 (60m), 11:15 (75m).
	if got[0].Slot.Start.In(loc).Format("15:04") != "10:30" {
		t.Errorf("closest slot = %s, want 10:30", got[0].Slot.Start.In(loc).Format("15:04"))
	}
	if got[1].Slot.Start.In(loc).Format("15:04") != "09:00" {
		t.Errorf("second slot = %s, want 09:00", got[1].Slot.Start.In(loc).Format("15:04"))
	}
	if got[2].Slot.Start.In(loc).Format("15:04") != "11:15" {
		t.Errorf("third slot = %s, want 11:15", got[2].Slot.Start.In(loc).Format("15:04"))
	}
}

func TestFindNearbySlots_EmptyWhenOutOfWindow(t *testing.T) {
	loc := pragueLoc(t)
	slots := []Slot{slotAt(loc, 7, 15, 0)}

	if got := FindNearbySlots(9, slots, loc, 90*time.Minute); len(got) != 0 {
		t.Fatalf("expected no nearby slots, got %+v", got)
	}
}
