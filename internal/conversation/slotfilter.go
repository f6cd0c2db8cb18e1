package conversation

import (
	"sort"
	"time"
)

// TimePreference is a coarse time-of-day bucket used to narrow slots.
type TimePreference string

const (
	PrefMorning   TimePreference = "morning"
	PrefAfternoon TimePreference = "afternoon"
	PrefEvening   TimePreference = "evening"
)

// Matches reports whether an hour in the business time zone falls into
// this bucket. Morning is before 12:00, afternoon 12:00-16:59, evening
// 17:00 onward.
func (p TimePreference) Matches(hour int) bool {
	switch p {
	case PrefMorning:
		return hour < 12
	case PrefAfternoon:
		return hour >= 12 && hour < 17
	case PrefEvening:
		return hour >= 17
	}
	return true
}

// FilterSlots drops past and duplicate slots and, when pref is
// non-empty, keeps only slots in the preferred bucket. Order is
// preserved and the function is idempotent.
func FilterSlots(slots []Slot, now time.Time, loc *time.Location, pref TimePreference) []Slot {
	out := make([]Slot, 0, len(slots))
	seen := make(map[[2]int64]struct{}, len(slots))

	for _, s := range slots {
		if !s.Start.After(now) {
			continue
		}
		key := [2]int64{s.Start.UnixNano(), s.End.UnixNano()}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if pref != "" && !pref.Matches(s.Start.In(loc).Hour()) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NearbySlot is a candidate slot near a requested hour.
type NearbySlot struct {
	Slot Slot
	// Diff is the absolute distance from the requested hour.
	Diff time.Duration
}

// FindNearbySlots returns slots whose start is within the given window
// of the requested hour, closest first. Used when a bare hour has no
// exact slot match.
func FindNearbySlots(requestedHour int, slots []Slot, loc *time.Location, window time.Duration) []NearbySlot {
	requested := time.Duration(requestedHour) * time.Hour

	nearby := make([]NearbySlot, 0, len(slots))
	for _, s := range slots {
		start := s.Start.In(loc)
		offset := time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute
		diff := offset - requested
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			nearby = append(nearby, NearbySlot{Slot: s, Diff: diff})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool { return nearby[i].Diff < nearby[j].Diff })
	return nearby
}
