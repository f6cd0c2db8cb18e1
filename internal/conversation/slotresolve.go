package conversation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Deterministic slot-text resolution, shared by the slot-selection step
// and the time-change confirmation step so both interpret time text
// identically.

var (
	europeanTimeRe = regexp.MustCompile(`(?i)(?:\b[vV]\s+|at\s+)?(\d{1,2})[\.:,](\d{2})\b`)
	simpleHourRe   = regexp.MustCompile(`(?i)(?:\b[vV]\s+|at\s+)?(\d{1,2})\s*(?:hodin|h)?\b`)
	timeRangeRe    = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)?)\s*-\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?)`)
	exactTimeRe    = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)?)`)
	bareDigitsRe   = regexp.MustCompile(`[^\d]`)
)

type slotTextKind int

const (
	// slotTextNoMatch means no deterministic rule applied; the caller
	// should try the NL matcher.
	slotTextNoMatch slotTextKind = iota
	slotTextResolved
	slotTextNearby
	slotTextRangeMiss
	slotTextTimeMiss
)

type slotTextResult struct {
	kind          slotTextKind
	slot          *Slot
	nearby        []NearbySlot
	requestedHour int
}

// matchClock reports whether a slot start equals a typed clock string
// in either 12-hour or 24-hour form.
func matchClock(t time.Time, typed string) bool {
	typed = strings.TrimSpace(typed)
	return strings.EqualFold(t.Format("3:04 PM"), typed) || t.Format("15:04") == typed
}

// resolveSlotText applies the deterministic time-selection rules in
// precedence order: European hour.minute, bare "at H" hour, an
// explicit range, an exact clock time, and finally a bare hour number
// which falls back to nearby candidates within the tolerance window.
func resolveSlotText(text string, slots []Slot, loc *time.Location, nearbyWindow time.Duration) slotTextResult {
	europeanMatch := europeanTimeRe.FindStringSubmatch(text)
	if europeanMatch != nil {
		hour, _ := strconv.Atoi(europeanMatch[1])
		minute, _ := strconv.Atoi(europeanMatch[2])
		for _, s := range slots {
			start := s.Start.In(loc)
			if start.Hour() == hour && start.Minute() == minute {
				slot := s
				return slotTextResult{kind: slotTextResolved, slot: &slot}
			}
		}
	}

	if europeanMatch == nil {
		if m := simpleHourRe.FindStringSubmatch(text); m != nil {
			hour, _ := strconv.Atoi(m[1])
			for _, s := range slots {
				start := s.Start.In(loc)
				if start.Hour() == hour && start.Minute() == 0 {
					slot := s
					return slotTextResult{kind: slotTextResolved, slot: &slot}
				}
			}
		}
	}

	if m := timeRangeRe.FindStringSubmatch(text); m != nil {
		for _, s := range slots {
			if matchClock(s.Start.In(loc), m[1]) && matchClock(s.End.In(loc), m[2]) {
				slot := s
				return slotTextResult{kind: slotTextResolved, slot: &slot}
			}
		}
		return slotTextResult{kind: slotTextRangeMiss}
	}

	if m := exactTimeRe.FindStringSubmatch(text); m != nil {
		for _, s := range slots {
			if matchClock(s.Start.In(loc), m[1]) {
				slot := s
				return slotTextResult{kind: slotTextResolved, slot: &slot}
			}
		}
		return slotTextResult{kind: slotTextTimeMiss}
	}

	// A short bare number like "9" or "14?" is read as an hour and
	// resolved to the nearest slots.
	digits := bareDigitsRe.ReplaceAllString(text, "")
	if len(text) <= 4 && len(digits) >= 1 && len(digits) <= 2 {
		hour, err := strconv.Atoi(digits)
		if err == nil && hour >= 0 && hour <= 23 {
			nearby := FindNearbySlots(hour, slots, loc, nearbyWindow)
			if len(nearby) > 0 {
				for _, n := range nearby {
					start := n.Slot.Start.In(loc)
					if start.Hour() == hour && start.Minute() == 0 {
						slot := n.Slot
						return slotTextResult{kind: slotTextResolved, slot: &slot}
					}
				}
				if len(nearby) > 5 {
					nearby = nearby[:5]
				}
				return slotTextResult{kind: slotTextNearby, nearby: nearby, requestedHour: hour}
			}
		}
	}

	return slotTextResult{kind: slotTextNoMatch}
}
