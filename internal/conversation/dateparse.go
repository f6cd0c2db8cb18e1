package conversation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Deterministic date parsing. Patterns are tried in a fixed precedence
// order; the first match wins. All results are anchored to midnight in
// the business time zone. Callers fall back to the LLM matcher when
// nothing here matches.

var (
	isoDateRe    = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	dottedDateRe = regexp.MustCompile(`(\d{1,2})\.\s*(\d{1,2})\.(?:\s*(\d{2,4}))?`)
	spacedDateRe = regexp.MustCompile(`\b(\d{1,2})\s+(\d{1,2})(?:\s+(\d{2,4}))?\b`)
	slashDateRe  = regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})\b`)

	czechMonthRe = regexp.MustCompile(`(?i)(\d{1,2})\.?\s+(ledna|unora|února|brezna|března|dubna|kvetna|května|cervna|června|července|cervence|srpna|zari|září|rijna|října|listopadu|prosince)(?:\s+(\d{4}))?`)

	englishDayFirstRe   = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december)(?:\s+(\d{4}))?`)
	englishMonthFirstRe = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{4}))?`)

	czechWeekdayRe   = regexp.MustCompile(`(?i)\b(pondělí|pondeli|pondelí|úterý|utery|uterý|středa|streda|čtvrtek|ctvrtek|pátek|patek|sobota|sobotu|neděle|nedele)\b`)
	englishWeekdayRe = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	tomorrowRe      = regexp.MustCompile(`(?i)\b(tomorrow|zítra|zitra)\b`)
	todayRe         = regexp.MustCompile(`(?i)\b(today|dnes|dneska)\b`)
	afterTomorrowRe = regexp.MustCompile(`(?i)\b(day\s+after\s+tomorrow|pozítří|pozitri|pozítři|pozitří)\b`)

	morningRe   = regexp.MustCompile(`(?i)\b(morning|ráno|rano|dopoledne)\b`)
	afternoonRe = regexp.MustCompile(`(?i)\b(afternoon|odpoledne)\b`)
	eveningRe   = regexp.MustCompile(`(?i)\b(evening|večer|vecer)\b`)
)

var czechMonths = map[string]time.Month{
	"ledna":     time.January,
	"února":     time.February,
	"unora":     time.February,
	"března":    time.March,
	"brezna":    time.March,
	"dubna":     time.April,
	"května":    time.May,
	"kvetna":    time.May,
	"června":    time.June,
	"cervna":    time.June,
	"července":  time.July,
	"cervence":  time.July,
	"srpna":     time.August,
	"září":      time.September,
	"zari":      time.September,
	"října":     time.October,
	"rijna":     time.October,
	"listopadu": time.November,
	"prosince":  time.December,
}

var englishMonths = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var czechWeekdays = map[string]time.Weekday{
	"pondělí": time.Monday,
	"pondelí": time.Monday,
	"pondeli": time.Monday,
	"úterý":   time.Tuesday,
	"utery":   time.Tuesday,
	"uterý":   time.Tuesday,
	"středa":  time.Wednesday,
	"streda":  time.Wednesday,
	"čtvrtek": time.Thursday,
	"ctvrtek": time.Thursday,
	"pátek":   time.Friday,
	"patek":   time.Friday,
	"sobota":  time.Saturday,
	"sobotu":  time.Saturday,
	"neděle":  time.Sunday,
	"nedele":  time.Sunday,
}

var englishWeekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseRequestedDate extracts a calendar date from free text. The
// returned time is midnight in loc. ok is false when no deterministic
// rule matched.
func ParseRequestedDate(text string, now time.Time, loc *time.Location) (time.Time, bool) {
	now = now.In(loc)

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return makeDate(year, time.Month(month), day, loc)
	}

	if m := dottedDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := coerceYear(m[3], now.Year())
		return makeDate(year, time.Month(month), day, loc)
	}

	if m := spacedDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			year := coerceYear(m[3], now.Year())
			if d, ok := makeDate(year, time.Month(month), day, loc); ok {
				return d, true
			}
		}
	}

	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := coerceYear(m[3], now.Year())
		// Day-first is the primary reading; swap when only the
		// month-first reading is in range.
		if month > 12 && day <= 12 {
			day, month = month, day
		}
		if d, ok := makeDate(year, time.Month(month), day, loc); ok {
			return d, true
		}
	}

	if m := czechMonthRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := czechMonths[strings.ToLower(m[2])]
		year := coerceYear(m[3], now.Year())
		return makeDate(year, month, day, loc)
	}

	if m := englishDayFirstRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := englishMonths[strings.ToLower(m[2])]
		year := coerceYear(m[3], now.Year())
		return makeDate(year, month, day, loc)
	}

	if m := englishMonthFirstRe.FindStringSubmatch(text); m != nil {
		month := englishMonths[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		year := coerceYear(m[3], now.Year())
		return makeDate(year, month, day, loc)
	}

	if afterTomorrowRe.MatchString(text) {
		return midnight(now.AddDate(0, 0, 2)), true
	}
	if tomorrowRe.MatchString(text) {
		return midnight(now.AddDate(0, 0, 1)), true
	}
	if todayRe.MatchString(text) {
		return midnight(now), true
	}

	if m := czechWeekdayRe.FindStringSubmatch(text); m != nil {
		if wd, ok := czechWeekdays[strings.ToLower(m[1])]; ok {
			return nextWeekday(now, wd), true
		}
	}
	if m := englishWeekdayRe.FindStringSubmatch(text); m != nil {
		if wd, ok := englishWeekdays[strings.ToLower(m[1])]; ok {
			return nextWeekday(now, wd), true
		}
	}

	return time.Time{}, false
}

// ParseTimePreference extracts a coarse morning/afternoon/evening
// bucket from free text.
func ParseTimePreference(text string) (TimePreference, bool) {
	switch {
	case morningRe.MatchString(text):
		return PrefMorning, true
	case afternoonRe.MatchString(text):
		return PrefAfternoon, true
	case eveningRe.MatchString(text):
		return PrefEvening, true
	}
	return "", false
}

func coerceYear(raw string, current int) int {
	if raw == "" {
		return current
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return current
	}
	if len(raw) == 2 {
		return 2000 + y
	}
	return y
}

// makeDate validates the components instead of letting time.Date
// normalize an impossible day into the next month.
func makeDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextWeekday returns the next occurrence of wd from t, today included.
func nextWeekday(t time.Time, wd time.Weekday) time.Time {
	d := midnight(t)
	for i := 0; i < 7; i++ {
		if d.Weekday() == wd {
			return d
		}
		d = d.AddDate(0, 0, 1)
	}
	return d
}
