package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hradek/salon-booking-ai/pkg/logging"
)

// Matcher is the LLM-backed fallback used when deterministic parsing
// fails. Every method degrades gracefully: a transport failure or a
// malformed reply is logged and treated as "no match", never as an
// error for the caller. With a nil LLM client only the regex
// heuristics run, which keeps the state machine fully testable
// offline.
type Matcher struct {
	llm     LLMClient
	loc     *time.Location
	timeout time.Duration
	logger  *logging.Logger
	now     func() time.Time
}

func NewMatcher(llm LLMClient, loc *time.Location, timeout time.Duration, logger *logging.Logger) *Matcher {
	if loc == nil {
		loc = time.UTC
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Matcher{
		llm:     llm,
		loc:     loc,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// ServiceMatch is the outcome of service resolution. Candidates is
// populated instead of Service when the matcher saw several plausible
// options; the caller must ask the user rather than guess.
type ServiceMatch struct {
	Service    *Service
	Candidates []Service
}

// BookingQuery is the joint {service, date, time preference}
// extraction from a single utterance. Absent components are left zero.
type BookingQuery struct {
	Service *Service
	Date    time.Time
	HasDate bool
	Pref    TimePreference
}

var (
	contactPairRe  = regexp.MustCompile(`^([^,]+),\s*([\w.-]+@[\w.-]+\.[A-Za-z]{2,})$`)
	timeChangeRe   = regexp.MustCompile(`(?i)(\d{1,2}[\.:,\s]\d{1,2})|(\b[vV]\s+\d{1,2})|(\bmorning\b|\bafternoon\b|\bevening\b|\báno\b|\bodpoledne\b|\bkolem\b|\bchange\b|\bzměn\b)`)
	businessInfoRe = regexp.MustCompile(`(?i)\b(hours?|open|opening|close|closing|address|location|where|contact|phone|email|kdy|otevírací|zavírací|doba|adresa|kde|kontakt)\b`)
	isoReplyRe     = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	jsonObjectRe   = regexp.MustCompile(`(?s)\{.*\}`)
)

func (m *Matcher) complete(ctx context.Context, system, user string, maxTokens int32) (string, bool) {
	if m.llm == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	text, err := m.llm.Complete(ctx, LLMRequest{
		System:      system,
		User:        user,
		MaxTokens:   maxTokens,
		Temperature: 0,
	})
	if err != nil {
		m.logger.Warn("llm call failed", "error", err.Error())
		return "", false
	}
	return strings.TrimSpace(text), true
}

// MatchService resolves a free-text service description against the
// candidate list using synonyms and typo tolerance.
func (m *Matcher) MatchService(ctx context.Context, input string, services []Service) *ServiceMatch {
	if len(services) == 0 {
		return nil
	}

	var list strings.Builder
	for i, s := range services {
		fmt.Fprintf(&list, "%d. %s\n", i+1, s.Name)
	}

	system := fmt.Sprintf(`You are a service matcher. The user wants to book a service and has described it in their own words.

Available services:
%s
Match the user's request to ONE of these services, accounting for synonyms (e.g. "haircut" = "cut" = "střih"), partial names, variations in any language, and typos.

If there's a clear match, respond with ONLY the service number (1-%d).
If unclear or no good match, respond with "UNCLEAR".
If multiple possible matches, respond with "MULTIPLE: " followed by the numbers separated by commas (e.g. "MULTIPLE: 1,3").`, list.String(), len(services))

	reply, ok := m.complete(ctx, system, fmt.Sprintf("User wants: %q", input), 20)
	if !ok || reply == "" || strings.EqualFold(reply, "UNCLEAR") {
		return nil
	}

	if rest, found := strings.CutPrefix(reply, "MULTIPLE:"); found {
		var candidates []Service
		for _, part := range strings.Split(rest, ",") {
			if idx, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && idx >= 1 && idx <= len(services) {
				candidates = append(candidates, services[idx-1])
			}
		}
		if len(candidates) == 0 {
			return nil
		}
		if len(candidates) == 1 {
			return &ServiceMatch{Service: &candidates[0]}
		}
		return &ServiceMatch{Candidates: candidates}
	}

	if idx, err := strconv.Atoi(reply); err == nil && idx >= 1 && idx <= len(services) {
		svc := services[idx-1]
		return &ServiceMatch{Service: &svc}
	}
	return nil
}

// MatchSlot resolves a natural-language time description ("morning",
// "around 2", "early") to one of the candidate slots.
func (m *Matcher) MatchSlot(ctx context.Context, input string, slots []Slot) *Slot {
	if len(slots) == 0 {
		return nil
	}

	var list strings.Builder
	for i, s := range slots {
		start := s.Start.In(m.loc)
		end := s.End.In(m.loc)
		fmt.Fprintf(&list, "%d. %s (%s) - %s (%s)\n",
			i+1,
			start.Format("15:04"), start.Format("3:04 PM"),
			end.Format("15:04"), end.Format("3:04 PM"))
	}

	system := fmt.Sprintf(`You are a time slot matcher. The user wants to book a time slot and has given a natural language description.

Available time slots:
%s
Select the BEST MATCHING slot number (1-%d).

Rules:
- "morning"/"ráno"/"dopoledne" = earliest slots (before 12:00)
- "afternoon"/"odpoledne" = slots between 12:00-17:00
- "evening"/"večer"/"late" = slots after 17:00
- "around X"/"kolem X"/"at X"/"v X" = closest slot to that hour
- "early"/"brzy" = first available slot, "late"/"pozdě" = last available slot
- "after X"/"po X" = first slot after time X, "before X"/"před X" = last slot before time X
- An exact time ("10:00", "14:30", "V 10") matches exactly.

If unclear or no good match, return "UNCLEAR".
Respond with ONLY the slot number, nothing else.`, list.String(), len(slots))

	reply, ok := m.complete(ctx, system, fmt.Sprintf("User wants: %q", input), 10)
	if !ok || reply == "" || strings.EqualFold(reply, "UNCLEAR") {
		return nil
	}

	if idx, err := strconv.Atoi(reply); err == nil && idx >= 1 && idx <= len(slots) {
		slot := slots[idx-1]
		return &slot
	}
	return nil
}

// ParseDate extracts a date from complex natural language the
// deterministic parser could not handle.
func (m *Matcher) ParseDate(ctx context.Context, input string) (time.Time, bool) {
	today := m.now().In(m.loc)

	system := fmt.Sprintf(`You are a precise date parser. Extract the requested date from natural language input and return ONLY in ISO format (YYYY-MM-DD).

TODAY'S DATE: %s (%s)

Rules:
- "tomorrow"/"zítra" = %s, "today"/"dnes" = %s, "day after tomorrow"/"pozítří" = %s
- Czech months and weekdays work with or without diacritics
- For "next [weekday]" or "this [weekday]", find the next occurrence from today
- For "in X days", add X days to today
- If unclear or ambiguous, return "UNCLEAR". NEVER guess.

RESPOND WITH ONLY THE DATE: YYYY-MM-DD`,
		today.Format("2006-01-02"), today.Format("Monday, 2 January 2006"),
		today.AddDate(0, 0, 1).Format("2006-01-02"),
		today.Format("2006-01-02"),
		today.AddDate(0, 0, 2).Format("2006-01-02"))

	reply, ok := m.complete(ctx, system, fmt.Sprintf("Extract date from: %q", input), 20)
	if !ok || reply == "" || strings.EqualFold(reply, "UNCLEAR") {
		return time.Time{}, false
	}

	match := isoReplyRe.FindString(reply)
	if match == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation("2006-01-02", match, m.loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// ExtractBookingQuery attempts joint extraction of service, date and
// time preference from a single message.
func (m *Matcher) ExtractBookingQuery(ctx context.Context, input string, services []Service) *BookingQuery {
	if len(services) == 0 {
		return nil
	}

	var list strings.Builder
	for i, s := range services {
		fmt.Fprintf(&list, "%d. %s\n", i+1, s.Name)
	}
	today := m.now().In(m.loc)

	system := fmt.Sprintf(`You are a booking request parser. Extract THREE components from the user's message: the SERVICE, the DATE and the TIME preference.

Available services:
%s
TODAY'S DATE: %s (%s)

Time definitions: "morning"/"ráno"/"dopoledne" = before 12:00, "afternoon"/"odpoledne" = 12:00-17:00, "evening"/"večer" = after 17:00.

Respond in JSON format ONLY:
{"service": <service number 1-%d or null>, "date": "YYYY-MM-DD" or null, "timePreference": "morning" | "afternoon" | "evening" | null}

If any component is missing or unclear, use null for that field.
Respond with ONLY valid JSON, nothing else.`,
		list.String(), today.Format("2006-01-02"), today.Format("Monday, 2 January 2006"), len(services))

	reply, ok := m.complete(ctx, system, fmt.Sprintf("Parse this request: %q", input), 100)
	if !ok {
		return nil
	}

	blob := jsonObjectRe.FindString(reply)
	if blob == "" {
		return nil
	}

	var parsed struct {
		Service        *int    `json:"service"`
		Date           *string `json:"date"`
		TimePreference *string `json:"timePreference"`
	}
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
		m.logger.Warn("booking query reply not parseable", "reply", reply)
		return nil
	}

	q := &BookingQuery{}
	if parsed.Service != nil && *parsed.Service >= 1 && *parsed.Service <= len(services) {
		svc := services[*parsed.Service-1]
		q.Service = &svc
	}
	if parsed.Date != nil {
		if d, err := time.ParseInLocation("2006-01-02", *parsed.Date, m.loc); err == nil {
			q.Date = d
			q.HasDate = true
		}
	}
	if parsed.TimePreference != nil {
		switch TimePreference(*parsed.TimePreference) {
		case PrefMorning, PrefAfternoon, PrefEvening:
			q.Pref = TimePreference(*parsed.TimePreference)
		}
	}
	return q
}

// IsBusinessInfoRequest classifies whether the user is asking for
// hours, address or contact details.
func (m *Matcher) IsBusinessInfoRequest(ctx context.Context, input string) bool {
	system := `You are a query analyzer. Detect if the user is asking for business information like hours, address, location, contact details.

Examples of business info requests: "what are your hours?", "where are you located?", "kde jste?", "otevírací doba", "adresa".
Examples that are NOT: "I want a haircut", "book for tomorrow", "what services do you have?", "yes", "no".

Respond with ONLY "YES" or "NO".`

	reply, ok := m.complete(ctx, system, fmt.Sprintf("User message: %q", input), 5)
	if !ok {
		return businessInfoRe.MatchString(input)
	}
	return strings.EqualFold(reply, "YES")
}

// IsTimeChangeIntent detects whether a message typed at the contact
// step is actually an attempt to change the appointment time.
func (m *Matcher) IsTimeChangeIntent(ctx context.Context, input string) bool {
	// A well-formed "Name, email" pair is never a time change.
	if contactPairRe.MatchString(strings.TrimSpace(input)) {
		return false
	}

	system := `You are a context analyzer. The user was just asked to provide their name and email (format: "John Doe, john@example.com"), but we need to detect if they're actually trying to change their appointment time instead.

Examples of TIME change requests: "let's do 10 15", "change it to 10", "actually 9:30", "V 10", "morning instead", "ráno", "změň to na 10".
Examples that are NOT: "John Doe, john@example.com", "my name is John", "I don't have an email", "yes", "no".

Respond with ONLY "YES" if the user is trying to specify/change a TIME, or "NO" otherwise.`

	reply, ok := m.complete(ctx, system, fmt.Sprintf("User message: %q", input), 5)
	if !ok {
		return timeChangeRe.MatchString(input)
	}
	return strings.EqualFold(reply, "YES")
}

// FriendlyReply rephrases fallback copy through the LLM for messages
// that arrive outside the booking funnel. The static text is returned
// verbatim when no model is configured or the call fails.
func (m *Matcher) FriendlyReply(ctx context.Context, system, fallback string) string {
	reply, ok := m.complete(ctx, system, fallback, 120)
	if !ok || reply == "" {
		return fallback
	}
	return reply
}
