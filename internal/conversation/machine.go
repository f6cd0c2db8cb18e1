package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hradek/salon-booking-ai/pkg/logging"
)

var (
	greetingRe          = regexp.MustCompile(`(?i)^(hi|hello|hey|start|restart|menu|ahoj|nazdar|dobrý den|začít|znovu)$`)
	serviceMenuRe       = regexp.MustCompile(`(?i)\b(services?|menu|what|show|list|available|dostupné|služby)\b`)
	moreSlotsRe         = regexp.MustCompile(`(?i)\b(more|other|additional|another|více|dalši|další|jiné)\b`)
	availabilityAskRe   = regexp.MustCompile(`(?i)\b(what|which|show|list|see|available|slots?)\b`)
	yesRe               = regexp.MustCompile(`(?i)^\s*(yes|yeah|yep|ano|jo)\b`)
	noRe                = regexp.MustCompile(`(?i)^\s*(no|nope|ne)\b`)
	timeChangeExtractRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

// keyedMutex serializes Handle calls per user identifier so concurrent
// webhook deliveries for the same user cannot interleave session writes.
type keyedMutex struct {
	mu sync.Map
}

func (k *keyedMutex) lock(key string) func() {
	v, _ := k.mu.LoadOrStore(key, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// MachineConfig wires the booking state machine.
type MachineConfig struct {
	Sessions SessionStore
	Gateway  Gateway
	Matcher  *Matcher

	// Optional side channels. A nil value disables the feature.
	Contacts ContactStore
	Recorder BookingRecorder
	Notifier Notifier

	// Venues is the set of bookable locations. One venue skips the
	// venue-selection step entirely.
	Venues []Venue

	Messages     *Messages
	Location     *time.Location
	Logger       *logging.Logger
	PageSize     int
	NearbyWindow time.Duration
}

// Machine drives the conversational booking funnel. One instance
// serves all users; per-user state lives in the session store.
type Machine struct {
	sessions SessionStore
	gateway  Gateway
	matcher  *Matcher
	contacts ContactStore
	recorder BookingRecorder
	notifier Notifier

	venues       []Venue
	msgs         *Messages
	loc          *time.Location
	logger       *logging.Logger
	pageSize     int
	nearbyWindow time.Duration

	now   func() time.Time
	locks keyedMutex
}

func NewMachine(cfg MachineConfig) *Machine {
	if cfg.Sessions == nil {
		panic("conversation: session store is required")
	}
	if cfg.Gateway == nil {
		panic("conversation: gateway is required")
	}
	if len(cfg.Venues) == 0 {
		panic("conversation: at least one venue is required")
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Messages == nil {
		cfg.Messages = NewMessages("en")
	}
	if cfg.Matcher == nil {
		cfg.Matcher = NewMatcher(nil, cfg.Location, 10*time.Second, cfg.Logger)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.NearbyWindow <= 0 {
		cfg.NearbyWindow = 90 * time.Minute
	}
	return &Machine{
		sessions:     cfg.Sessions,
		gateway:      cfg.Gateway,
		matcher:      cfg.Matcher,
		contacts:     cfg.Contacts,
		recorder:     cfg.Recorder,
		notifier:     cfg.Notifier,
		venues:       cfg.Venues,
		msgs:         cfg.Messages,
		loc:          cfg.Location,
		logger:       cfg.Logger,
		pageSize:     cfg.PageSize,
		nearbyWindow: cfg.NearbyWindow,
		now:          time.Now,
	}
}

// Handle processes one inbound message and returns the reply text.
// Calls for the same identifier are serialized; the session is loaded
// once, mutated by the step handler, and saved once.
func (m *Machine) Handle(ctx context.Context, identifier, body string) (string, error) {
	unlock := m.locks.lock(identifier)
	defer unlock()

	text := strings.TrimSpace(body)

	if greetingRe.MatchString(text) {
		if err := m.sessions.Delete(ctx, identifier); err != nil {
			m.logger.Warn("failed to reset session", "identifier", identifier, "error", err)
		}
	}

	sess, err := m.sessions.Get(ctx, identifier)
	if err != nil {
		return "", fmt.Errorf("conversation: load session: %w", err)
	}

	var reply string
	switch {
	case sess == nil || sess.Step == "":
		if sess == nil {
			sess = &Session{}
		}
		reply = m.startSession(ctx, identifier, sess)
	// The interrupt needs a selected venue to answer about.
	case sess.Step != StepDone && sess.VenueID != "" && m.matcher.IsBusinessInfoRequest(ctx, text):
		reply = m.businessInfo(ctx, sess)
	default:
		reply = m.dispatch(ctx, identifier, sess, text)
	}

	sess.UpdatedAt = m.now()
	if err := m.sessions.Save(ctx, identifier, sess); err != nil {
		return "", fmt.Errorf("conversation: save session: %w", err)
	}
	return reply, nil
}

func (m *Machine) dispatch(ctx context.Context, identifier string, sess *Session, text string) string {
	switch sess.Step {
	case StepChooseVenue:
		return m.handleChooseVenue(ctx, sess, text)
	case StepChooseService:
		return m.handleChooseService(ctx, sess, text)
	case StepChooseDate:
		return m.handleChooseDate(ctx, sess, text)
	case StepChooseSlot:
		return m.handleChooseSlot(ctx, sess, text)
	case StepChooseNearbySlot:
		return m.handleChooseNearbySlot(ctx, sess, text)
	case StepAskContact:
		return m.handleAskContact(ctx, sess, text)
	case StepConfirmSavedInfo:
		return m.handleConfirmSavedInfo(sess, text)
	case StepConfirmTimeChange:
		return m.handleConfirmTimeChange(ctx, sess, text)
	case StepConfirmBooking:
		return m.handleConfirmBooking(ctx, identifier, sess, text)
	case StepDone:
		return m.matcher.FriendlyReply(ctx, m.msgs.SystemPromptGeneral(), m.msgs.DidntUnderstand())
	default:
		return m.msgs.ReturnToBooking()
	}
}

// startSession bootstraps a fresh funnel: venue selection when several
// locations are configured, otherwise straight to the service menu.
func (m *Machine) startSession(ctx context.Context, identifier string, sess *Session) string {
	if m.contacts != nil {
		c, err := m.contacts.LookupContact(ctx, identifier)
		if err != nil {
			m.logger.Warn("contact lookup failed", "identifier", identifier, "error", err)
		} else if c != nil {
			sess.SavedName = c.Name
			sess.SavedEmail = c.Email
		}
	}

	if len(m.venues) > 1 {
		sess.Step = StepChooseVenue
		sess.Venues = m.venues
		return m.msgs.SelectVenue() + "\n\n" + m.venueLines(m.venues) + "\n\n" + m.msgs.ReplyWithVenueNumber()
	}

	v := m.venues[0]
	sess.VenueID = v.ID
	sess.VenueName = v.Name

	if err := m.loadServices(ctx, sess); err != nil {
		// Step stays empty so the next message retries the bootstrap.
		return m.msgs.GatewayError()
	}
	sess.Step = StepChooseService

	name := m.businessName(ctx, sess)
	greeting := m.msgs.WelcomeExplained(name)
	if sess.SavedName != "" {
		greeting = m.msgs.WelcomeBack(sess.SavedName, name)
	}
	return greeting + "\n\n" + m.serviceMenu(sess)
}

func (m *Machine) handleChooseVenue(ctx context.Context, sess *Session, text string) string {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > len(sess.Venues) {
		return m.msgs.InvalidVenueNumber(len(sess.Venues)) + "\n\n" + m.venueLines(sess.Venues)
	}
	v := sess.Venues[n-1]
	sess.VenueID = v.ID
	sess.VenueName = v.Name
	sess.Venues = nil

	if err := m.loadServices(ctx, sess); err != nil {
		sess.Venues = m.venues
		return m.msgs.GatewayError()
	}
	sess.Step = StepChooseService
	return m.msgs.VenueSelected(v.Name) + "\n\n" + m.serviceMenu(sess)
}

func (m *Machine) handleChooseService(ctx context.Context, sess *Session, text string) string {
	if serviceMenuRe.MatchString(text) {
		return m.serviceMenu(sess)
	}

	// A single message may carry service, date and time preference at
	// once ("haircut tomorrow morning").
	if q := m.matcher.ExtractBookingQuery(ctx, text, sess.Services); q != nil && q.Service != nil {
		sess.ChosenService = q.Service
		if q.HasDate {
			return m.showSlotsForDate(ctx, sess, q.Date, q.Pref)
		}
		sess.PendingPref = q.Pref
		sess.Step = StepChooseDate
		return m.msgs.WhatDate()
	}

	trimmed := strings.TrimSpace(text)
	for i := range sess.Services {
		if strings.EqualFold(sess.Services[i].Name, trimmed) {
			sess.ChosenService = &sess.Services[i]
			sess.Step = StepChooseDate
			return m.msgs.WhatDate()
		}
	}

	if match := m.matcher.MatchService(ctx, text, sess.Services); match != nil {
		if match.Service != nil {
			sess.ChosenService = match.Service
			sess.Step = StepChooseDate
			return m.msgs.WhatDate()
		}
		if len(match.Candidates) > 0 {
			return m.msgs.MultipleServiceMatches() + "\n\n" + m.serviceLines(match.Candidates)
		}
	}

	return m.msgs.ReplyWithService() + "\n\n" + m.serviceMenu(sess)
}

func (m *Machine) handleChooseDate(ctx context.Context, sess *Session, text string) string {
	pref := sess.PendingPref
	prefTyped := false
	if p, ok := ParseTimePreference(text); ok {
		pref = p
		prefTyped = true
	}

	date, ok := ParseRequestedDate(text, m.now(), m.loc)
	if !ok {
		date, ok = m.matcher.ParseDate(ctx, text)
	}
	if !ok {
		if prefTyped {
			// Only a preference was given; keep it and ask again.
			sess.PendingPref = pref
			return m.msgs.WhatDate()
		}
		return m.msgs.DateNotUnderstood()
	}
	return m.showSlotsForDate(ctx, sess, date, pref)
}

func (m *Machine) handleChooseSlot(ctx context.Context, sess *Session, text string) string {
	if moreSlotsRe.MatchString(text) {
		return m.moreSlotsReply(sess)
	}

	// A date expression switches the day without leaving the step.
	if date, ok := ParseRequestedDate(text, m.now(), m.loc); ok {
		pref, _ := ParseTimePreference(text)
		return m.showSlotsForDate(ctx, sess, date, pref)
	}

	res := resolveSlotText(text, sess.Slots, m.loc, m.nearbyWindow)
	switch res.kind {
	case slotTextResolved:
		return m.transitionToContact(sess, *res.slot)
	case slotTextNearby:
		nearby := make([]Slot, 0, len(res.nearby))
		for _, n := range res.nearby {
			nearby = append(nearby, n.Slot)
		}
		sess.NearbySlots = nearby
		sess.RequestedTime = time.Date(2000, 1, 1, res.requestedHour, 0, 0, 0, time.UTC).Format("3:04 PM")
		sess.Step = StepChooseNearbySlot
		return m.msgs.NearbySlotsOffer(sess.RequestedTime, m.slotLines(nearby))
	case slotTextRangeMiss:
		return m.msgs.TimeRangeNotAvailable()
	case slotTextTimeMiss:
		return m.msgs.TimeNotAvailable()
	}

	if availabilityAskRe.MatchString(text) {
		return m.availabilityReply(sess)
	}

	if s := m.matcher.MatchSlot(ctx, text, sess.Slots); s != nil {
		return m.transitionToContact(sess, *s)
	}
	return m.msgs.SlotNotFound()
}

func (m *Machine) handleChooseNearbySlot(ctx context.Context, sess *Session, text string) string {
	if moreSlotsRe.MatchString(text) {
		sess.Step = StepChooseSlot
		sess.NearbySlots = nil
		sess.RequestedTime = ""
		return m.moreSlotsReply(sess)
	}

	if res := resolveSlotText(text, sess.NearbySlots, m.loc, m.nearbyWindow); res.kind == slotTextResolved {
		return m.transitionToContact(sess, *res.slot)
	}
	if s := m.matcher.MatchSlot(ctx, text, sess.NearbySlots); s != nil {
		return m.transitionToContact(sess, *s)
	}
	return m.msgs.PickNearbySlot(m.slotLines(sess.NearbySlots))
}

func (m *Machine) handleAskContact(ctx context.Context, sess *Session, text string) string {
	if sess.ChosenSlot != nil && m.matcher.IsTimeChangeIntent(ctx, text) {
		sess.RequestedTimeChange = text
		sess.Step = StepConfirmTimeChange
		return m.msgs.ConfirmTimeChange(m.msgs.FormatSlotFriendly(sess.ChosenSlot.Start, m.loc))
	}

	pm := contactPairRe.FindStringSubmatch(strings.TrimSpace(text))
	if pm == nil {
		return m.msgs.ProvideNameEmail()
	}
	name := strings.TrimSpace(pm[1])
	email := strings.ToLower(strings.TrimSpace(pm[2]))
	if strings.Contains(name, "@") {
		return m.msgs.InvalidNameFormat()
	}
	if len(email) < 5 || !strings.Contains(email, ".") {
		return m.msgs.InvalidEmail()
	}

	sess.CustomerName = name
	sess.CustomerEmail = email
	sess.SavedName = name
	sess.SavedEmail = email
	sess.Step = StepConfirmBooking
	return m.msgs.ConfirmBooking(name, email)
}

func (m *Machine) handleConfirmSavedInfo(sess *Session, text string) string {
	switch {
	case yesRe.MatchString(text):
		sess.CustomerName = sess.SavedName
		sess.CustomerEmail = sess.SavedEmail
		sess.Step = StepConfirmBooking
		return m.msgs.ConfirmBooking(sess.CustomerName, sess.CustomerEmail)
	case noRe.MatchString(text):
		sess.Step = StepAskContact
		return m.msgs.PleaseUpdateInfo()
	default:
		return m.msgs.ConfirmSavedInfo(sess.SavedName, sess.SavedEmail)
	}
}

func (m *Machine) handleConfirmTimeChange(ctx context.Context, sess *Session, text string) string {
	switch {
	case yesRe.MatchString(text):
		raw := sess.RequestedTimeChange
		sess.RequestedTimeChange = ""
		sess.ChosenSlot = nil
		sess.Step = StepChooseSlot
		if tm := timeChangeExtractRe.FindStringSubmatch(raw); tm != nil {
			// Replay the originally typed time through the same slot
			// resolution the selection step uses.
			minute := tm[2]
			if minute == "" {
				minute = "00"
			}
			typed := tm[1] + ":" + minute
			if tm[3] != "" {
				typed += " " + tm[3]
			}
			return m.handleChooseSlot(ctx, sess, typed)
		}
		return m.msgs.TimeChangeConfirmed()
	case noRe.MatchString(text):
		sess.RequestedTimeChange = ""
		sess.Step = StepAskContact
		return m.msgs.ProvideNameEmail()
	default:
		return m.msgs.ConfirmTimeChangePrompt()
	}
}

func (m *Machine) handleConfirmBooking(ctx context.Context, identifier string, sess *Session, text string) string {
	if !yesRe.MatchString(text) {
		return m.msgs.ReplyYesToConfirm()
	}
	if sess.ChosenSlot == nil || sess.ChosenService == nil || sess.CustomerName == "" || sess.CustomerEmail == "" {
		sess.Step = StepAskContact
		return m.msgs.ProvideNameEmail()
	}

	slot := *sess.ChosenSlot
	service := *sess.ChosenService
	name := sess.CustomerName
	email := sess.CustomerEmail
	phone := strings.TrimPrefix(identifier, "whatsapp:")

	bookingID, err := m.gateway.CreateBooking(ctx, BookingRequest{
		VenueID:     sess.VenueID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Slot:        slot,
		Name:        name,
		Email:       email,
		Phone:       phone,
	})
	if err != nil {
		m.logger.Error("booking creation failed", "identifier", identifier, "service", service.ID, "error", err)
		return m.msgs.BookingError()
	}

	rec := BookingRecord{
		BookingID:   bookingID,
		Identifier:  identifier,
		VenueID:     sess.VenueID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		StartAt:     slot.Start,
		EndAt:       slot.End,
		Name:        name,
		Email:       email,
	}
	if m.contacts != nil {
		if err := m.contacts.SaveContact(ctx, identifier, name, email); err != nil {
			m.logger.Warn("failed to persist contact", "identifier", identifier, "error", err)
		}
	}
	if m.recorder != nil {
		if err := m.recorder.RecordBooking(ctx, rec); err != nil {
			m.logger.Warn("failed to record booking", "bookingId", bookingID, "error", err)
		}
	}
	if m.notifier != nil {
		if err := m.notifier.BookingConfirmed(ctx, rec); err != nil {
			m.logger.Warn("booking notification failed", "bookingId", bookingID, "error", err)
		}
	}

	businessName := m.businessName(ctx, sess)
	*sess = Session{
		Step:       StepDone,
		VenueID:    sess.VenueID,
		VenueName:  sess.VenueName,
		SavedName:  name,
		SavedEmail: email,
	}
	return m.msgs.BookingSuccess(service.Name, m.msgs.FormatSlotFriendly(slot.Start, m.loc), businessName)
}

// showSlotsForDate fetches the day's availability, applies filtering
// and the optional time preference, and either presents the first page
// or explains why nothing is bookable.
func (m *Machine) showSlotsForDate(ctx context.Context, sess *Session, date time.Time, pref TimePreference) string {
	if sess.ChosenService == nil {
		sess.Step = StepChooseService
		return m.msgs.ReplyWithService() + "\n\n" + m.serviceMenu(sess)
	}
	now := m.now()
	day := date.In(m.loc)
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, m.loc)
	to := from.AddDate(0, 0, 1)

	raw, err := m.gateway.FetchSlots(ctx, sess.VenueID, sess.ChosenService.ID, from, to)
	if err != nil {
		m.logger.Error("slot fetch failed", "venue", sess.VenueID, "service", sess.ChosenService.ID, "error", err)
		return m.msgs.GatewayError()
	}

	open := FilterSlots(raw, now, m.loc, "")
	if len(open) == 0 {
		sess.Step = StepChooseDate
		return m.explainNoSlots(from, raw, now)
	}

	slots := open
	if pref != "" {
		slots = FilterSlots(raw, now, m.loc, pref)
		if len(slots) == 0 {
			sess.Step = StepChooseDate
			return m.msgs.NoPreferredSlots(pref, m.msgs.FormatDateLong(from))
		}
	}

	sess.Slots = slots
	sess.SlotPage = 1
	sess.NearbySlots = nil
	sess.RequestedTime = ""
	sess.PendingPref = ""
	sess.Step = StepChooseSlot

	page := slots
	if len(page) > m.pageSize {
		page = page[:m.pageSize]
	}
	header := m.msgs.SlotsAvailableFor(sess.ChosenService.Name, m.msgs.FormatDateShort(from), m.loc.String(), TZOffsetLabel(now, m.loc))
	return header + "\n\n" + m.slotLines(page) + "\n\n" + m.msgs.ReplyWithTime()
}

// explainNoSlots picks the most specific reason for an empty day:
// past date, all of today already passed, weekend closure, then fully
// booked only when the backend offered slots that were all filtered
// out, and a generic fallback otherwise.
func (m *Machine) explainNoSlots(day time.Time, raw []Slot, now time.Time) string {
	today := midnight(now.In(m.loc))
	dateTxt := m.msgs.FormatDateLong(day)
	switch {
	case day.Before(today):
		return m.msgs.NoSlotsPastDate(dateTxt)
	case day.Equal(today):
		return m.msgs.NoSlotsAllPast()
	case day.Weekday() == time.Saturday || day.Weekday() == time.Sunday:
		return m.msgs.NoSlotsWeekend(dateTxt)
	case len(raw) > 0:
		return m.msgs.NoSlotsFullyBooked(dateTxt)
	default:
		return m.msgs.NoSlotsAvailable(dateTxt)
	}
}

func (m *Machine) moreSlotsReply(sess *Session) string {
	// Slots booked or expired since the last page are dropped before
	// paginating.
	open := FilterSlots(sess.Slots, m.now(), m.loc, "")
	sess.Slots = open

	start := sess.SlotPage * m.pageSize
	if start >= len(open) {
		return m.msgs.NoMoreSlots()
	}
	end := start + m.pageSize
	if end > len(open) {
		end = len(open)
	}
	sess.SlotPage++
	return m.msgs.MoreSlots() + "\n\n" + m.slotLines(open[start:end]) + "\n\n" + m.msgs.ReplyWithTime()
}

func (m *Machine) availabilityReply(sess *Session) string {
	open := FilterSlots(sess.Slots, m.now(), m.loc, "")
	sess.Slots = open
	if len(open) == 0 {
		return m.msgs.NoMoreSlots()
	}
	show := open
	if len(show) > 5 {
		show = show[:5]
	}
	var b strings.Builder
	for i, s := range show {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.msgs.FormatSlotFriendly(s.Start, m.loc))
	}
	return strings.TrimRight(b.String(), "\n") + "\n\n" + m.msgs.ReplyWithTime()
}

// transitionToContact records the chosen slot and moves to contact
// collection, short-circuiting through saved details when available.
func (m *Machine) transitionToContact(sess *Session, slot Slot) string {
	sess.ChosenSlot = &slot
	sess.NearbySlots = nil
	sess.RequestedTime = ""

	slotTxt := m.msgs.FormatSlotFriendly(slot.Start, m.loc)
	service := ""
	if sess.ChosenService != nil {
		service = sess.ChosenService.Name
	}

	if sess.SavedName != "" && sess.SavedEmail != "" {
		sess.Step = StepConfirmSavedInfo
		return m.msgs.YouPickedShort(slotTxt, service) + "\n\n" + m.msgs.ConfirmSavedInfo(sess.SavedName, sess.SavedEmail)
	}
	sess.Step = StepAskContact
	return m.msgs.YouPicked(slotTxt, service)
}

func (m *Machine) businessInfo(ctx context.Context, sess *Session) string {
	profile, err := m.gateway.FetchBusinessProfile(ctx, sess.VenueID)
	if err != nil {
		m.logger.Error("business profile fetch failed", "venue", sess.VenueID, "error", err)
		return m.msgs.GatewayError()
	}
	var parts []string
	if profile.Address != "" {
		parts = append(parts, m.msgs.BusinessAddress(profile.Address))
	}
	if profile.Hours != "" {
		parts = append(parts, m.msgs.BusinessHours(profile.Hours))
	}
	if c := m.msgs.BusinessContact(profile.Phone, profile.Website); c != "" {
		parts = append(parts, c)
	}
	parts = append(parts, m.msgs.WouldYouLikeToBook())
	return strings.Join(parts, "\n")
}

func (m *Machine) businessName(ctx context.Context, sess *Session) string {
	profile, err := m.gateway.FetchBusinessProfile(ctx, sess.VenueID)
	if err != nil || profile == nil || profile.Name == "" {
		if err != nil {
			m.logger.Warn("business profile fetch failed", "venue", sess.VenueID, "error", err)
		}
		return sess.VenueName
	}
	return profile.Name
}

func (m *Machine) loadServices(ctx context.Context, sess *Session) error {
	svcs, err := m.gateway.FetchServices(ctx, sess.VenueID)
	if err != nil {
		m.logger.Error("service fetch failed", "venue", sess.VenueID, "error", err)
		return err
	}
	sess.Services = svcs
	return nil
}

func (m *Machine) serviceMenu(sess *Session) string {
	return m.msgs.AvailableServices() + "\n\n" + m.serviceLines(sess.Services) + "\n\n" + m.msgs.ReplyWithService()
}

func (m *Machine) serviceLines(services []Service) string {
	var b strings.Builder
	for i, s := range services {
		if d := m.msgs.FormatDuration(s.Duration); d != "" {
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, s.Name, d)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Machine) venueLines(venues []Venue) string {
	var b strings.Builder
	for i, v := range venues {
		if v.Category != "" {
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, v.Name, v.Category)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, v.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Machine) slotLines(slots []Slot) string {
	var b strings.Builder
	for _, s := range slots {
		fmt.Fprintf(&b, "• %s\n", m.msgs.FormatSlotRange(s, m.loc))
	}
	return strings.TrimRight(b.String(), "\n")
}
