package conversation

import (
	"fmt"
	"strings"
	"time"
)

// Messages renders all user-facing chat text in the configured
// language. Supported languages are "en" and "cs"; anything else falls
// back to English.
type Messages struct {
	Lang string
}

func NewMessages(lang string) *Messages {
	if lang != "cs" {
		lang = "en"
	}
	return &Messages{Lang: lang}
}

func (m *Messages) cs() bool { return m.Lang == "cs" }

// Greeting & menu

func (m *Messages) WelcomeExplained(businessName string) string {
	if m.cs() {
		return fmt.Sprintf("Vítejte v %s! Jsem rezervační asistent. Pomohu vám vybrat službu, datum a čas a rezervovat termín přímo v této konverzaci. Můžete se mě také zeptat na otevírací dobu nebo adresu.\n\nJakou službu si přejete? Napište 'menu' pro seznam služeb.", businessName)
	}
	return fmt.Sprintf("Welcome to %s! I'm the booking assistant. I can help you pick a service, a date and a time, and book your appointment right here in this chat. You can also ask me about opening hours or our address.\n\nWhat service would you like? Type 'menu' to see the list.", businessName)
}

func (m *Messages) WelcomeBack(name, businessName string) string {
	if m.cs() {
		return fmt.Sprintf("Vítejte zpět, %s! Rád vás zase vidím v %s. Jakou službu si dnes přejete rezervovat? Napište 'menu' pro seznam služeb.", name, businessName)
	}
	return fmt.Sprintf("Welcome back, %s! Great to see you again at %s. What would you like to book today? Type 'menu' to see the services.", name, businessName)
}

func (m *Messages) SelectVenue() string {
	if m.cs() {
		return "Máme více poboček. Prosím vyberte si pobočku:"
	}
	return "We have multiple locations. Please select your preferred one:"
}

func (m *Messages) ReplyWithVenueNumber() string {
	if m.cs() {
		return "Odpovězte číslem vaší preferované pobočky."
	}
	return "Reply with the number of your preferred location."
}

func (m *Messages) InvalidVenueNumber(n int) string {
	if m.cs() {
		return fmt.Sprintf("Prosím vyberte platné číslo pobočky (1-%d):", n)
	}
	return fmt.Sprintf("Please select a valid venue number (1-%d):", n)
}

func (m *Messages) VenueSelected(name string) string {
	if m.cs() {
		return fmt.Sprintf("Skvěle! Vybrali jste %s.", name)
	}
	return fmt.Sprintf("Great! You selected %s.", name)
}

// Service selection

func (m *Messages) SelectService() string {
	if m.cs() {
		return "Prosím vyberte si službu z našeho menu:"
	}
	return "Please select a service from our menu:"
}

func (m *Messages) ReplyWithService() string {
	if m.cs() {
		return "Pro rezervaci termínu odpovězte přesným názvem služby, kterou si přejete."
	}
	return "To book your appointment, please reply with the exact name of the service you'd like."
}

func (m *Messages) AvailableServices() string {
	if m.cs() {
		return "Zde jsou dostupné služby:"
	}
	return "Here are the available services:"
}

func (m *Messages) MultipleServiceMatches() string {
	if m.cs() {
		return "Našel jsem více služeb, které by mohly odpovídat. Kterou si přejete?"
	}
	return "I found multiple services that might match. Which one would you like?"
}

// Date selection

func (m *Messages) WhatDate() string {
	if m.cs() {
		return "Jaké datum byste chtěli rezervovat? (např. zítra, příští pátek, 30.10., 30 10, nebo jakékoliv datum)"
	}
	return "What date would you like to book your appointment? (e.g., tomorrow, next Friday, 30.10., 30 10, or any date)"
}

func (m *Messages) DateNotUnderstood() string {
	if m.cs() {
		return "Omlouváme se, datum jsem nepochopil. Zkuste to prosím znovu s libovolným formátem data (např. zítra, příští úterý, 30.10., 30 10, atd.)"
	}
	return "Sorry, I couldn't understand that date. Please try again with any date format you prefer (e.g., tomorrow, next Tuesday, 30.10., 30 10, etc.)"
}

// No-slots explanations, ordered by explainNoSlots

func (m *Messages) NoSlotsPastDate(date string) string {
	if m.cs() {
		return fmt.Sprintf("Omlouváme se — %s již prošlo. Prosím vyberte budoucí datum.", date)
	}
	return fmt.Sprintf("Sorry — %s has already passed. Please choose a future date.", date)
}

func (m *Messages) NoSlotsAllPast() string {
	if m.cs() {
		return "Omlouváme se — všechny dnešní termíny již prošly. Prosím vyberte pozdější čas nebo jiný den."
	}
	return "Sorry — all slots for today have already passed. Please choose a later time or another day."
}

func (m *Messages) NoSlotsWeekend(date string) string {
	if m.cs() {
		return fmt.Sprintf("Omlouváme se — v %s máme zavřeno. Jsme otevřeni pouze ve všední dny. Prosím vyberte všední den.", date)
	}
	return fmt.Sprintf("Sorry — we're closed on %s. We're only open on weekdays. Please choose a weekday.", date)
}

func (m *Messages) NoSlotsFullyBooked(date string) string {
	if m.cs() {
		return fmt.Sprintf("Omlouváme se — všechny termíny pro %s jsou obsazené. Prosím vyberte jiný den.", date)
	}
	return fmt.Sprintf("Sorry — all slots for %s are fully booked. Please choose another day.", date)
}

func (m *Messages) NoSlotsAvailable(date string) string {
	if m.cs() {
		return fmt.Sprintf("Omlouváme se — pro %s nejsou žádné volné termíny.", date)
	}
	return fmt.Sprintf("Sorry — there are no available slots for %s.", date)
}

func (m *Messages) NoPreferredSlots(pref TimePreference, date string) string {
	label := m.PrefLabel(pref)
	if m.cs() {
		return fmt.Sprintf("Omlouváme se, pro %s nejsou k dispozici žádné termíny (%s). Chcete vidět všechny volné termíny pro tento den?", date, label)
	}
	return fmt.Sprintf("Sorry, there are no %s slots available for %s. Would you like to see all available slots for that day?", label, date)
}

func (m *Messages) PrefLabel(pref TimePreference) string {
	if m.cs() {
		switch pref {
		case PrefMorning:
			return "dopoledne"
		case PrefAfternoon:
			return "odpoledne"
		case PrefEvening:
			return "večer"
		}
		return ""
	}
	return string(pref)
}

// Slot selection

func (m *Messages) SlotsAvailableFor(service, date, tz, offset string) string {
	if m.cs() {
		return fmt.Sprintf("Pro %s dne %s máme volné termíny (časy zobrazeny v %s, UTC%s):", service, date, tz, offset)
	}
	return fmt.Sprintf("For %s on %s we have slots available for (times shown in %s, UTC%s):", service, date, tz, offset)
}

func (m *Messages) AvailableSlotsFor(date, tz, offset string) string {
	if m.cs() {
		return fmt.Sprintf("Dostupné termíny pro %s (časy zobrazeny v %s %s):", date, tz, offset)
	}
	return fmt.Sprintf("Available slots for %s (times shown in %s %s):", date, tz, offset)
}

func (m *Messages) ReplyWithTime() string {
	if m.cs() {
		return "Odpovězte časem, který chcete, nebo napište 'více' pro další termíny."
	}
	return "Reply with the time you want, or type 'more' for more slots."
}

func (m *Messages) MoreSlots() string {
	if m.cs() {
		return "Další dostupné termíny pro toto datum:"
	}
	return "More available slots for this date:"
}

func (m *Messages) NoMoreSlots() string {
	if m.cs() {
		return "Žádné další volné termíny pro toto datum."
	}
	return "No more available slots for this date."
}

func (m *Messages) TimeNotAvailable() string {
	if m.cs() {
		return "Tento čas není k dispozici. Prosím vyberte čas ze seznamu výše, popište kdy chcete (např. 'ráno', 'odpoledne'), nebo napište 'více' pro další termíny."
	}
	return "I don't see that time available. Please pick a time from the list above, describe when you'd like (e.g., 'morning', 'afternoon'), or type 'more' for more slots."
}

func (m *Messages) TimeRangeNotAvailable() string {
	if m.cs() {
		return "Toto časové rozmezí není k dispozici. Prosím vyberte čas ze seznamu výše, popište kdy chcete (např. 'kolem 14', 'brzy'), nebo napište 'více' pro další termíny."
	}
	return "I don't see that time range available. Please pick a time from the list above, describe when you'd like (e.g., 'around 2', 'early'), or type 'more' for more slots."
}

func (m *Messages) SlotNotFound() string {
	if m.cs() {
		return "Nemohl jsem najít odpovídající termín. Prosím vyberte čas ze seznamu výše, popište kdy chcete (např. 'ráno', 'po 14'), nebo napište 'více' pro další termíny."
	}
	return "I couldn't find a matching time slot. Please pick a time from the list above, describe when you'd like (e.g., 'morning', 'after 2'), or type 'more' for more slots."
}

func (m *Messages) NearbySlotsOffer(requested, options string) string {
	if m.cs() {
		return fmt.Sprintf("Zadali jste %s, ale tento přesný čas není k dispozici. Máme však tyto blízké časy:\n\n%s\n\nProsím vyberte jeden z těchto časů, nebo napište 'více' pro další termíny.", requested, options)
	}
	return fmt.Sprintf("You requested %s, but that exact time isn't available. However, we have these nearby times:\n\n%s\n\nPlease pick one of these times, or type 'more' for more slots.", requested, options)
}

func (m *Messages) PickNearbySlot(options string) string {
	if m.cs() {
		return fmt.Sprintf("Prosím vyberte jeden z těchto časů:\n\n%s\n\nNebo napište 'více' pro další termíny.", options)
	}
	return fmt.Sprintf("Please pick one of these times:\n\n%s\n\nOr type 'more' for more slots.", options)
}

// Contact details

func (m *Messages) YouPicked(slotTime, service string) string {
	if m.cs() {
		return fmt.Sprintf("Vybrali jste si: %s pro %s.\n\nProsím odpovězte vaším celým jménem a emailovou adresou. (např. Jan Novák, jan@example.com)\n\nPoznámka: Pokud jste již dříve rezervovali s tímto telefonním číslem, použijte stejnou emailovou adresu.", slotTime, service)
	}
	return fmt.Sprintf("You picked: %s for %s.\n\nPlease reply with your full name and email address. (e.g. John Doe, john@example.com)\n\nNote: If you've booked before with this phone number, use the same email address.", slotTime, service)
}

func (m *Messages) YouPickedShort(slotTime, service string) string {
	if m.cs() {
		return fmt.Sprintf("Vybrali jste si: %s pro %s.", slotTime, service)
	}
	return fmt.Sprintf("You picked: %s for %s.", slotTime, service)
}

func (m *Messages) ProvideNameEmail() string {
	if m.cs() {
		return "Prosím odpovězte vaším celým jménem a emailovou adresou, odděleným čárkou. (např. Jan Novák, jan@example.com)"
	}
	return "Please reply with your full name and email address, separated by a comma. (e.g. John Doe, john@example.com)"
}

func (m *Messages) InvalidNameFormat() string {
	if m.cs() {
		return "Prosím zadejte své jméno bez symbolu @. Formát: Celé jméno, email@example.com"
	}
	return "Please provide your name without the @ symbol. Format: Full Name, email@example.com"
}

func (m *Messages) InvalidEmail() string {
	if m.cs() {
		return "Tato emailová adresa nevypadá platně. Prosím zadejte platnou emailovou adresu. (např. Jan Novák, jan@example.com)"
	}
	return "That email address doesn't look valid. Please provide a valid email address. (e.g. John Doe, john@example.com)"
}

func (m *Messages) ConfirmSavedInfo(name, email string) string {
	if m.cs() {
		return fmt.Sprintf("Máme uložené tyto údaje: %s, %s. Chcete je použít? Odpovězte 'ano' pro použití nebo 'ne' pro zadání nových.", name, email)
	}
	return fmt.Sprintf("We have your details on file: %s, %s. Would you like to use them? Reply 'yes' to use them or 'no' to enter new ones.", name, email)
}

func (m *Messages) PleaseUpdateInfo() string {
	if m.cs() {
		return "Dobře, prosím zadejte své jméno a email. (např. Jan Novák, jan@example.com)"
	}
	return "Okay, please provide your name and email. (e.g. John Doe, john@example.com)"
}

// Time change

func (m *Messages) ConfirmTimeChange(currentTime string) string {
	if m.cs() {
		return fmt.Sprintf("Už jste vybrali %s. Chcete změnit čas? Odpovězte 'ano' pro změnu nebo 'ne' pro zachování.", currentTime)
	}
	return fmt.Sprintf("You already selected %s. Do you want to change your time? Reply 'yes' to change or 'no' to keep it.", currentTime)
}

func (m *Messages) TimeChangeConfirmed() string {
	if m.cs() {
		return "Dobře, vybereme nový čas."
	}
	return "Okay, let's pick a new time."
}

func (m *Messages) ConfirmTimeChangePrompt() string {
	if m.cs() {
		return "Prosím odpovězte 'ano' pokud chcete změnit čas, nebo 'ne' pro zachování aktuálního výběru."
	}
	return "Please reply 'yes' if you want to change your time, or 'no' to keep your current selection."
}

// Booking confirmation

func (m *Messages) ConfirmBooking(name, email string) string {
	if m.cs() {
		return fmt.Sprintf("Děkujeme, %s! Prosím potvrďte, že chcete rezervovat tento termín pro %s odpovědí 'ano'.", name, email)
	}
	return fmt.Sprintf("Thank you, %s! Please confirm you want to book this slot for %s by replying 'yes'.", name, email)
}

func (m *Messages) ReplyYesToConfirm() string {
	if m.cs() {
		return "Prosím odpovězte 'ano' pro potvrzení vaší rezervace, nebo 'ne' pro zrušení."
	}
	return "Please reply 'yes' to confirm your booking, or 'no' to cancel."
}

func (m *Messages) BookingSuccess(service, slotTime, businessName string) string {
	if m.cs() {
		return fmt.Sprintf("✅ Rezervace potvrzena!\n\nSlužba: %s\nČas: %s\n\nDěkujeme za vaši rezervaci! Těšíme se na vás.\n\nS pozdravem,\ntým %s", service, slotTime, businessName)
	}
	return fmt.Sprintf("✅ Booking confirmed!\n\nService: %s\nTime: %s\n\nThank you for your booking! We look forward to seeing you.\n\nBest regards,\n%s Team", service, slotTime, businessName)
}

// Errors & fallbacks

func (m *Messages) BookingError() string {
	if m.cs() {
		return "Omlouváme se, při vytváření vaší rezervace došlo k chybě. Prosím zkuste to znovu nebo nás kontaktujte přímo."
	}
	return "Sorry, there was an error creating your booking. Please try again or contact us directly."
}

func (m *Messages) GatewayError() string {
	if m.cs() {
		return "Omlouváme se, momentálně se nemůžeme spojit s rezervačním systémem. Zkuste to prosím za chvíli."
	}
	return "Sorry, we can't reach the booking system right now. Please try again in a moment."
}

func (m *Messages) SystemPromptGeneral() string {
	if m.cs() {
		return "Jsi asistent."
	}
	return "You are an assistant."
}

func (m *Messages) DidntUnderstand() string {
	if m.cs() {
		return "Omlouvám se, nerozuměl jsem. Napište 'ahoj' pro začátek znovu."
	}
	return "Sorry, I didn't understand that. Type 'hi' to start again."
}

func (m *Messages) ReturnToBooking() string {
	if m.cs() {
		return "Vraťme se k vaší rezervaci. Odpovězte prosím na předchozí otázku, nebo napište 'ahoj' pro začátek znovu."
	}
	return "Let's get back to your booking. Please answer the previous question, or type 'hi' to start over."
}

// Business info

func (m *Messages) BusinessAddress(address string) string {
	if m.cs() {
		return fmt.Sprintf("📍 Adresa: %s", address)
	}
	return fmt.Sprintf("📍 Address: %s", address)
}

func (m *Messages) BusinessHours(hours string) string {
	if m.cs() {
		return fmt.Sprintf("🕐 Otevírací doba: %s", hours)
	}
	return fmt.Sprintf("🕐 Opening hours: %s", hours)
}

func (m *Messages) BusinessContact(phone, website string) string {
	parts := []string{}
	if phone != "" {
		if m.cs() {
			parts = append(parts, fmt.Sprintf("📞 Telefon: %s", phone))
		} else {
			parts = append(parts, fmt.Sprintf("📞 Phone: %s", phone))
		}
	}
	if website != "" {
		parts = append(parts, fmt.Sprintf("🌐 Web: %s", website))
	}
	return strings.Join(parts, "\n")
}

func (m *Messages) WouldYouLikeToBook() string {
	if m.cs() {
		return "Přejete si rezervovat termín?"
	}
	return "Would you like to book an appointment?"
}

// Formatting helpers. All times are rendered in the business time zone
// using 12-hour clock, matching the rest of the chat surface.

var czechWeekdayNames = [...]string{"neděle", "pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota"}

var czechMonthNames = [...]string{"", "ledna", "února", "března", "dubna", "května", "června", "července", "srpna", "září", "října", "listopadu", "prosince"}

func (m *Messages) weekdayName(t time.Time) string {
	if m.cs() {
		return czechWeekdayNames[int(t.Weekday())]
	}
	return t.Format("Monday")
}

func (m *Messages) monthName(t time.Time) string {
	if m.cs() {
		return czechMonthNames[int(t.Month())]
	}
	return t.Format("January")
}

// FormatClock renders a time of day, e.g. "3:04 PM".
func (m *Messages) FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatSlotRange renders a bullet line like "3:00 PM - 3:30 PM".
func (m *Messages) FormatSlotRange(s Slot, loc *time.Location) string {
	return fmt.Sprintf("%s - %s", s.Start.In(loc).Format("3:04 PM"), s.End.In(loc).Format("3:04 PM"))
}

// FormatSlotFriendly renders "Monday, 07th October, 3:00 PM".
func (m *Messages) FormatSlotFriendly(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	if m.cs() {
		return fmt.Sprintf("%s, %d. %s, %s", m.weekdayName(t), t.Day(), m.monthName(t), t.Format("15:04"))
	}
	return fmt.Sprintf("%s, %02d%s %s, %s", t.Format("Monday"), t.Day(), ordinalSuffix(t.Day()), t.Format("January"), t.Format("3:04 PM"))
}

// FormatDateLong renders "Monday, 07 October 2025".
func (m *Messages) FormatDateLong(t time.Time) string {
	if m.cs() {
		return fmt.Sprintf("%s, %02d. %s %d", m.weekdayName(t), t.Day(), m.monthName(t), t.Year())
	}
	return fmt.Sprintf("%s, %02d %s %d", t.Format("Monday"), t.Day(), t.Format("January"), t.Year())
}

// FormatDateShort renders "7 October".
func (m *Messages) FormatDateShort(t time.Time) string {
	if m.cs() {
		return fmt.Sprintf("%d. %s", t.Day(), m.monthName(t))
	}
	return fmt.Sprintf("%d %s", t.Day(), t.Format("January"))
}

// FormatDuration renders a service duration like "30 minutes" or "1h 15m".
func (m *Messages) FormatDuration(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins <= 0 {
		return ""
	}
	if mins < 60 {
		if m.cs() {
			return fmt.Sprintf("%d minut", mins)
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hrs := mins / 60
	rem := mins % 60
	if rem == 0 {
		if m.cs() {
			return fmt.Sprintf("%d hod", hrs)
		}
		if hrs > 1 {
			return fmt.Sprintf("%d hrs", hrs)
		}
		return "1 hr"
	}
	return fmt.Sprintf("%dh %dm", hrs, rem)
}

func ordinalSuffix(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// TZOffsetLabel renders the current UTC offset of loc, e.g. "+02:00".
func TZOffsetLabel(now time.Time, loc *time.Location) string {
	return now.In(loc).Format("-07:00")
}
