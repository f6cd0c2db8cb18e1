package messaging

import (
	"regexp"
	"strings"
)

var phoneDigitsRe = regexp.MustCompile(`\d+`)

// NormalizeIdentifier canonicalizes a Twilio WhatsApp address like
// "whatsapp:+420 777 000 001" into "whatsapp:+420777000001". Plain
// phone numbers keep their channel-less form.
func NormalizeIdentifier(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	channel := ""
	if rest, ok := strings.CutPrefix(value, "whatsapp:"); ok {
		channel = "whatsapp:"
		value = rest
	}
	digits := strings.Join(phoneDigitsRe.FindAllString(value, -1), "")
	if digits == "" {
		return ""
	}
	return channel + "+" + digits
}
