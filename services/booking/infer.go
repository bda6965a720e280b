package booking

import (
	"strings"
	"unicode"

	"festivo/models"
)

// Keyword heuristics for legacy free-text party times ("2pm onwards",
// "morning do"). Morning is checked first and wins on a tie. "evening"
// belongs in the afternoon bucket: bookings only come in two half-day
// slots, so anything after midday is an afternoon booking.
var (
	morningKeywords   = []string{"morning", "breakfast", "brunch"}
	afternoonKeywords = []string{"afternoon", "evening", "lunch", "teatime"}
)

// InferSlotFromTime maps a free-text time string onto a slot. Returns nil
// when nothing matches; callers fall through to asking the caller.
func InferSlotFromTime(text string) *models.Slot {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return nil
	}
	for _, kw := range morningKeywords {
		if strings.Contains(normalized, kw) {
			return slotPtr(models.SlotMorning)
		}
	}
	for _, kw := range afternoonKeywords {
		if strings.Contains(normalized, kw) {
			return slotPtr(models.SlotAfternoon)
		}
	}
	// Clock forms: "10am", "2 pm", "14:30".
	for _, token := range strings.Fields(normalized) {
		if meridiem, hour, ok := parseClockToken(token); ok {
			if meridiem == "am" || (meridiem == "" && hour < 12) {
				return slotPtr(models.SlotMorning)
			}
			return slotPtr(models.SlotAfternoon)
		}
	}
	return nil
}

// parseClockToken recognizes "10am", "2pm", "14:30" style tokens and
// reports the meridiem suffix (if any) and the hour. A bare number is not
// a clock token; it needs a meridiem suffix or a colon.
func parseClockToken(token string) (meridiem string, hour int, ok bool) {
	if strings.HasSuffix(token, "am") {
		meridiem = "am"
		token = strings.TrimSuffix(token, "am")
	} else if strings.HasSuffix(token, "pm") {
		meridiem = "pm"
		token = strings.TrimSuffix(token, "pm")
	}
	hasColon := false
	if i := strings.IndexByte(token, ':'); i >= 0 {
		hasColon = true
		token = token[:i]
	}
	if meridiem == "" && !hasColon {
		return "", 0, false
	}
	if token == "" {
		// Bare "am"/"pm" carries the meridiem alone.
		return meridiem, 0, meridiem != ""
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return "", 0, false
		}
	}
	n := 0
	for _, r := range token {
		n = n*10 + int(r-'0')
	}
	if n > 23 {
		return "", 0, false
	}
	return meridiem, n, true
}

func slotPtr(s models.Slot) *models.Slot {
	return &s
}
