package availability

import (
	"time"

	"festivo/models"
	"festivo/utils"
)

// FailOpenOnUnparsableDate names the deliberate policy carried over from the
// original booking flow: when a date cannot be evaluated, availability reads
// default to permitting the action rather than blocking it. Plan mutations
// do NOT share this policy; they refuse to commit on bad input.
const FailOpenOnUnparsableDate = true

// Profile is the engine's normalized view of a supplier calendar. Legacy
// whole-day exception records are expanded to slot lists at construction so
// the availability checks have a single code path.
type Profile struct {
	weekly      map[time.Weekday]models.DaySchedule
	unavailable map[string][]models.Slot
	busy        map[string][]models.Slot
	advanceDays int
	maxDays     int
}

// NewProfile normalizes a raw availability profile.
func NewProfile(src models.AvailabilityProfile) *Profile {
	return &Profile{
		weekly:      src.Weekly,
		unavailable: normalizeExceptions(src.UnavailableDates),
		busy:        normalizeExceptions(src.BusyDates),
		advanceDays: src.AdvanceBookingDays,
		maxDays:     src.MaxBookingDays,
	}
}

// normalizeExceptions folds an exception list into a canonical-date index.
// A record with no slot list is the legacy whole-day form and blocks both
// slots. Records whose date cannot be parsed are dropped: an exception we
// cannot place on the calendar cannot block anything.
func normalizeExceptions(list []models.ExceptionDate) map[string][]models.Slot {
	out := make(map[string][]models.Slot, len(list))
	for _, ex := range list {
		date, ok := utils.ParseFlexibleDate(ex.Date)
		if !ok {
			continue
		}
		key := utils.ToComparableDateString(date)
		slots := ex.Slots
		if len(slots) == 0 {
			slots = models.AllSlots
		}
		for _, s := range slots {
			if models.ValidSlot(s) && !slotListed(out[key], s) {
				out[key] = append(out[key], s)
			}
		}
	}
	return out
}

func slotListed(list []models.Slot, slot models.Slot) bool {
	for _, s := range list {
		if s == slot {
			return true
		}
	}
	return false
}

// IsSlotAvailable checks one (date, slot) pair. Checks run in order and
// short-circuit on the first failure: weekday inactive, slot schedule off,
// unavailable exception, busy exception.
func (p *Profile) IsSlotAvailable(date time.Time, slot models.Slot) bool {
	day, ok := p.weekly[date.Weekday()]
	if !ok || !day.Active {
		return false
	}
	window, ok := day.Slots[slot]
	if !ok || !window.Available {
		return false
	}
	key := utils.ToComparableDateString(date)
	if slotListed(p.unavailable[key], slot) {
		return false
	}
	if slotListed(p.busy[key], slot) {
		return false
	}
	return true
}

// AvailableSlots returns the bookable subset of the day's two slots.
func (p *Profile) AvailableSlots(date time.Time) []models.Slot {
	var open []models.Slot
	for _, slot := range models.AllSlots {
		if p.IsSlotAvailable(date, slot) {
			open = append(open, slot)
		}
	}
	return open
}

// DateStatus derives the day-level status of date relative to now. All date
// comparisons go through the canonical string form.
func (p *Profile) DateStatus(now, date time.Time) models.DateStatus {
	dateKey := utils.ToComparableDateString(date)
	todayKey := utils.ToComparableDateString(now)

	if dateKey < todayKey {
		return models.DateStatusPast
	}
	minKey := utils.ToComparableDateString(now.AddDate(0, 0, p.advanceDays))
	if dateKey < minKey {
		return models.DateStatusOutsideWindow
	}
	if p.maxDays > 0 {
		maxKey := utils.ToComparableDateString(now.AddDate(0, 0, p.maxDays))
		if dateKey > maxKey {
			return models.DateStatusOutsideWindow
		}
	}

	switch len(p.AvailableSlots(date)) {
	case 0:
		// Whole-day busy markers surface as busy; everything else that
		// leaves no slot open is unavailable. The legacy closed marker
		// folds into unavailable here.
		if len(p.busy[dateKey]) == len(models.AllSlots) {
			return models.DateStatusBusy
		}
		return models.DateStatusUnavailable
	case 1:
		return models.DateStatusPartiallyAvailable
	default:
		return models.DateStatusAvailable
	}
}

// DateStatusFor evaluates a raw date input; input that cannot be parsed
// yields DateStatusUnknown.
func (p *Profile) DateStatusFor(now time.Time, raw any) models.DateStatus {
	date, ok := utils.ParseFlexibleDate(raw)
	if !ok {
		return models.DateStatusUnknown
	}
	return p.DateStatus(now, date)
}

// CheckResult is the outcome of a point availability check.
type CheckResult struct {
	Available bool          `json:"available"`
	Slots     []models.Slot `json:"slots"`
}

// CheckAvailability answers "is (date, slot) bookable?". It never errors:
// an unparsable or missing date fails open and reports every slot as
// available (see FailOpenOnUnparsableDate).
func (p *Profile) CheckAvailability(rawDate any, requested *models.Slot) CheckResult {
	date, ok := utils.ParseFlexibleDate(rawDate)
	if !ok {
		return CheckResult{Available: true, Slots: append([]models.Slot(nil), models.AllSlots...)}
	}
	if requested != nil {
		if p.IsSlotAvailable(date, *requested) {
			return CheckResult{Available: true, Slots: []models.Slot{*requested}}
		}
		return CheckResult{Available: false, Slots: []models.Slot{}}
	}
	slots := p.AvailableSlots(date)
	return CheckResult{Available: len(slots) > 0, Slots: slots}
}
