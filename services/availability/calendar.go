package availability

import (
	"time"

	"festivo/models"
	"festivo/utils"
)

// DayAvailability is one calendar day as shown on a supplier page.
type DayAvailability struct {
	Date   string            `json:"date"`
	Status models.DateStatus `json:"status"`
	Slots  []models.Slot     `json:"slots"`
}

// WeekAvailability walks one seven-day window, weekIndex weeks out from
// today, and derives the status of every day in it.
func WeekAvailability(p *Profile, now time.Time, weekIndex int) []DayAvailability {
	weekZero := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := weekZero.AddDate(0, 0, weekIndex*7)
	weekEnd := weekStart.AddDate(0, 0, 7)

	days := make([]DayAvailability, 0, 7)
	for d := weekStart; d.Before(weekEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, DayAvailability{
			Date:   utils.ToComparableDateString(d),
			Status: p.DateStatus(now, d),
			Slots:  p.AvailableSlots(d),
		})
	}
	return days
}
