// Package billing holds the pure billing-period arithmetic shared by the
// authorization lifecycle and the ledger: the Friday boundary calculator and
// the rent amount computation.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// NextFridayEndOfDay returns 23:59:59 of the nearest Friday on or after t's
// calendar day. If t already falls on a Friday the same day's end is returned.
// No time zone conversion is performed; t's location is preserved.
func NextFridayEndOfDay(t time.Time) time.Time {
	// Monday=0 .. Sunday=6
	weekday := (int(t.Weekday()) + 6) % 7
	var daysToAdd int
	if weekday <= 4 {
		daysToAdd = 4 - weekday
	} else {
		daysToAdd = 7 - (weekday - 4)
	}
	d := t.AddDate(0, 0, daysToAdd)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}

// RentalDays counts the billable days between the effective start and the
// planned end: the calendar-day difference plus one, clamped to zero.
func RentalDays(effectiveStart, end time.Time) int {
	startDay := time.Date(effectiveStart.Year(), effectiveStart.Month(), effectiveStart.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := int(endDay.Sub(startDay).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// RentAmount multiplies the daily rent by the billable day count, rounded to
// two fractional digits.
func RentAmount(dailyRent decimal.Decimal, days int) decimal.Decimal {
	return dailyRent.Mul(decimal.NewFromInt(int64(days))).Round(2)
}
