package installment

import "time"

const DefaultDueSoonDays = 7

// DeriveStatus computes the status from the amounts and the calendar.
// Dates are compared by calendar day.
func DeriveStatus(amount, paid int64, dueDate, today time.Time, dueSoonDays int) string {
	switch {
	case paid >= amount:
		return StatusPaid
	case paid > 0:
		return StatusPartial
	}

	due, now := calendarDay(dueDate), calendarDay(today)
	switch {
	case now.After(due):
		return StatusOverdue
	case !now.AddDate(0, 0, dueSoonDays).Before(due):
		return StatusDue
	default:
		return StatusUpcoming
	}
}

// IsOverdue is true while a balance remains after the due date, including for partially paid installments.
func IsOverdue(amount, paid int64, dueDate, today time.Time) bool {
	return amount-paid > 0 && calendarDay(today).After(calendarDay(dueDate))
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
