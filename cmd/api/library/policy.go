package library

import (
	"time"
)

// Policy holds the circulation business constants. It is built once at
// startup and injected into the Service, so tests can run with
// alternate values.
type Policy struct {
	LoanPeriodDays      int
	DailyFineRate       float64
	MaxActiveLoans      int
	SuspensionThreshold int
}

func DefaultPolicy() Policy {
	return Policy{
		LoanPeriodDays:      14,
		DailyFineRate:       0.50,
		MaxActiveLoans:      3,
		SuspensionThreshold: 3,
	}
}

/* Due date of a loan started at the given instant. */
func (p Policy) DueDate(borrowedAt time.Time) time.Time {
	return borrowedAt.AddDate(0, 0, p.LoanPeriodDays)
}

/* Whole days elapsed past the due date, never negative. */
func OverdueDays(dueDate, at time.Time) int {
	if !at.After(dueDate) {
		return 0
	}
	return int(at.Sub(dueDate).Hours() / 24)
}

/* FineAmount is the fine owed for a loan returned at the given instant. */
func (p Policy) FineAmount(dueDate, returnedAt time.Time) float64 {
	return float64(OverdueDays(dueDate, returnedAt)) * p.DailyFineRate
}

/* A transaction is overdue when it is still open and its due date has passed. */
func IsOverdue(t Transaction, at time.Time) bool {
	return t.ReturnedAt == nil && at.After(t.DueDate)
}
