package library_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/library"
	"github.com/matryer/is"
)

func TestDueDate(t *testing.T) {
	is := is.New(t)
	policy := library.DefaultPolicy()

	borrowedAt := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	is.Equal(policy.DueDate(borrowedAt), time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC))
}

func TestOverdueDays(t *testing.T) {
	is := is.New(t)
	dueDate := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("returned before the due date owes nothing", func(t *testing.T) {
		is := is.New(t)
		is.Equal(library.OverdueDays(dueDate, dueDate.AddDate(0, 0, -3)), 0)
		is.Equal(library.OverdueDays(dueDate, dueDate), 0)
	})

	t.Run("partial days are truncated", func(t *testing.T) {
		is := is.New(t)
		is.Equal(library.OverdueDays(dueDate, dueDate.Add(23*time.Hour)), 0)
		is.Equal(library.OverdueDays(dueDate, dueDate.Add(60*time.Hour)), 2)
	})

	t.Run("whole days late", func(t *testing.T) {
		is := is.New(t)
		is.Equal(library.OverdueDays(dueDate, dueDate.AddDate(0, 0, 5)), 5)
	})

	is.Equal(library.OverdueDays(dueDate, dueDate.Add(time.Nanosecond)), 0)
}

func TestFineAmount(t *testing.T) {
	is := is.New(t)
	policy := library.DefaultPolicy()
	dueDate := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	//Five days late at 0.50 a day.
	is.Equal(policy.FineAmount(dueDate, dueDate.AddDate(0, 0, 5)), 2.50)
	is.Equal(policy.FineAmount(dueDate, dueDate), 0.0)
	is.Equal(policy.FineAmount(dueDate, dueDate.AddDate(0, 0, -1)), 0.0)
}

func TestIsOverdue(t *testing.T) {
	is := is.New(t)
	now := time.Now().UTC().Round(time.Millisecond)

	open := library.Transaction{
		ID:      uuid.New(),
		DueDate: now.AddDate(0, 0, -1),
		Status:  library.TransactionStatusActive,
	}
	is.True(library.IsOverdue(open, now))
	is.True(!library.IsOverdue(open, now.AddDate(0, 0, -2)))

	returnedAt := now
	closed := open
	closed.ReturnedAt = &returnedAt
	is.True(!library.IsOverdue(closed, now))
}

func TestTransactionStatusAt(t *testing.T) {
	is := is.New(t)
	now := time.Now().UTC().Round(time.Millisecond)

	open := library.Transaction{
		DueDate: now.AddDate(0, 0, 3),
		Status:  library.TransactionStatusActive,
	}
	is.Equal(open.StatusAt(now), library.TransactionStatusActive)
	is.Equal(open.StatusAt(now.AddDate(0, 0, 4)), library.TransactionStatusOverdue)

	returnedAt := now
	closed := open
	closed.ReturnedAt = &returnedAt
	is.Equal(closed.StatusAt(now.AddDate(0, 0, 10)), library.TransactionStatusReturned)
}
