package library

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionStatusActive   TransactionStatus = "active"
	TransactionStatusReturned TransactionStatus = "returned"
	TransactionStatusOverdue  TransactionStatus = "overdue"
)

// Transaction records a single loan of one book copy to one member.
// Only "active" and "returned" are ever persisted; "overdue" is derived
// from the dates at read time (see StatusAt).
type Transaction struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	MemberID   uuid.UUID
	BorrowedAt time.Time
	DueDate    time.Time
	ReturnedAt *time.Time
	Status     TransactionStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

/* Derives the externally visible status of the transaction at a given instant. */
func (t Transaction) StatusAt(at time.Time) TransactionStatus {
	if t.ReturnedAt != nil {
		return TransactionStatusReturned
	}
	if at.After(t.DueDate) {
		return TransactionStatusOverdue
	}
	return TransactionStatusActive
}

type BorrowRequest struct {
	BookID   uuid.UUID
	MemberID uuid.UUID
}

// ReturnReceipt is the outcome of a return: the closed transaction and
// the fine issued for it, if the book came back late.
type ReturnReceipt struct {
	Transaction Transaction
	Fine        *Fine
}
