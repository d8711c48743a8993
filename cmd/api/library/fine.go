package library

import (
	"time"

	"github.com/google/uuid"
)

// Fine is a monetary penalty tied to a single returned-late transaction.
// Amount is fixed when the fine is created and never recomputed.
type Fine struct {
	ID            uuid.UUID
	MemberID      uuid.UUID
	TransactionID uuid.UUID
	Amount        float64
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (f Fine) Paid() bool {
	return f.PaidAt != nil
}
