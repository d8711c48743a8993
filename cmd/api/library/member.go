package library

import (
	"time"

	"github.com/google/uuid"
)

type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusSuspended MemberStatus = "suspended"
)

type Member struct {
	ID               uuid.UUID
	Name             string
	Email            string
	MembershipNumber string
	Status           MemberStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateMemberRequest struct {
	Name  string
	Email string
}

type UpdateMemberRequest struct {
	ID    uuid.UUID
	Name  string
	Email string
}

/* Verifies if all entry fields are filled and returns a warning message if not. */
func FilledMemberFields(name, email string) error {
	if name == "" || email == "" {
		return ErrResponseMemberEntryBlankFields
	}

	return nil
}
