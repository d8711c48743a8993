package library

import (
	"time"

	"github.com/google/uuid"
)

type BookStatus string

const (
	BookStatusAvailable   BookStatus = "available"
	BookStatusBorrowed    BookStatus = "borrowed"
	BookStatusReserved    BookStatus = "reserved"
	BookStatusMaintenance BookStatus = "maintenance"
)

type Book struct {
	ID              uuid.UUID
	ISBN            string
	Title           string
	Author          string
	Category        string
	Status          BookStatus
	TotalCopies     int
	AvailableCopies int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

/* Number of copies of this book currently out on loan. */
func (b Book) CopiesOut() int {
	return b.TotalCopies - b.AvailableCopies
}

type CreateBookRequest struct {
	ISBN        string
	Title       string
	Author      string
	Category    string
	TotalCopies *int
}

type UpdateBookRequest struct {
	ID          uuid.UUID
	ISBN        string
	Title       string
	Author      string
	Category    string
	TotalCopies *int
}

/* Verifies if all entry fields are filled and returns a warning message if not. */
func FilledBookFields(isbn, title, author, category string, totalCopies *int) error {
	if isbn == "" || title == "" || author == "" || category == "" {
		return ErrResponseBookEntryBlankFields
	}
	if totalCopies == nil || *totalCopies < 0 {
		return ErrResponseBookEntryBlankFields
	}

	return nil
}
