package library

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/notifications"
)

type ServiceAPI interface {
	CreateBook(ctx context.Context, req CreateBookRequest) (Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (Book, error)
	ListBooks(ctx context.Context) ([]Book, error)
	ListAvailableBooks(ctx context.Context) ([]Book, error)
	UpdateBook(ctx context.Context, req UpdateBookRequest) (Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error

	CreateMember(ctx context.Context, req CreateMemberRequest) (Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (Member, error)
	ListMembers(ctx context.Context) ([]Member, error)
	UpdateMember(ctx context.Context, req UpdateMemberRequest) (Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	ListMemberBorrows(ctx context.Context, memberID uuid.UUID) ([]Transaction, error)

	BorrowBook(ctx context.Context, req BorrowRequest) (Transaction, error)
	ReturnBook(ctx context.Context, transactionID uuid.UUID) (ReturnReceipt, error)
	ListOverdueTransactions(ctx context.Context) ([]Transaction, error)
	PayFine(ctx context.Context, fineID uuid.UUID) (Fine, error)
}

// Repository is the persistence contract shared by the Postgres and the
// in-memory stores. BeginTx hands back a Repository bound to a single
// transaction; the circulation engine runs each of its operations
// inside one of those.
type Repository interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (Repository, driver.Tx, error)

	CreateBook(ctx context.Context, b Book) (Book, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (Book, error)
	GetBookForUpdate(ctx context.Context, id uuid.UUID) (Book, error)
	ListBooks(ctx context.Context) ([]Book, error)
	ListBooksByStatus(ctx context.Context, status BookStatus) ([]Book, error)
	UpdateBook(ctx context.Context, b Book) (Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error

	CreateMember(ctx context.Context, m Member) (Member, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (Member, error)
	GetMemberForUpdate(ctx context.Context, id uuid.UUID) (Member, error)
	ListMembers(ctx context.Context) ([]Member, error)
	UpdateMember(ctx context.Context, m Member) (Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error

	CreateTransaction(ctx context.Context, t Transaction) (Transaction, error)
	GetTransactionByID(ctx context.Context, id uuid.UUID) (Transaction, error)
	UpdateTransaction(ctx context.Context, t Transaction) (Transaction, error)
	ListActiveTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]Transaction, error)
	CountActiveTransactionsByMember(ctx context.Context, memberID uuid.UUID) (int, error)
	CountOverdueTransactionsByMember(ctx context.Context, memberID uuid.UUID, asOf time.Time) (int, error)
	ListOverdueTransactions(ctx context.Context, asOf time.Time) ([]Transaction, error)
	CountTransactionsByBook(ctx context.Context, bookID uuid.UUID) (int, error)
	CountTransactionsByMember(ctx context.Context, memberID uuid.UUID) (int, error)

	CreateFine(ctx context.Context, f Fine) (Fine, error)
	GetFineByID(ctx context.Context, id uuid.UUID) (Fine, error)
	SetFinePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (Fine, error)
	CountUnpaidFinesByMember(ctx context.Context, memberID uuid.UUID) (int, error)
}

type Service struct {
	repo                 Repository
	ntfy                 *notifications.Ntfy
	notificationsTimeout time.Duration
	policy               Policy
}

func NewService(repo Repository, ntfy *notifications.Ntfy, notificationsTimeout time.Duration, policy Policy) *Service {
	return &Service{
		repo:                 repo,
		ntfy:                 ntfy,
		notificationsTimeout: notificationsTimeout,
		policy:               policy,
	}
}

// -- Books --

func (s *Service) CreateBook(ctx context.Context, req CreateBookRequest) (Book, error) {
	createdAt := time.Now().UTC().Round(time.Millisecond)

	newBook := Book{
		ID:              uuid.New(),
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		Category:        req.Category,
		Status:          BookStatusAvailable,
		TotalCopies:     *req.TotalCopies,
		AvailableCopies: *req.TotalCopies, //Every copy starts on the shelf.
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	return s.repo.CreateBook(ctx, newBook)
}

func (s *Service) GetBook(ctx context.Context, id uuid.UUID) (Book, error) {
	return s.repo.GetBookByID(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) ListAvailableBooks(ctx context.Context) ([]Book, error) {
	return s.repo.ListBooksByStatus(ctx, BookStatusAvailable)
}

/* Updates the descriptive fields of a book. AvailableCopies is recomputed
so that copies currently out on loan stay accounted for. */
func (s *Service) UpdateBook(ctx context.Context, req UpdateBookRequest) (Book, error) {
	txRepo, tx, err := s.repo.BeginTx(ctx, nil)
	if err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	bk, err := txRepo.GetBookForUpdate(ctx, req.ID)
	if err != nil {
		return Book{}, err
	}

	copiesOut := bk.CopiesOut()
	if *req.TotalCopies < copiesOut {
		return Book{}, ErrResponseInsufficientCopies
	}

	bk.ISBN = req.ISBN
	bk.Title = req.Title
	bk.Author = req.Author
	bk.Category = req.Category
	bk.TotalCopies = *req.TotalCopies
	bk.AvailableCopies = *req.TotalCopies - copiesOut
	if bk.Status == BookStatusBorrowed && bk.AvailableCopies > 0 {
		bk.Status = BookStatusAvailable
	}
	if bk.Status == BookStatusAvailable && bk.AvailableCopies == 0 && copiesOut > 0 {
		bk.Status = BookStatusBorrowed
	}
	bk.UpdatedAt = time.Now().UTC().Round(time.Millisecond)

	updated, err := txRepo.UpdateBook(ctx, bk)
	if err != nil {
		return Book{}, err
	}

	if err := tx.Commit(); err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	return updated, nil
}

/* Deletes a book, unless any borrow transaction still references it. */
func (s *Service) DeleteBook(ctx context.Context, id uuid.UUID) error {
	txRepo, tx, err := s.repo.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := txRepo.GetBookForUpdate(ctx, id); err != nil {
		return err
	}

	referenced, err := txRepo.CountTransactionsByBook(ctx, id)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return ErrResponseBookReferenced
	}

	if err := txRepo.DeleteBook(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}

// -- Members --

func (s *Service) CreateMember(ctx context.Context, req CreateMemberRequest) (Member, error) {
	createdAt := time.Now().UTC().Round(time.Millisecond)

	newMember := Member{
		ID:               uuid.New(),
		Name:             req.Name,
		Email:            req.Email,
		MembershipNumber: uuid.NewString(),
		Status:           MemberStatusActive,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
	return s.repo.CreateMember(ctx, newMember)
}

func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (Member, error) {
	return s.repo.GetMemberByID(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) UpdateMember(ctx context.Context, req UpdateMemberRequest) (Member, error) {
	member, err := s.repo.GetMemberByID(ctx, req.ID)
	if err != nil {
		return Member{}, err
	}

	member.Name = req.Name
	member.Email = req.Email
	member.UpdatedAt = time.Now().UTC().Round(time.Millisecond)
	return s.repo.UpdateMember(ctx, member)
}

/* Deletes a member, unless any borrow transaction still references them. */
func (s *Service) DeleteMember(ctx context.Context, id uuid.UUID) error {
	txRepo, tx, err := s.repo.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("deleting member: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := txRepo.GetMemberForUpdate(ctx, id); err != nil {
		return err
	}

	referenced, err := txRepo.CountTransactionsByMember(ctx, id)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return ErrResponseMemberReferenced
	}

	if err := txRepo.DeleteMember(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("deleting member: %w", err)
	}
	return nil
}

/* Lists the member's open loans, newest last. */
func (s *Service) ListMemberBorrows(ctx context.Context, memberID uuid.UUID) ([]Transaction, error) {
	if _, err := s.repo.GetMemberByID(ctx, memberID); err != nil {
		return nil, err
	}

	borrows, err := s.repo.ListActiveTransactionsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Round(time.Millisecond)
	for i := range borrows {
		borrows[i].Status = borrows[i].StatusAt(now)
	}
	return borrows, nil
}

/* Lists every open loan whose due date has passed. Overdue status is
derived from the dates, never read back from storage. */
func (s *Service) ListOverdueTransactions(ctx context.Context) ([]Transaction, error) {
	now := time.Now().UTC().Round(time.Millisecond)

	overdue, err := s.repo.ListOverdueTransactions(ctx, now)
	if err != nil {
		return nil, err
	}

	for i := range overdue {
		overdue[i].Status = TransactionStatusOverdue
	}
	return overdue, nil
}
