package inmemory

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/library-service/cmd/api/library"
)

// InMemoryStore implements library.Repository on top of go-memdb.
// It backs the test suites and the db-less development mode. go-memdb
// allows a single write transaction at a time, which is the serializing
// guard the circulation engine relies on.
//
// exc is only ever set on the transaction-scoped stores handed out by
// BeginTx. The root store resolves a fresh transaction per call, so
// concurrent requests never share mutable state.
type InMemoryStore struct {
	db  *memdb.MemDB
	exc *memdb.Txn
}

func (store *InMemoryStore) writeTxn() (*memdb.Txn, bool) {
	if store.exc != nil {
		return store.exc, true
	}
	return store.db.Txn(true), false
}

func (store *InMemoryStore) readTxn() (*memdb.Txn, bool) {
	if store.exc != nil {
		return store.exc, true
	}
	return store.db.Txn(false), false
}

func NewInMemoryStore() (*InMemoryStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			"book": {
				Name: "book",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"isbn": {
						Name:    "isbn",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ISBN"},
					},
				},
			},
			"member": {
				Name: "member",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"email": {
						Name:    "email",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
			"transaction": {
				Name: "transaction",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"member_id": {
						Name:    "member_id",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "MemberID"},
					},
					"book_id": {
						Name:    "book_id",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "BookID"},
					},
				},
			},
			"fine": {
				Name: "fine",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"member_id": {
						Name:    "member_id",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "MemberID"},
					},
					"transaction_id": {
						Name:    "transaction_id",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "TransactionID"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db, exc: nil}, nil
}

// memdb indexes on string fields, so the adapted records carry ids as strings.

type AdaptedBook struct {
	ID              string
	ISBN            string
	Title           string
	Author          string
	Category        string
	Status          library.BookStatus
	TotalCopies     int
	AvailableCopies int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func adaptBookIdToString(b library.Book) AdaptedBook {
	return AdaptedBook{
		ID:              b.ID.String(),
		ISBN:            b.ISBN,
		Title:           b.Title,
		Author:          b.Author,
		Category:        b.Category,
		Status:          b.Status,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func adaptBookIdToUUID(b AdaptedBook) library.Book {
	return library.Book{
		ID:              uuid.MustParse(b.ID),
		ISBN:            b.ISBN,
		Title:           b.Title,
		Author:          b.Author,
		Category:        b.Category,
		Status:          b.Status,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type AdaptedMember struct {
	ID               string
	Name             string
	Email            string
	MembershipNumber string
	Status           library.MemberStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func adaptMemberIdToString(m library.Member) AdaptedMember {
	return AdaptedMember{
		ID:               m.ID.String(),
		Name:             m.Name,
		Email:            m.Email,
		MembershipNumber: m.MembershipNumber,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func adaptMemberIdToUUID(m AdaptedMember) library.Member {
	return library.Member{
		ID:               uuid.MustParse(m.ID),
		Name:             m.Name,
		Email:            m.Email,
		MembershipNumber: m.MembershipNumber,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

type AdaptedTransaction struct {
	ID         string
	BookID     string
	MemberID   string
	BorrowedAt time.Time
	DueDate    time.Time
	ReturnedAt *time.Time
	Status     library.TransactionStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func adaptTransactionIdToString(t library.Transaction) AdaptedTransaction {
	return AdaptedTransaction{
		ID:         t.ID.String(),
		BookID:     t.BookID.String(),
		MemberID:   t.MemberID.String(),
		BorrowedAt: t.BorrowedAt,
		DueDate:    t.DueDate,
		ReturnedAt: t.ReturnedAt,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func adaptTransactionIdToUUID(t AdaptedTransaction) library.Transaction {
	return library.Transaction{
		ID:         uuid.MustParse(t.ID),
		BookID:     uuid.MustParse(t.BookID),
		MemberID:   uuid.MustParse(t.MemberID),
		BorrowedAt: t.BorrowedAt,
		DueDate:    t.DueDate,
		ReturnedAt: t.ReturnedAt,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

type AdaptedFine struct {
	ID            string
	MemberID      string
	TransactionID string
	Amount        float64
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func adaptFineIdToString(f library.Fine) AdaptedFine {
	return AdaptedFine{
		ID:            f.ID.String(),
		MemberID:      f.MemberID.String(),
		TransactionID: f.TransactionID.String(),
		Amount:        f.Amount,
		PaidAt:        f.PaidAt,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func adaptFineIdToUUID(f AdaptedFine) library.Fine {
	return library.Fine{
		ID:            uuid.MustParse(f.ID),
		MemberID:      uuid.MustParse(f.MemberID),
		TransactionID: uuid.MustParse(f.TransactionID),
		Amount:        f.Amount,
		PaidAt:        f.PaidAt,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// -- Books --

func (store *InMemoryStore) CreateBook(ctx context.Context, bookEntry library.Book) (library.Book, error) {
	txn, insideTx := store.writeTxn() //insideTx means a larger transaction owns the commit.
	if !insideTx {
		defer txn.Abort()
	}

	//memdb does not reject duplicate unique index values, so the
	//isbn constraint is checked by hand, like the db would.
	raw, err := txn.First("book", "isbn", bookEntry.ISBN)
	if err != nil {
		return library.Book{}, fmt.Errorf("storing book on db: %w", err)
	}
	if raw != nil {
		return library.Book{}, fmt.Errorf("storing book on db: %w", library.ErrResponseISBNConflict)
	}

	if err := txn.Insert("book", adaptBookIdToString(bookEntry)); err != nil {
		return library.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return bookEntry, nil
}

func (store *InMemoryStore) GetBookByID(ctx context.Context, id uuid.UUID) (library.Book, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("book", "id", id.String())
	if err != nil {
		return library.Book{}, fmt.Errorf("searching book by ID: %w", err)
	}
	if raw == nil {
		return library.Book{}, fmt.Errorf("searching book by ID: %w", library.ErrResponseBookNotFound)
	}

	return adaptBookIdToUUID(raw.(AdaptedBook)), nil
}

/* Row locks do not exist in memdb; the single-writer transaction taken
at BeginTx already serializes the engine, so this is a plain read. */
func (store *InMemoryStore) GetBookForUpdate(ctx context.Context, id uuid.UUID) (library.Book, error) {
	return store.GetBookByID(ctx, id)
}

func (store *InMemoryStore) ListBooks(ctx context.Context) ([]library.Book, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("book", "id")
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}

	books := []library.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		books = append(books, adaptBookIdToUUID(obj.(AdaptedBook)))
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})
	return books, nil
}

func (store *InMemoryStore) ListBooksByStatus(ctx context.Context, status library.BookStatus) ([]library.Book, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("book", "id")
	if err != nil {
		return nil, fmt.Errorf("listing books by status from db: %w", err)
	}

	books := []library.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		b := obj.(AdaptedBook)
		if b.Status != status {
			continue
		}
		books = append(books, adaptBookIdToUUID(b))
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})
	return books, nil
}

func (store *InMemoryStore) UpdateBook(ctx context.Context, bookEntry library.Book) (library.Book, error) {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("book", "id", bookEntry.ID.String())
	if err != nil {
		return library.Book{}, fmt.Errorf("updating book on db: %w", err)
	}
	if raw == nil {
		return library.Book{}, fmt.Errorf("updating book on db: %w", library.ErrResponseBookNotFound)
	}

	updatedBook := adaptBookIdToString(bookEntry)
	updatedBook.CreatedAt = raw.(AdaptedBook).CreatedAt //CreatedAt will not change.

	if err := txn.Insert("book", updatedBook); err != nil {
		return library.Book{}, fmt.Errorf("updating book on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return adaptBookIdToUUID(updatedBook), nil
}

func (store *InMemoryStore) DeleteBook(ctx context.Context, id uuid.UUID) error {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	count, err := txn.DeleteAll("book", "id", id.String())
	if err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("deleting book from db: %w", library.ErrResponseBookNotFound)
	}

	if !insideTx {
		txn.Commit()
	}
	return nil
}

// -- Members --

func (store *InMemoryStore) CreateMember(ctx context.Context, memberEntry library.Member) (library.Member, error) {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("member", "email", memberEntry.Email)
	if err != nil {
		return library.Member{}, fmt.Errorf("storing member on db: %w", err)
	}
	if raw != nil {
		return library.Member{}, fmt.Errorf("storing member on db: %w", library.ErrResponseEmailConflict)
	}

	if err := txn.Insert("member", adaptMemberIdToString(memberEntry)); err != nil {
		return library.Member{}, fmt.Errorf("storing member on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return memberEntry, nil
}

func (store *InMemoryStore) GetMemberByID(ctx context.Context, id uuid.UUID) (library.Member, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("member", "id", id.String())
	if err != nil {
		return library.Member{}, fmt.Errorf("searching member by ID: %w", err)
	}
	if raw == nil {
		return library.Member{}, fmt.Errorf("searching member by ID: %w", library.ErrResponseMemberNotFound)
	}

	return adaptMemberIdToUUID(raw.(AdaptedMember)), nil
}

func (store *InMemoryStore) GetMemberForUpdate(ctx context.Context, id uuid.UUID) (library.Member, error) {
	return store.GetMemberByID(ctx, id)
}

func (store *InMemoryStore) ListMembers(ctx context.Context) ([]library.Member, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("member", "id")
	if err != nil {
		return nil, fmt.Errorf("listing members from db: %w", err)
	}

	members := []library.Member{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		members = append(members, adaptMemberIdToUUID(obj.(AdaptedMember)))
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})
	return members, nil
}

func (store *InMemoryStore) UpdateMember(ctx context.Context, memberEntry library.Member) (library.Member, error) {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("member", "id", memberEntry.ID.String())
	if err != nil {
		return library.Member{}, fmt.Errorf("updating member on db: %w", err)
	}
	if raw == nil {
		return library.Member{}, fmt.Errorf("updating member on db: %w", library.ErrResponseMemberNotFound)
	}

	updatedMember := adaptMemberIdToString(memberEntry)
	updatedMember.CreatedAt = raw.(AdaptedMember).CreatedAt
	updatedMember.MembershipNumber = raw.(AdaptedMember).MembershipNumber //Never reissued.

	if err := txn.Insert("member", updatedMember); err != nil {
		return library.Member{}, fmt.Errorf("updating member on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return adaptMemberIdToUUID(updatedMember), nil
}

func (store *InMemoryStore) DeleteMember(ctx context.Context, id uuid.UUID) error {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	count, err := txn.DeleteAll("member", "id", id.String())
	if err != nil {
		return fmt.Errorf("deleting member from db: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("deleting member from db: %w", library.ErrResponseMemberNotFound)
	}

	if !insideTx {
		txn.Commit()
	}
	return nil
}

// -- Transactions --

func (store *InMemoryStore) CreateTransaction(ctx context.Context, transactionEntry library.Transaction) (library.Transaction, error) {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	if err := txn.Insert("transaction", adaptTransactionIdToString(transactionEntry)); err != nil {
		return library.Transaction{}, fmt.Errorf("storing transaction on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return transactionEntry, nil
}

func (store *InMemoryStore) GetTransactionByID(ctx context.Context, id uuid.UUID) (library.Transaction, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("transaction", "id", id.String())
	if err != nil {
		return library.Transaction{}, fmt.Errorf("searching transaction by ID: %w", err)
	}
	if raw == nil {
		return library.Transaction{}, fmt.Errorf("searching transaction by ID: %w", library.ErrResponseTransactionNotFound)
	}

	return adaptTransactionIdToUUID(raw.(AdaptedTransaction)), nil
}

func (store *InMemoryStore) UpdateTransaction(ctx context.Context, transactionEntry library.Transaction) (library.Transaction, error) {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("transaction", "id", transactionEntry.ID.String())
	if err != nil {
		return library.Transaction{}, fmt.Errorf("updating transaction on db: %w", err)
	}
	if raw == nil {
		return library.Transaction{}, fmt.Errorf("updating transaction on db: %w", library.ErrResponseTransactionNotFound)
	}

	updatedTransaction := adaptTransactionIdToString(transactionEntry)
	updatedTransaction.CreatedAt = raw.(AdaptedTransaction).CreatedAt

	if err := txn.Insert("transaction", updatedTransaction); err != nil {
		return library.Transaction{}, fmt.Errorf("updating transaction on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return adaptTransactionIdToUUID(updatedTransaction), nil
}

func (store *InMemoryStore) ListActiveTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]library.Transaction, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("transaction", "member_id", memberID.String())
	if err != nil {
		return nil, fmt.Errorf("listing active transactions from db: %w", err)
	}

	transactions := []library.Transaction{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		t := obj.(AdaptedTransaction)
		if t.ReturnedAt != nil {
			continue
		}
		transactions = append(transactions, adaptTransactionIdToUUID(t))
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].BorrowedAt.Before(transactions[j].BorrowedAt)
	})
	return transactions, nil
}

func (store *InMemoryStore) CountActiveTransactionsByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	transactions, err := store.ListActiveTransactionsByMember(ctx, memberID)
	if err != nil {
		return 0, fmt.Errorf("counting active transactions from db: %w", err)
	}
	return len(transactions), nil
}

func (store *InMemoryStore) CountOverdueTransactionsByMember(ctx context.Context, memberID uuid.UUID, asOf time.Time) (int, error) {
	transactions, err := store.ListActiveTransactionsByMember(ctx, memberID)
	if err != nil {
		return 0, fmt.Errorf("counting overdue transactions from db: %w", err)
	}

	count := 0
	for _, t := range transactions {
		if library.IsOverdue(t, asOf) {
			count++
		}
	}
	return count, nil
}

func (store *InMemoryStore) ListOverdueTransactions(ctx context.Context, asOf time.Time) ([]library.Transaction, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("transaction", "id")
	if err != nil {
		return nil, fmt.Errorf("listing overdue transactions from db: %w", err)
	}

	transactions := []library.Transaction{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		t := adaptTransactionIdToUUID(obj.(AdaptedTransaction))
		if !library.IsOverdue(t, asOf) {
			continue
		}
		transactions = append(transactions, t)
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].DueDate.Before(transactions[j].DueDate)
	})
	return transactions, nil
}

func (store *InMemoryStore) CountTransactionsByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("transaction", "book_id", bookID.String())
	if err != nil {
		return 0, fmt.Errorf("counting transactions by book from db: %w", err)
	}

	count := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		count++
	}
	return count, nil
}

func (store *InMemoryStore) CountTransactionsByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("transaction", "member_id", memberID.String())
	if err != nil {
		return 0, fmt.Errorf("counting transactions by member from db: %w", err)
	}

	count := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		count++
	}
	return count, nil
}

// -- Fines --

func (store *InMemoryStore) CreateFine(ctx context.Context, fineEntry library.Fine) (library.Fine, error) {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	if err := txn.Insert("fine", adaptFineIdToString(fineEntry)); err != nil {
		return library.Fine{}, fmt.Errorf("storing fine on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return fineEntry, nil
}

func (store *InMemoryStore) GetFineByID(ctx context.Context, id uuid.UUID) (library.Fine, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("fine", "id", id.String())
	if err != nil {
		return library.Fine{}, fmt.Errorf("searching fine by ID: %w", err)
	}
	if raw == nil {
		return library.Fine{}, fmt.Errorf("searching fine by ID: %w", library.ErrResponseFineNotFound)
	}

	return adaptFineIdToUUID(raw.(AdaptedFine)), nil
}

func (store *InMemoryStore) SetFinePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (library.Fine, error) {
	txn, insideTx := store.writeTxn()
	if !insideTx {
		defer txn.Abort()
	}

	raw, err := txn.First("fine", "id", id.String())
	if err != nil {
		return library.Fine{}, fmt.Errorf("settling fine on db: %w", err)
	}
	if raw == nil {
		return library.Fine{}, fmt.Errorf("settling fine on db: %w", library.ErrResponseFineNotFound)
	}

	settledFine := raw.(AdaptedFine)
	settledFine.PaidAt = &paidAt
	settledFine.UpdatedAt = paidAt

	if err := txn.Insert("fine", settledFine); err != nil {
		return library.Fine{}, fmt.Errorf("settling fine on db: %w", err)
	}

	if !insideTx {
		txn.Commit()
	}
	return adaptFineIdToUUID(settledFine), nil
}

func (store *InMemoryStore) CountUnpaidFinesByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	txn, insideTx := store.readTxn()
	if !insideTx {
		defer txn.Abort()
	}

	it, err := txn.Get("fine", "member_id", memberID.String())
	if err != nil {
		return 0, fmt.Errorf("counting unpaid fines from db: %w", err)
	}

	count := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if obj.(AdaptedFine).PaidAt == nil {
			count++
		}
	}
	return count, nil
}

// -- Transaction handling --

func (store *InMemoryStore) BeginTx(ctx context.Context, opts *sql.TxOptions) (library.Repository, driver.Tx, error) {
	txn := store.db.Txn(true)
	if txn == nil {
		return nil, nil, fmt.Errorf("failed to create transaction")
	}

	txWrapper := &TxWrapper{txn: txn}
	txStore := &InMemoryStore{
		db:  store.db,
		exc: txWrapper.txn,
	}

	return txStore, txWrapper, nil
}

type TxWrapper struct {
	txn *memdb.Txn
}

func (tx *TxWrapper) Commit() error {
	tx.txn.Commit()
	return nil
}

func (tx *TxWrapper) Rollback() error {
	tx.txn.Abort()
	return nil
}
