package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/library"
)

const transactionColumns = `id, book_id, member_id, borrowed_at, due_date, returned_at, status, created_at, updated_at`

func scanTransaction(row scanner) (library.Transaction, error) {
	var t library.Transaction
	var returnedAt sql.NullTime
	err := row.Scan(&t.ID, &t.BookID, &t.MemberID, &t.BorrowedAt, &t.DueDate, &returnedAt, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if returnedAt.Valid {
		t.ReturnedAt = &returnedAt.Time
	}
	return t, err
}

// -- Transactions --

/* Stores a new borrow transaction into the database, checks and returns it if succeed. */
func (store *Store) CreateTransaction(ctx context.Context, transactionEntry library.Transaction) (library.Transaction, error) {
	sqlStatement := `
	INSERT INTO transactions (id, book_id, member_id, borrowed_at, due_date, returned_at, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + transactionColumns
	createdRow := store.exc.QueryRowContext(ctx, sqlStatement, transactionEntry.ID, transactionEntry.BookID, transactionEntry.MemberID, transactionEntry.BorrowedAt, transactionEntry.DueDate, transactionEntry.ReturnedAt, transactionEntry.Status, transactionEntry.CreatedAt, transactionEntry.UpdatedAt)
	transactionToReturn, err := scanTransaction(createdRow)
	if err != nil {
		return library.Transaction{}, fmt.Errorf("storing transaction on db: %w", err)
	}

	return transactionToReturn, nil
}

/* Searches a transaction in database based on ID and returns it if succeed. */
func (store *Store) GetTransactionByID(ctx context.Context, id uuid.UUID) (library.Transaction, error) {
	sqlStatement := `SELECT ` + transactionColumns + `
	FROM transactions
	WHERE id=$1;`
	foundRow := store.exc.QueryRowContext(ctx, sqlStatement, id)
	transactionToReturn, err := scanTransaction(foundRow)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return library.Transaction{}, fmt.Errorf("searching transaction by ID: %w", library.ErrResponseTransactionNotFound)
		default:
			return library.Transaction{}, fmt.Errorf("searching transaction by ID: %w", err)
		}
	}

	return transactionToReturn, nil
}

/* Stores the new state of the transaction into the database, checks and returns it if succeed. */
func (store *Store) UpdateTransaction(ctx context.Context, transactionEntry library.Transaction) (library.Transaction, error) {
	sqlStatement := `
	UPDATE transactions
	SET returned_at = $2, status = $3, updated_at = $4
	WHERE id = $1
	RETURNING ` + transactionColumns
	updatedRow := store.exc.QueryRowContext(ctx, sqlStatement, transactionEntry.ID, transactionEntry.ReturnedAt, transactionEntry.Status, transactionEntry.UpdatedAt)
	transactionToReturn, err := scanTransaction(updatedRow)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return library.Transaction{}, fmt.Errorf("updating transaction on db: %w", library.ErrResponseTransactionNotFound)
		default:
			return library.Transaction{}, fmt.Errorf("updating transaction on db: %w", err)
		}
	}

	return transactionToReturn, nil
}

/* Lists the member's open loans, oldest borrow first. */
func (store *Store) ListActiveTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]library.Transaction, error) {
	sqlStatement := `SELECT ` + transactionColumns + `
	FROM transactions
	WHERE member_id=$1 AND returned_at IS NULL
	ORDER BY borrowed_at ASC;`
	return store.listTransactions(ctx, sqlStatement, memberID)
}

func (store *Store) CountActiveTransactionsByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	sqlStatement := `SELECT COUNT(*) FROM transactions
	WHERE member_id=$1 AND returned_at IS NULL;`

	row := store.exc.QueryRowContext(ctx, sqlStatement, memberID)
	var count int
	err := row.Scan(&count)
	if err != nil {
		return count, fmt.Errorf("counting active transactions from db: %w", err)
	}

	return count, nil
}

/* Overdue is derived from the dates: open loans whose due date is behind the given instant. */
func (store *Store) CountOverdueTransactionsByMember(ctx context.Context, memberID uuid.UUID, asOf time.Time) (int, error) {
	sqlStatement := `SELECT COUNT(*) FROM transactions
	WHERE member_id=$1 AND returned_at IS NULL AND due_date < $2;`

	row := store.exc.QueryRowContext(ctx, sqlStatement, memberID, asOf)
	var count int
	err := row.Scan(&count)
	if err != nil {
		return count, fmt.Errorf("counting overdue transactions from db: %w", err)
	}

	return count, nil
}

func (store *Store) ListOverdueTransactions(ctx context.Context, asOf time.Time) ([]library.Transaction, error) {
	sqlStatement := `SELECT ` + transactionColumns + `
	FROM transactions
	WHERE returned_at IS NULL AND due_date < $1
	ORDER BY due_date ASC;`
	return store.listTransactions(ctx, sqlStatement, asOf)
}

/* Counts every transaction that ever referenced the book, open or closed. */
func (store *Store) CountTransactionsByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	sqlStatement := `SELECT COUNT(*) FROM transactions
	WHERE book_id=$1;`

	row := store.exc.QueryRowContext(ctx, sqlStatement, bookID)
	var count int
	err := row.Scan(&count)
	if err != nil {
		return count, fmt.Errorf("counting transactions by book from db: %w", err)
	}

	return count, nil
}

/* Counts every transaction that ever referenced the member, open or closed. */
func (store *Store) CountTransactionsByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	sqlStatement := `SELECT COUNT(*) FROM transactions
	WHERE member_id=$1;`

	row := store.exc.QueryRowContext(ctx, sqlStatement, memberID)
	var count int
	err := row.Scan(&count)
	if err != nil {
		return count, fmt.Errorf("counting transactions by member from db: %w", err)
	}

	return count, nil
}

func (store *Store) listTransactions(ctx context.Context, sqlStatement string, args ...any) ([]library.Transaction, error) {
	rows, err := store.exc.QueryContext(ctx, sqlStatement, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions from db: %w", err)
	}
	defer rows.Close()

	transactionsList := []library.Transaction{}
	for rows.Next() {
		transactionToReturn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("listing transactions from db: %w", err)
		}
		transactionsList = append(transactionsList, transactionToReturn)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("listing transactions from db: %w", err)
	}

	return transactionsList, nil
}

// -- Fines --

const fineColumns = `id, member_id, transaction_id, amount, paid_at, created_at, updated_at`

func scanFine(row scanner) (library.Fine, error) {
	var f library.Fine
	var paidAt sql.NullTime
	err := row.Scan(&f.ID, &f.MemberID, &f.TransactionID, &f.Amount, &paidAt, &f.CreatedAt, &f.UpdatedAt)
	if paidAt.Valid {
		f.PaidAt = &paidAt.Time
	}
	return f, err
}

/* Stores a new fine into the database, checks and returns it if succeed. */
func (store *Store) CreateFine(ctx context.Context, fineEntry library.Fine) (library.Fine, error) {
	sqlStatement := `
	INSERT INTO fines (id, member_id, transaction_id, amount, paid_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + fineColumns
	createdRow := store.exc.QueryRowContext(ctx, sqlStatement, fineEntry.ID, fineEntry.MemberID, fineEntry.TransactionID, fineEntry.Amount, fineEntry.PaidAt, fineEntry.CreatedAt, fineEntry.UpdatedAt)
	fineToReturn, err := scanFine(createdRow)
	if err != nil {
		return library.Fine{}, fmt.Errorf("storing fine on db: %w", err)
	}

	return fineToReturn, nil
}

/* Searches a fine in database based on ID and returns it if succeed. */
func (store *Store) GetFineByID(ctx context.Context, id uuid.UUID) (library.Fine, error) {
	sqlStatement := `SELECT ` + fineColumns + `
	FROM fines
	WHERE id=$1;`
	foundRow := store.exc.QueryRowContext(ctx, sqlStatement, id)
	fineToReturn, err := scanFine(foundRow)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return library.Fine{}, fmt.Errorf("searching fine by ID: %w", library.ErrResponseFineNotFound)
		default:
			return library.Fine{}, fmt.Errorf("searching fine by ID: %w", err)
		}
	}

	return fineToReturn, nil
}

/* Stamps the payment instant on a fine and returns the settled record. */
func (store *Store) SetFinePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (library.Fine, error) {
	sqlStatement := `
	UPDATE fines
	SET paid_at = $2, updated_at = $2
	WHERE id = $1
	RETURNING ` + fineColumns
	updatedRow := store.exc.QueryRowContext(ctx, sqlStatement, id, paidAt)
	fineToReturn, err := scanFine(updatedRow)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return library.Fine{}, fmt.Errorf("settling fine on db: %w", library.ErrResponseFineNotFound)
		default:
			return library.Fine{}, fmt.Errorf("settling fine on db: %w", err)
		}
	}

	return fineToReturn, nil
}

func (store *Store) CountUnpaidFinesByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	sqlStatement := `SELECT COUNT(*) FROM fines
	WHERE member_id=$1 AND paid_at IS NULL;`

	row := store.exc.QueryRowContext(ctx, sqlStatement, memberID)
	var count int
	err := row.Scan(&count)
	if err != nil {
		return count, fmt.Errorf("counting unpaid fines from db: %w", err)
	}

	return count, nil
}
