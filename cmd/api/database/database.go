package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/google/uuid"
	"github.com/library-service/cmd/api/library"

	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/lib/pq"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	exc *Executor
}

type Executor struct {
	DBTX
}

func NewStore(db *sql.DB) *Store {
	currentStore := &Store{
		db:  db,
		exc: NewExc(db),
	}
	return currentStore
}

func NewExc(dbtx DBTX) *Executor {
	return &Executor{DBTX: dbtx}
}

func (store *Store) BeginTx(ctx context.Context, opts *sql.TxOptions) (library.Repository, driver.Tx, error) {
	tx, err := store.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}

	txRepo := NewStore(store.db)
	txRepo.exc = NewExc(tx)
	return txRepo, tx, nil
}

/* Connects to the database through a connection string and returns a pointer to a valid DB object (*sql.DB). */
func ConnectDb(connStr string) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to db, opening: %w", err)
	}

	err = sqlDB.Ping()
	if err != nil {
		return nil, fmt.Errorf("connecting to db, pinging: %w", err)
	}

	log.Println("Successfully connected!")
	return sqlDB, nil
}

func MigrationUp(store *Store, path string) error {
	driver, err := postgres.WithInstance(store.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", path),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	err = m.Up()
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}
	return nil
}

/* Translates a Postgres unique constraint violation into the matching
domain conflict, or returns nil when the error is something else. */
func uniqueConflict(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch {
	case strings.Contains(pqErr.Constraint, "isbn"):
		return library.ErrResponseISBNConflict
	case strings.Contains(pqErr.Constraint, "email"):
		return library.ErrResponseEmailConflict
	default:
		return nil
	}
}

type scanner interface {
	Scan(dest ...any) error
}

const bookColumns = `id, isbn, title, author, category, status, total_copies, available_copies, created_at, updated_at`

func scanBook(row scanner) (library.Book, error) {
	var b library.Book
	err := row.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Category, &b.Status, &b.TotalCopies, &b.AvailableCopies, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// -- Books --

/* Stores the book into the database, checks and returns it if succeed. */
func (store *Store) CreateBook(ctx context.Context, bookEntry library.Book) (library.Book, error) {
	sqlStatement := `
	INSERT INTO books (id, isbn, title, author, category, status, total_copies, available_copies, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + bookColumns
	createdRow := store.exc.QueryRowContext(ctx, sqlStatement, bookEntry.ID, bookEntry.ISBN, bookEntry.Title, bookEntry.Author, bookEntry.Category, bookEntry.Status, bookEntry.TotalCopies, bookEntry.AvailableCopies, bookEntry.CreatedAt, bookEntry.UpdatedAt)
	bookToReturn, err := scanBook(createdRow)
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			return library.Book{}, fmt.Errorf("storing book on db: %w", conflict)
		}
		return library.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	return bookToReturn, nil
}

/* Searches a book in database based on ID and returns it if succeed. */
func (store *Store) GetBookByID(ctx context.Context, id uuid.UUID) (library.Book, error) {
	sqlStatement := `SELECT ` + bookColumns + `
	FROM books
	WHERE id=$1;`
	foundRow := store.exc.QueryRowContext(ctx, sqlStatement, id)
	bookToReturn, err := scanBook(foundRow)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return library.Book{}, fmt.Errorf("searching book by ID: %w", library.ErrResponseBookNotFound)
		default:
			return library.Book{}, fmt.Errorf("searching book by ID: %w", err)
		}
	}

	return bookToReturn, nil
}

/* Same as GetBookByID, but takes a row-level lock so concurrent borrows
and returns of the same book serialize. */
func (store *Store) GetBookForUpdate(ctx context.Context, id uuid.UUID) (library.Book, error) {
	sqlStatement := `SELECT ` + bookColumns + `
	FROM books
	WHERE id=$1
	FOR UPDATE;`
	foundRow := store.exc.QueryRowContext(ctx, sqlStatement, id)
	bookToReturn, err := scanBook(foundRow)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return library.Book{}, fmt.Errorf("locking book by ID: %w", library.ErrResponseBookNotFound)
		default:
			return library.Book{}, fmt.Errorf("locking book by ID: %w", err)
		}
	}

	return bookToReturn, nil
}

/* Returns the whole catalog ordered by title. */
func (store *Store) ListBooks(ctx context.Context) ([]library.Book, error) {
	sqlStatement := `SELECT ` + bookColumns + `
	FROM books
	ORDER BY title ASC;`
	rows, err := store.exc.QueryContext(ctx, sqlStatement)
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}
	defer rows.Close()

	booksList := []library.Book{}
	for rows.Next() {
		bookToReturn, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("listing books from db: %w", err)
		}
		booksList = append(booksList, bookToReturn)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}

	return booksList, nil
}

func (store *Store) ListBooksByStatus(ctx context.Context, status library.BookStatus) ([]library.Book, error) {
	sqlStatement := `SELECT ` + bookColumns + `
	FROM books
	WHERE status=$1
	ORDER BY title ASC;`
	rows, err := store.exc.QueryContext(ctx, sqlStatement, status)
	if err != nil {
		return nil, fmt.Errorf("listing books by status from db: %w", err)
	}
	defer rows.Close()

	booksList := []library.Book{}
	for rows.Next() {
		bookToReturn, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("listing books by status from db: %w", err)
		}
		booksList = append(booksList, bookToReturn)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("listing books by status from db: %w", err)
	}

	return booksList, nil
}

/* Stores the new state of the book into the database, checks and returns it if succeed. */
func (store *Store) UpdateBook(ctx context.Context, bookEntry library.Book) (library.Book, error) {
	sqlStatement := `
	UPDATE books
	SET isbn = $2, title = $3, author = $4, category = $5, status = $6, total_copies = $7, available_copies = $8, updated_at = $9
	WHERE id = $1
	RETURNING ` + bookColumns
	updatedRow := store.exc.QueryRowContext(ctx, sqlStatement, bookEntry.ID, bookEntry.ISBN, bookEntry.Title, bookEntry.Author, bookEntry.Category, bookEntry.Status, bookEntry.TotalCopies, bookEntry.AvailableCopies, bookEntry.UpdatedAt)
	bookToReturn, err := scanBook(updatedRow)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return library.Book{}, fmt.Errorf("updating book on db: %w", library.ErrResponseBookNotFound)
		case uniqueConflict(err) != nil:
			return library.Book{}, fmt.Errorf("updating book on db: %w", uniqueConflict(err))
		default:
			return library.Book{}, fmt.Errorf("updating book on db: %w", err)
		}
	}

	return bookToReturn, nil
}

func (store *Store) DeleteBook(ctx context.Context, id uuid.UUID) error {
	sqlStatement := `
	DELETE FROM books
	WHERE id = $1;`
	result, err := store.exc.ExecContext(ctx, sqlStatement, id)
	if err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting book from db: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("deleting book from db: %w", library.ErrResponseBookNotFound)
	}
	return nil
}

// -- Members --

const memberColumns = `id, name, email, membership_number, status, created_at, updated_at`

func scanMember(row scanner) (library.Member, error) {
	var m library.Member
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.MembershipNumber, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

/* Stores the member into the database, checks and returns it if succeed. */
func (store *Store) CreateMember(ctx context.Context, memberEntry library.Member) (library.Member, error) {
	sqlStatement := `
	INSERT INTO members (id, name, email, membership_number, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + memberColumns
	createdRow := store.exc.QueryRowContext(ctx, sqlStatement, memberEntry.ID, memberEntry.Name, memberEntry.Email, memberEntry.MembershipNumber, memberEntry.Status, memberEntry.CreatedAt, memberEntry.UpdatedAt)
	memberToReturn, err := scanMember(createdRow)
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			return library.Member{}, fmt.Errorf("storing member on db: %w", conflict)
		}
		return library.Member{}, fmt.Errorf("storing member on db: %w", err)
	}

	return memberToReturn, nil
}

/* Searches a member in database based on ID and returns it if succeed. */
func (store *Store) GetMemberByID(ctx context.Context, id uuid.UUID) (library.Member, error) {
	sqlStatement := `SELECT ` + memberColumns + `
	FROM members
	WHERE id=$1;`
	foundRow := store.exc.QueryRowContext(ctx, sqlStatement, id)
	memberToReturn, err := scanMember(foundRow)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return library.Member{}, fmt.Errorf("searching member by ID: %w", library.ErrResponseMemberNotFound)
		default:
			return library.Member{}, fmt.Errorf("searching member by ID: %w", err)
		}
	}

	return memberToReturn, nil
}

/* Same as GetMemberByID, but takes a row-level lock for the circulation engine. */
func (store *Store) GetMemberForUpdate(ctx context.Context, id uuid.UUID) (library.Member, error) {
	sqlStatement := `SELECT ` + memberColumns + `
	FROM members
	WHERE id=$1
	FOR UPDATE;`
	foundRow := store.exc.QueryRowContext(ctx, sqlStatement, id)
	memberToReturn, err := scanMember(foundRow)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return library.Member{}, fmt.Errorf("locking member by ID: %w", library.ErrResponseMemberNotFound)
		default:
			return library.Member{}, fmt.Errorf("locking member by ID: %w", err)
		}
	}

	return memberToReturn, nil
}

func (store *Store) ListMembers(ctx context.Context) ([]library.Member, error) {
	sqlStatement := `SELECT ` + memberColumns + `
	FROM members
	ORDER BY name ASC;`
	rows, err := store.exc.QueryContext(ctx, sqlStatement)
	if err != nil {
		return nil, fmt.Errorf("listing members from db: %w", err)
	}
	defer rows.Close()

	membersList := []library.Member{}
	for rows.Next() {
		memberToReturn, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("listing members from db: %w", err)
		}
		membersList = append(membersList, memberToReturn)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("listing members from db: %w", err)
	}

	return membersList, nil
}

/* Stores the new state of the member into the database, checks and returns it if succeed. */
func (store *Store) UpdateMember(ctx context.Context, memberEntry library.Member) (library.Member, error) {
	sqlStatement := `
	UPDATE members
	SET name = $2, email = $3, status = $4, updated_at = $5
	WHERE id = $1
	RETURNING ` + memberColumns
	updatedRow := store.exc.QueryRowContext(ctx, sqlStatement, memberEntry.ID, memberEntry.Name, memberEntry.Email, memberEntry.Status, memberEntry.UpdatedAt)
	memberToReturn, err := scanMember(updatedRow)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return library.Member{}, fmt.Errorf("updating member on db: %w", library.ErrResponseMemberNotFound)
		case uniqueConflict(err) != nil:
			return library.Member{}, fmt.Errorf("updating member on db: %w", uniqueConflict(err))
		default:
			return library.Member{}, fmt.Errorf("updating member on db: %w", err)
		}
	}

	return memberToReturn, nil
}

func (store *Store) DeleteMember(ctx context.Context, id uuid.UUID) error {
	sqlStatement := `
	DELETE FROM members
	WHERE id = $1;`
	result, err := store.exc.ExecContext(ctx, sqlStatement, id)
	if err != nil {
		return fmt.Errorf("deleting member from db: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting member from db: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("deleting member from db: %w", library.ErrResponseMemberNotFound)
	}
	return nil
}
