package inmemory_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/inmemory"
	"github.com/library-service/cmd/api/library"
	"github.com/matryer/is"
)

var ctx context.Context = context.Background()

func TestCreateBook(t *testing.T) {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	t.Run("creates a book without errors", func(t *testing.T) {
		is := is.New(t)

		b := testBook("978-0134190440", "The Go Programming Language")

		newBook, err := store.CreateBook(ctx, b)
		is.NoErr(err)
		compareBooks(is, newBook, b)
	})

	t.Run("creating a book with a taken isbn should return a conflict error", func(t *testing.T) {
		is := is.New(t)

		duplicate := testBook("978-0134190440", "A different title, same isbn")

		returnedBook, err := store.CreateBook(ctx, duplicate)
		is.True(errors.Is(err, library.ErrResponseISBNConflict))
		compareBooks(is, returnedBook, library.Book{})
	})
}

func TestGetBook(t *testing.T) {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	t.Run("gets a book by ID without errors", func(t *testing.T) {
		is := is.New(t)

		// Setting up, creating a book to be fetched.
		b := testBook("978-0201633610", "Design Patterns")

		newBook, err := store.CreateBook(ctx, b)
		is.NoErr(err)
		compareBooks(is, newBook, b)

		returnedBook, err := store.GetBookByID(ctx, b.ID)
		is.NoErr(err)
		compareBooks(is, returnedBook, b)
	})

	t.Run("gets an non existing book should return a not found error", func(t *testing.T) {
		is := is.New(t)

		returnedBook, err := store.GetBookByID(ctx, uuid.New())
		is.True(errors.Is(err, library.ErrResponseBookNotFound))
		compareBooks(is, returnedBook, library.Book{})
	})
}

func TestUpdateBook(t *testing.T) {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	t.Run("updates a book without errors", func(t *testing.T) {
		is := is.New(t)

		b := testBook("978-0132350884", "Clean Code")

		newBook, err := store.CreateBook(ctx, b)
		is.NoErr(err)
		compareBooks(is, newBook, b)

		//Updating the created book.
		b.Title = "Clean Code, revised"
		b.TotalCopies = 7
		b.AvailableCopies = 7
		b.UpdatedAt = time.Now().UTC().Round(time.Millisecond)

		updatedBook, err := store.UpdateBook(ctx, b)
		is.NoErr(err)
		compareBooks(is, updatedBook, b)
	})

	t.Run("updates an non existing book should return a not found error", func(t *testing.T) {
		is := is.New(t)

		returnedBook, err := store.UpdateBook(ctx, testBook("978-0000000000", "Never stored"))
		is.True(errors.Is(err, library.ErrResponseBookNotFound))
		compareBooks(is, returnedBook, library.Book{})
	})
}

func TestDeleteBook(t *testing.T) {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	t.Run("deletes a book without errors", func(t *testing.T) {
		is := is.New(t)

		b := testBook("978-0596517748", "JavaScript: The Good Parts")

		_, err := store.CreateBook(ctx, b)
		is.NoErr(err)

		err = store.DeleteBook(ctx, b.ID)
		is.NoErr(err)

		_, err = store.GetBookByID(ctx, b.ID)
		is.True(errors.Is(err, library.ErrResponseBookNotFound))
	})

	t.Run("deletes an non existing book should return a not found error", func(t *testing.T) {
		is := is.New(t)

		err := store.DeleteBook(ctx, uuid.New())
		is.True(errors.Is(err, library.ErrResponseBookNotFound))
	})
}

func TestListBooks(t *testing.T) {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	is := is.New(t)
	listSize := 10

	t.Run("list books without errors even if there is no books in the database", func(t *testing.T) {
		is := is.New(t)

		returnedBooks, err := store.ListBooks(ctx)
		is.NoErr(err)
		is.Equal(returnedBooks, []library.Book{})
	})

	// Setting up, creating books to be listed.
	for i := 0; i < listSize; i++ {
		b := testBook(fmt.Sprintf("978-0000%06v", i), fmt.Sprintf("Book number %06v", i))
		if i%2 == 0 {
			b.Status = library.BookStatusMaintenance
		}

		newBook, err := store.CreateBook(ctx, b)
		is.NoErr(err)
		compareBooks(is, newBook, b)
	}

	t.Run("list all books ordered by title, without errors", func(t *testing.T) {
		is := is.New(t)

		returnedBooks, err := store.ListBooks(ctx)
		is.NoErr(err)
		is.True(len(returnedBooks) == listSize)
		for i := 0; i < listSize-1; i++ {
			is.True(returnedBooks[i].Title < returnedBooks[i+1].Title)
		}
	})

	t.Run("list books filtered by status, without errors", func(t *testing.T) {
		is := is.New(t)

		returnedBooks, err := store.ListBooksByStatus(ctx, library.BookStatusAvailable)
		is.NoErr(err)
		is.True(len(returnedBooks) == listSize/2)
		for _, b := range returnedBooks {
			is.Equal(b.Status, library.BookStatusAvailable)
		}
	})
}

func TestMembers(t *testing.T) {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	m := testMember("ada@example.com", "Ada Lovelace")

	t.Run("creates a member without errors", func(t *testing.T) {
		is := is.New(t)

		newMember, err := store.CreateMember(ctx, m)
		is.NoErr(err)
		compareMembers(is, newMember, m)
	})

	t.Run("creating a member with a taken email should return a conflict error", func(t *testing.T) {
		is := is.New(t)

		duplicate := testMember("ada@example.com", "A different Ada")

		returnedMember, err := store.CreateMember(ctx, duplicate)
		is.True(errors.Is(err, library.ErrResponseEmailConflict))
		compareMembers(is, returnedMember, library.Member{})
	})

	t.Run("gets a member by ID without errors", func(t *testing.T) {
		is := is.New(t)

		returnedMember, err := store.GetMemberByID(ctx, m.ID)
		is.NoErr(err)
		compareMembers(is, returnedMember, m)
	})

	t.Run("gets an non existing member should return a not found error", func(t *testing.T) {
		is := is.New(t)

		returnedMember, err := store.GetMemberByID(ctx, uuid.New())
		is.True(errors.Is(err, library.ErrResponseMemberNotFound))
		compareMembers(is, returnedMember, library.Member{})
	})

	t.Run("updates a member keeping its membership number", func(t *testing.T) {
		is := is.New(t)

		changed := m
		changed.Name = "Ada King"
		changed.MembershipNumber = "should-be-ignored"
		changed.UpdatedAt = time.Now().UTC().Round(time.Millisecond)

		updatedMember, err := store.UpdateMember(ctx, changed)
		is.NoErr(err)
		is.Equal(updatedMember.Name, "Ada King")
		is.Equal(updatedMember.MembershipNumber, m.MembershipNumber)
	})

	t.Run("lists members ordered by name, without errors", func(t *testing.T) {
		is := is.New(t)

		other := testMember("bob@example.com", "Bob")
		_, err := store.CreateMember(ctx, other)
		is.NoErr(err)

		returnedMembers, err := store.ListMembers(ctx)
		is.NoErr(err)
		is.True(len(returnedMembers) == 2)
		is.True(returnedMembers[0].Name < returnedMembers[1].Name)
	})

	t.Run("deletes a member without errors", func(t *testing.T) {
		is := is.New(t)

		err := store.DeleteMember(ctx, m.ID)
		is.NoErr(err)

		err = store.DeleteMember(ctx, m.ID)
		is.True(errors.Is(err, library.ErrResponseMemberNotFound))
	})
}

func TestTransactionsAndFines(t *testing.T) {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	is := is.New(t)
	now := time.Now().UTC().Round(time.Millisecond)

	b := testBook("978-0262033848", "Introduction to Algorithms")
	m := testMember("grace@example.com", "Grace Hopper")

	_, err = store.CreateBook(ctx, b)
	is.NoErr(err)
	_, err = store.CreateMember(ctx, m)
	is.NoErr(err)

	overdueLoan := library.Transaction{
		ID:         uuid.New(),
		BookID:     b.ID,
		MemberID:   m.ID,
		BorrowedAt: now.AddDate(0, 0, -20),
		DueDate:    now.AddDate(0, 0, -6),
		Status:     library.TransactionStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	t.Run("creates and fetches a transaction without errors", func(t *testing.T) {
		is := is.New(t)

		newTransaction, err := store.CreateTransaction(ctx, overdueLoan)
		is.NoErr(err)
		compareTransactions(is, newTransaction, overdueLoan)

		returnedTransaction, err := store.GetTransactionByID(ctx, overdueLoan.ID)
		is.NoErr(err)
		compareTransactions(is, returnedTransaction, overdueLoan)
	})

	t.Run("gets an non existing transaction should return a not found error", func(t *testing.T) {
		is := is.New(t)

		_, err := store.GetTransactionByID(ctx, uuid.New())
		is.True(errors.Is(err, library.ErrResponseTransactionNotFound))
	})

	t.Run("counts active and overdue loans of a member", func(t *testing.T) {
		is := is.New(t)

		active, err := store.CountActiveTransactionsByMember(ctx, m.ID)
		is.NoErr(err)
		is.Equal(active, 1)

		overdue, err := store.CountOverdueTransactionsByMember(ctx, m.ID, now)
		is.NoErr(err)
		is.Equal(overdue, 1)

		//A loan due in the future is active but not overdue.
		overdue, err = store.CountOverdueTransactionsByMember(ctx, m.ID, now.AddDate(0, 0, -10))
		is.NoErr(err)
		is.Equal(overdue, 0)
	})

	t.Run("lists overdue transactions ordered by due date", func(t *testing.T) {
		is := is.New(t)

		older := overdueLoan
		older.ID = uuid.New()
		older.DueDate = now.AddDate(0, 0, -12)
		_, err := store.CreateTransaction(ctx, older)
		is.NoErr(err)

		returnedTransactions, err := store.ListOverdueTransactions(ctx, now)
		is.NoErr(err)
		is.True(len(returnedTransactions) == 2)
		is.True(returnedTransactions[0].DueDate.Before(returnedTransactions[1].DueDate))
	})

	t.Run("returning a loan removes it from the active count", func(t *testing.T) {
		is := is.New(t)

		returnedAt := now
		closed := overdueLoan
		closed.ReturnedAt = &returnedAt
		closed.Status = library.TransactionStatusReturned
		closed.UpdatedAt = returnedAt

		updatedTransaction, err := store.UpdateTransaction(ctx, closed)
		is.NoErr(err)
		compareTransactions(is, updatedTransaction, closed)

		active, err := store.CountActiveTransactionsByMember(ctx, m.ID)
		is.NoErr(err)
		is.Equal(active, 1) //Only the second loan stays open.
	})

	t.Run("creates, settles and counts fines", func(t *testing.T) {
		is := is.New(t)

		f := library.Fine{
			ID:            uuid.New(),
			MemberID:      m.ID,
			TransactionID: overdueLoan.ID,
			Amount:        3.00,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		newFine, err := store.CreateFine(ctx, f)
		is.NoErr(err)
		compareFines(is, newFine, f)

		unpaid, err := store.CountUnpaidFinesByMember(ctx, m.ID)
		is.NoErr(err)
		is.Equal(unpaid, 1)

		paidAt := now.Add(time.Hour)
		settledFine, err := store.SetFinePaid(ctx, f.ID, paidAt)
		is.NoErr(err)
		is.True(settledFine.PaidAt != nil)
		is.True(settledFine.PaidAt.Equal(paidAt))

		unpaid, err = store.CountUnpaidFinesByMember(ctx, m.ID)
		is.NoErr(err)
		is.Equal(unpaid, 0)
	})

	t.Run("settling an non existing fine should return a not found error", func(t *testing.T) {
		is := is.New(t)

		_, err := store.SetFinePaid(ctx, uuid.New(), now)
		is.True(errors.Is(err, library.ErrResponseFineNotFound))
	})
}

// Tests all methods of the transaction togheter, the way the borrow flow uses them.
func TestBorrowTx(t *testing.T) {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	is := is.New(t)
	now := time.Now().UTC().Round(time.Millisecond)

	b := testBook("978-0131103627", "The C Programming Language")
	b.TotalCopies = 1
	b.AvailableCopies = 1
	m := testMember("dennis@example.com", "Dennis Ritchie")

	_, err = store.CreateBook(ctx, b)
	is.NoErr(err)
	_, err = store.CreateMember(ctx, m)
	is.NoErr(err)

	t.Run("borrows the last copy inside a transaction without errors", func(t *testing.T) {
		is := is.New(t)

		txRepo, tx, err := store.BeginTx(ctx, nil)
		is.NoErr(err)

		defer func() {
			rollbackErr := tx.Rollback()
			is.True(errors.Is(rollbackErr, nil))
		}()

		lockedBook, err := txRepo.GetBookForUpdate(ctx, b.ID)
		is.NoErr(err)
		is.True(lockedBook.AvailableCopies > 0)

		lockedMember, err := txRepo.GetMemberForUpdate(ctx, m.ID)
		is.NoErr(err)
		is.Equal(lockedMember.Status, library.MemberStatusActive)

		loan := library.Transaction{
			ID:         uuid.New(),
			BookID:     b.ID,
			MemberID:   m.ID,
			BorrowedAt: now,
			DueDate:    now.AddDate(0, 0, 14),
			Status:     library.TransactionStatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		_, err = txRepo.CreateTransaction(ctx, loan)
		is.NoErr(err)

		lockedBook.AvailableCopies--
		lockedBook.Status = library.BookStatusBorrowed
		lockedBook.UpdatedAt = now
		_, err = txRepo.UpdateBook(ctx, lockedBook)
		is.NoErr(err)

		err = tx.Commit()
		is.NoErr(err)

		//Testing if the committed state is visible outside the transaction.
		fetchedBook, err := store.GetBookByID(ctx, b.ID)
		is.NoErr(err)
		is.Equal(fetchedBook.AvailableCopies, 0)
		is.Equal(fetchedBook.Status, library.BookStatusBorrowed)

		active, err := store.CountActiveTransactionsByMember(ctx, m.ID)
		is.NoErr(err)
		is.Equal(active, 1)
	})

	t.Run("a rolled back transaction leaves no trace", func(t *testing.T) {
		is := is.New(t)

		txRepo, tx, err := store.BeginTx(ctx, nil)
		is.NoErr(err)

		lockedBook, err := txRepo.GetBookForUpdate(ctx, b.ID)
		is.NoErr(err)

		lockedBook.TotalCopies = 99
		lockedBook.AvailableCopies = 99
		_, err = txRepo.UpdateBook(ctx, lockedBook)
		is.NoErr(err)

		err = tx.Rollback()
		is.NoErr(err)

		fetchedBook, err := store.GetBookByID(ctx, b.ID)
		is.NoErr(err)
		is.Equal(fetchedBook.TotalCopies, 1)
		is.Equal(fetchedBook.AvailableCopies, 0)
	})
}

func TestConcurrentStoreAccess(t *testing.T) {
	is := is.New(t)
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}

	b := testBook("978-0262046305", "Introduction to Algorithms")
	_, err = store.CreateBook(ctx, b)
	is.NoErr(err)

	//Reads and writes straight on the root store, the way concurrent
	//requests hit it when no engine transaction is involved.
	goroutines := 16
	var wg sync.WaitGroup
	results := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, err := store.GetBookByID(ctx, b.ID)
				results <- err
				return
			}
			m := testMember(fmt.Sprintf("reader-%d@example.com", i), fmt.Sprintf("Reader %d", i))
			_, err := store.CreateMember(ctx, m)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	for err := range results {
		is.NoErr(err)
	}

	members, err := store.ListMembers(ctx)
	is.NoErr(err)
	is.Equal(len(members), goroutines/2)
}

func testBook(isbn, title string) library.Book {
	now := time.Now().UTC().Round(time.Millisecond)
	return library.Book{
		ID:              uuid.New(),
		ISBN:            isbn,
		Title:           title,
		Author:          "An author",
		Category:        "nonfiction",
		Status:          library.BookStatusAvailable,
		TotalCopies:     5,
		AvailableCopies: 5,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func testMember(email, name string) library.Member {
	now := time.Now().UTC().Round(time.Millisecond)
	return library.Member{
		ID:               uuid.New(),
		Name:             name,
		Email:            email,
		MembershipNumber: uuid.NewString(),
		Status:           library.MemberStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// compareBooks asserts that two books are equal,
// handling time.Time values correctly.
func compareBooks(is *is.I, a, b library.Book) {
	is.Helper()

	// Make sure we have the correct timestamps.
	is.True(a.CreatedAt.Equal(b.CreatedAt))
	is.True(a.UpdatedAt.Equal(b.UpdatedAt))

	// Overwrite to be able to compare them.
	b.CreatedAt = a.CreatedAt
	b.UpdatedAt = a.UpdatedAt

	// Assert that they are equal.
	is.Equal(a, b)
}

func compareMembers(is *is.I, a, b library.Member) {
	is.Helper()

	is.True(a.CreatedAt.Equal(b.CreatedAt))
	is.True(a.UpdatedAt.Equal(b.UpdatedAt))

	b.CreatedAt = a.CreatedAt
	b.UpdatedAt = a.UpdatedAt

	is.Equal(a, b)
}

func compareTransactions(is *is.I, a, b library.Transaction) {
	is.Helper()

	is.True(a.CreatedAt.Equal(b.CreatedAt))
	is.True(a.UpdatedAt.Equal(b.UpdatedAt))

	b.CreatedAt = a.CreatedAt
	b.UpdatedAt = a.UpdatedAt

	is.Equal(a, b)
}

func compareFines(is *is.I, a, b library.Fine) {
	is.Helper()

	is.True(a.CreatedAt.Equal(b.CreatedAt))
	is.True(a.UpdatedAt.Equal(b.UpdatedAt))

	b.CreatedAt = a.CreatedAt
	b.UpdatedAt = a.UpdatedAt

	is.Equal(a, b)
}
