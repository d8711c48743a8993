package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/library"
)

/* Addresses a call to "/transactions/borrow" according to the requested action.  */
func (h *LibraryHandler) borrow(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	h.borrowBook(w, r)
}

type BorrowEntry struct {
	BookID   uuid.UUID `json:"book_id"`
	MemberID uuid.UUID `json:"member_id"`
}

/* Validates the entry, then lends a copy of the book to the member. */
func (h *LibraryHandler) borrowBook(w http.ResponseWriter, r *http.Request) {
	var borrowEntry BorrowEntry
	err := json.NewDecoder(r.Body).Decode(&borrowEntry)
	if err != nil {
		log.Println(err)
		errR := library.ErrResponse{
			Code:    library.ErrResponseEntryInvalidJSON.Code,
			Message: library.ErrResponseEntryInvalidJSON.Message + err.Error(),
		}
		responseJSON(w, http.StatusBadRequest, errR)
		return
	}

	if borrowEntry.BookID == uuid.Nil || borrowEntry.MemberID == uuid.Nil {
		responseJSON(w, http.StatusBadRequest, library.ErrResponseBorrowEntryBlankFields)
		return
	}

	createdTransaction, err := h.libraryService.BorrowBook(r.Context(), library.BorrowRequest{
		BookID:   borrowEntry.BookID,
		MemberID: borrowEntry.MemberID,
	})
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusCreated, transactionToResponse(createdTransaction))
}

/* Addresses a call to "/transactions/(expected id here)/return" according to the requested action.  */
func (h *LibraryHandler) transactionById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	if !strings.HasSuffix(r.URL.Path, "/return") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	h.returnBook(w, r)
}

/* Closes the loan, restores the copy and issues a fine if the book came back late. */
func (h *LibraryHandler) returnBook(w http.ResponseWriter, r *http.Request) {
	justId, _ := strings.CutPrefix(r.URL.Path, "/transactions/")
	justId, _ = strings.CutSuffix(justId, "/return")
	id, err := uuid.Parse(justId)
	if err != nil {
		log.Println(err)
		responseJSON(w, http.StatusBadRequest, library.ErrResponseIdInvalidFormat)
		return
	}

	receipt, err := h.libraryService.ReturnBook(r.Context(), id)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, receiptToResponse(receipt))
}

/* Lists every open loan whose due date has passed. */
func (h *LibraryHandler) overdueTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	overdueList, err := h.libraryService.ListOverdueTransactions(r.Context())
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, transactionsToResponse(overdueList))
}

/* Addresses a call to "/fines/(expected id here)/pay" according to the requested action.  */
func (h *LibraryHandler) fineById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	if !strings.HasSuffix(r.URL.Path, "/pay") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	h.payFine(w, r)
}

/* Settles an outstanding fine. */
func (h *LibraryHandler) payFine(w http.ResponseWriter, r *http.Request) {
	justId, _ := strings.CutPrefix(r.URL.Path, "/fines/")
	justId, _ = strings.CutSuffix(justId, "/pay")
	id, err := uuid.Parse(justId)
	if err != nil {
		log.Println(err)
		responseJSON(w, http.StatusBadRequest, library.ErrResponseIdInvalidFormat)
		return
	}

	settledFine, err := h.libraryService.PayFine(r.Context(), id)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, fineToResponse(settledFine))
}

type TransactionResponse struct {
	ID         uuid.UUID  `json:"id"`
	BookID     uuid.UUID  `json:"book_id"`
	MemberID   uuid.UUID  `json:"member_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at"`
	Status     string     `json:"status"`
}

/*Copy the fields of a transaction object to an http layer struct with json tags*/
func transactionToResponse(t library.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		BookID:     t.BookID,
		MemberID:   t.MemberID,
		BorrowedAt: t.BorrowedAt,
		DueDate:    t.DueDate,
		ReturnedAt: t.ReturnedAt,
		Status:     string(t.Status),
	}
}

func transactionsToResponse(transactions []library.Transaction) []TransactionResponse {
	results := []TransactionResponse{}
	for _, t := range transactions {
		results = append(results, transactionToResponse(t))
	}
	return results
}

type FineResponse struct {
	ID            uuid.UUID  `json:"id"`
	MemberID      uuid.UUID  `json:"member_id"`
	TransactionID uuid.UUID  `json:"transaction_id"`
	Amount        float64    `json:"amount"`
	PaidAt        *time.Time `json:"paid_at"`
}

/*Copy the fields of a fine object to an http layer struct with json tags*/
func fineToResponse(f library.Fine) FineResponse {
	return FineResponse{
		ID:            f.ID,
		MemberID:      f.MemberID,
		TransactionID: f.TransactionID,
		Amount:        f.Amount,
		PaidAt:        f.PaidAt,
	}
}

type ReturnResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Fine        *FineResponse       `json:"fine"`
}

/*Copy the fields of a return receipt to an http layer struct with json tags*/
func receiptToResponse(receipt library.ReturnReceipt) ReturnResponse {
	response := ReturnResponse{
		Transaction: transactionToResponse(receipt.Transaction),
	}
	if receipt.Fine != nil {
		fine := fineToResponse(*receipt.Fine)
		response.Fine = &fine
	}
	return response
}
