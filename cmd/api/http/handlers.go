package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/library"
)

type LibraryHandler struct {
	libraryService library.ServiceAPI
	requestTimeout time.Duration
}

func NewLibraryHandler(libraryService library.ServiceAPI, requestTimeout time.Duration) *LibraryHandler {
	return &LibraryHandler{
		libraryService: libraryService,
		requestTimeout: requestTimeout,
	}
}

/* Addresses a call to "/books" according to the requested action.  */
func (h *LibraryHandler) books(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	method := r.Method
	switch method {
	case http.MethodGet:
		h.listBooks(w, r)
		return
	case http.MethodPost:
		h.createBook(w, r)
		return
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

/* Addresses a call to "/books/(expected id here)" according to the requested action.  */
func (h *LibraryHandler) bookById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	method := r.Method
	switch method {
	case http.MethodGet:
		h.getBookById(w, r)
		return
	case http.MethodPut:
		h.updateBook(w, r)
		return
	case http.MethodDelete:
		h.deleteBook(w, r)
		return
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

/* Lists the books whose status is "available". */
func (h *LibraryHandler) availableBooks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	availableList, err := h.libraryService.ListAvailableBooks(r.Context())
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, booksToResponse(availableList))
}

type BookEntry struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	TotalCopies *int   `json:"total_copies"`
}

/* Validates the entry, then stores the entry as a new book. */
func (h *LibraryHandler) createBook(w http.ResponseWriter, r *http.Request) {
	var bookEntry BookEntry
	err := json.NewDecoder(r.Body).Decode(&bookEntry) //Read the Json body and save the entry to bookEntry
	if err != nil {
		log.Println(err)
		errR := library.ErrResponse{
			Code:    library.ErrResponseEntryInvalidJSON.Code,
			Message: library.ErrResponseEntryInvalidJSON.Message + err.Error(),
		}
		responseJSON(w, http.StatusBadRequest, errR)
		return
	}

	err = library.FilledBookFields(bookEntry.ISBN, bookEntry.Title, bookEntry.Author, bookEntry.Category, bookEntry.TotalCopies)
	if err != nil {
		responseJSON(w, http.StatusBadRequest, err)
		return
	}

	storedBook, err := h.libraryService.CreateBook(r.Context(), library.CreateBookRequest{
		ISBN:        bookEntry.ISBN,
		Title:       bookEntry.Title,
		Author:      bookEntry.Author,
		Category:    bookEntry.Category,
		TotalCopies: bookEntry.TotalCopies,
	})
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusCreated, bookToResponse(storedBook))
}

/* Returns the book with that specific ID. */
func (h *LibraryHandler) getBookById(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r, "/books/")
	if err != nil {
		return
	}

	returnedBook, err := h.libraryService.GetBook(r.Context(), id)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, bookToResponse(returnedBook))
}

/* Returns a list of the stored books. */
func (h *LibraryHandler) listBooks(w http.ResponseWriter, r *http.Request) {
	booksList, err := h.libraryService.ListBooks(r.Context())
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, booksToResponse(booksList))
}

/* Validates the entry, then updates the asked book. */
func (h *LibraryHandler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r, "/books/")
	if err != nil {
		return
	}

	var bookEntry BookEntry
	err = json.NewDecoder(r.Body).Decode(&bookEntry)
	if err != nil {
		log.Println(err)
		errR := library.ErrResponse{
			Code:    library.ErrResponseEntryInvalidJSON.Code,
			Message: library.ErrResponseEntryInvalidJSON.Message + err.Error(),
		}
		responseJSON(w, http.StatusBadRequest, errR)
		return
	}

	err = library.FilledBookFields(bookEntry.ISBN, bookEntry.Title, bookEntry.Author, bookEntry.Category, bookEntry.TotalCopies)
	if err != nil {
		responseJSON(w, http.StatusBadRequest, err)
		return
	}

	updatedBook, err := h.libraryService.UpdateBook(r.Context(), library.UpdateBookRequest{
		ID:          id,
		ISBN:        bookEntry.ISBN,
		Title:       bookEntry.Title,
		Author:      bookEntry.Author,
		Category:    bookEntry.Category,
		TotalCopies: bookEntry.TotalCopies,
	})
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, bookToResponse(updatedBook))
}

/* Removes the book from the catalog, unless loans reference it. */
func (h *LibraryHandler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r, "/books/")
	if err != nil {
		return
	}

	err = h.libraryService.DeleteBook(r.Context(), id)
	if err != nil {
		handleError(err, w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/* Addresses a call to "/members" according to the requested action.  */
func (h *LibraryHandler) members(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	method := r.Method
	switch method {
	case http.MethodGet:
		h.listMembers(w, r)
		return
	case http.MethodPost:
		h.createMember(w, r)
		return
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

/* Addresses a call to "/members/(expected id here)" and
"/members/(expected id here)/borrowed" according to the requested action.  */
func (h *LibraryHandler) memberById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()
	r = r.WithContext(ctx)

	if strings.HasSuffix(r.URL.Path, "/borrowed") {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.listMemberBorrows(w, r)
		return
	}

	method := r.Method
	switch method {
	case http.MethodGet:
		h.getMemberById(w, r)
		return
	case http.MethodPut:
		h.updateMember(w, r)
		return
	case http.MethodDelete:
		h.deleteMember(w, r)
		return
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

type MemberEntry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

/* Validates the entry, then registers the entry as a new member. */
func (h *LibraryHandler) createMember(w http.ResponseWriter, r *http.Request) {
	var memberEntry MemberEntry
	err := json.NewDecoder(r.Body).Decode(&memberEntry)
	if err != nil {
		log.Println(err)
		errR := library.ErrResponse{
			Code:    library.ErrResponseEntryInvalidJSON.Code,
			Message: library.ErrResponseEntryInvalidJSON.Message + err.Error(),
		}
		responseJSON(w, http.StatusBadRequest, errR)
		return
	}

	err = library.FilledMemberFields(memberEntry.Name, memberEntry.Email)
	if err != nil {
		responseJSON(w, http.StatusBadRequest, err)
		return
	}

	storedMember, err := h.libraryService.CreateMember(r.Context(), library.CreateMemberRequest{
		Name:  memberEntry.Name,
		Email: memberEntry.Email,
	})
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusCreated, memberToResponse(storedMember))
}

/* Returns the member with that specific ID. */
func (h *LibraryHandler) getMemberById(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r, "/members/")
	if err != nil {
		return
	}

	returnedMember, err := h.libraryService.GetMember(r.Context(), id)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, memberToResponse(returnedMember))
}

/* Returns a list of the registered members. */
func (h *LibraryHandler) listMembers(w http.ResponseWriter, r *http.Request) {
	membersList, err := h.libraryService.ListMembers(r.Context())
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, membersToResponse(membersList))
}

/* Validates the entry, then updates the asked member. */
func (h *LibraryHandler) updateMember(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r, "/members/")
	if err != nil {
		return
	}

	var memberEntry MemberEntry
	err = json.NewDecoder(r.Body).Decode(&memberEntry)
	if err != nil {
		log.Println(err)
		errR := library.ErrResponse{
			Code:    library.ErrResponseEntryInvalidJSON.Code,
			Message: library.ErrResponseEntryInvalidJSON.Message + err.Error(),
		}
		responseJSON(w, http.StatusBadRequest, errR)
		return
	}

	err = library.FilledMemberFields(memberEntry.Name, memberEntry.Email)
	if err != nil {
		responseJSON(w, http.StatusBadRequest, err)
		return
	}

	updatedMember, err := h.libraryService.UpdateMember(r.Context(), library.UpdateMemberRequest{
		ID:    id,
		Name:  memberEntry.Name,
		Email: memberEntry.Email,
	})
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, memberToResponse(updatedMember))
}

/* Removes the member from the registry, unless loans reference them. */
func (h *LibraryHandler) deleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := isolateId(w, r, "/members/")
	if err != nil {
		return
	}

	err = h.libraryService.DeleteMember(r.Context(), id)
	if err != nil {
		handleError(err, w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/* Returns the member's currently borrowed books. */
func (h *LibraryHandler) listMemberBorrows(w http.ResponseWriter, r *http.Request) {
	justId, _ := strings.CutPrefix(r.URL.Path, "/members/")
	justId, _ = strings.CutSuffix(justId, "/borrowed")
	id, err := uuid.Parse(justId)
	if err != nil {
		log.Println(err)
		responseJSON(w, http.StatusBadRequest, library.ErrResponseIdInvalidFormat)
		return
	}

	borrows, err := h.libraryService.ListMemberBorrows(r.Context(), id)
	if err != nil {
		handleError(err, w, r)
		return
	}

	responseJSON(w, http.StatusOK, transactionsToResponse(borrows))
}

/* Isolates the ID from the URL. */
func isolateId(w http.ResponseWriter, r *http.Request, prefix string) (id uuid.UUID, err error) {
	justId, _ := strings.CutPrefix(r.URL.Path, prefix)
	id, err = uuid.Parse(justId)
	if err != nil {
		log.Println(err)
		responseJSON(w, http.StatusBadRequest, library.ErrResponseIdInvalidFormat)
		return id, err
	}
	return id, nil
}

/* Maps the known service errors to their http status codes. */
func handleError(err error, w http.ResponseWriter, r *http.Request) {
	log.Println(err)

	var errResponse library.ErrResponse
	if !errors.As(err, &errResponse) {
		if errors.Is(err, context.DeadlineExceeded) {
			responseJSON(w, http.StatusRequestTimeout, library.ErrResponseRequestTimeout)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch errResponse {
	case library.ErrResponseBookNotFound,
		library.ErrResponseMemberNotFound,
		library.ErrResponseTransactionNotFound,
		library.ErrResponseFineNotFound:
		responseJSON(w, http.StatusNotFound, errResponse)
	case library.ErrResponseBookUnavailable,
		library.ErrResponseMemberSuspended,
		library.ErrResponseBorrowingLimit,
		library.ErrResponseUnpaidFines,
		library.ErrResponseAlreadyReturned,
		library.ErrResponseAlreadyPaid,
		library.ErrResponseBookReferenced,
		library.ErrResponseMemberReferenced,
		library.ErrResponseISBNConflict,
		library.ErrResponseEmailConflict,
		library.ErrResponseInsufficientCopies:
		responseJSON(w, http.StatusConflict, errResponse)
	case library.ErrResponseRequestTimeout:
		responseJSON(w, http.StatusRequestTimeout, errResponse)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Category        string    `json:"category"`
	Status          string    `json:"status"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
}

/*Copy the fields of a book object to an http layer struct with json tags*/
func bookToResponse(b library.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		ISBN:            b.ISBN,
		Title:           b.Title,
		Author:          b.Author,
		Category:        b.Category,
		Status:          string(b.Status),
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

func booksToResponse(books []library.Book) []BookResponse {
	results := []BookResponse{}
	for _, b := range books {
		results = append(results, bookToResponse(b))
	}
	return results
}

type MemberResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	MembershipNumber string    `json:"membership_number"`
	Status           string    `json:"status"`
}

/*Copy the fields of a member object to an http layer struct with json tags*/
func memberToResponse(m library.Member) MemberResponse {
	return MemberResponse{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		MembershipNumber: m.MembershipNumber,
		Status:           string(m.Status),
	}
}

func membersToResponse(members []library.Member) []MemberResponse {
	results := []MemberResponse{}
	for _, m := range members {
		results = append(results, memberToResponse(m))
	}
	return results
}

/*Writes a JSON response into a http.ResponseWriter. */
func responseJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Println(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}
