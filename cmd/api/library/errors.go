package library

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrResponseBookEntryBlankFields = ErrResponse{100, "all the fields - isbn, title, author, category and total_copies - must be filled correctly."}
var ErrResponseBookNotFound = ErrResponse{101, "book not found"}
var ErrResponseEntryInvalidJSON = ErrResponse{102, "invalid json request."}
var ErrResponseIdInvalidFormat = ErrResponse{103, "the endpoint is not a valid format ID. Must be a uuid."}
var ErrResponseMemberEntryBlankFields = ErrResponse{104, "all the fields - name and email - must be filled correctly."}
var ErrResponseMemberNotFound = ErrResponse{105, "member not found"}
var ErrResponseTransactionNotFound = ErrResponse{106, "transaction not found"}
var ErrResponseFineNotFound = ErrResponse{107, "fine not found"}
var ErrResponseBookUnavailable = ErrResponse{108, "book unavailable"}
var ErrResponseRequestTimeout = ErrResponse{109, "context deadline exceeded"}
var ErrResponseMemberSuspended = ErrResponse{110, "member suspended"}
var ErrResponseBorrowingLimit = ErrResponse{111, "borrowing limit reached"}
var ErrResponseUnpaidFines = ErrResponse{112, "unpaid fines outstanding"}
var ErrResponseAlreadyReturned = ErrResponse{113, "transaction already returned"}
var ErrResponseAlreadyPaid = ErrResponse{114, "fine already paid"}
var ErrResponseBookReferenced = ErrResponse{115, "book is referenced by borrow transactions"}
var ErrResponseMemberReferenced = ErrResponse{116, "member is referenced by borrow transactions"}
var ErrResponseISBNConflict = ErrResponse{117, "there is already a book with this isbn on database."}
var ErrResponseEmailConflict = ErrResponse{118, "there is already a member with this email on database."}
var ErrResponseInsufficientCopies = ErrResponse{119, "total_copies cannot drop below the number of copies out on loan."}
var ErrResponseBorrowEntryBlankFields = ErrResponse{120, "all the fields - book_id and member_id - must be filled correctly."}
var ErrResponseFromRepository = ErrResponse{121, "error from repository: "}
