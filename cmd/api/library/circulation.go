package library

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

/* Lends one copy of a book to a member. The member's suspension is
time-derived, so it is refreshed first, in a transaction of its own: a
member flipped to suspended stays suspended even though the borrow that
uncovered it is then rejected. The borrow itself runs inside a single
repository transaction; the book and member rows are locked first, so
two concurrent borrows of the last copy cannot both pass the
availability check. */
func (s *Service) BorrowBook(ctx context.Context, req BorrowRequest) (Transaction, error) {
	member, suspendedNow, err := s.refreshMemberStatus(ctx, req.MemberID)
	if err != nil {
		return Transaction{}, err
	}
	if suspendedNow {
		s.notifyMemberSuspended(member.MembershipNumber)
	}

	txRepo, tx, err := s.repo.BeginTx(ctx, nil)
	if err != nil {
		return Transaction{}, fmt.Errorf("borrowing book: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	bk, err := txRepo.GetBookForUpdate(ctx, req.BookID)
	if err != nil {
		return Transaction{}, err
	}

	member, err = txRepo.GetMemberForUpdate(ctx, req.MemberID)
	if err != nil {
		return Transaction{}, err
	}

	now := time.Now().UTC().Round(time.Millisecond)

	if bk.Status != BookStatusAvailable || bk.AvailableCopies == 0 {
		return Transaction{}, ErrResponseBookUnavailable
	}
	if member.Status != MemberStatusActive {
		return Transaction{}, ErrResponseMemberSuspended
	}

	activeLoans, err := txRepo.CountActiveTransactionsByMember(ctx, member.ID)
	if err != nil {
		return Transaction{}, err
	}
	if activeLoans >= s.policy.MaxActiveLoans {
		return Transaction{}, ErrResponseBorrowingLimit
	}

	unpaidFines, err := txRepo.CountUnpaidFinesByMember(ctx, member.ID)
	if err != nil {
		return Transaction{}, err
	}
	if unpaidFines > 0 {
		return Transaction{}, ErrResponseUnpaidFines
	}

	newTransaction := Transaction{
		ID:         uuid.New(),
		BookID:     bk.ID,
		MemberID:   member.ID,
		BorrowedAt: now,
		DueDate:    s.policy.DueDate(now),
		Status:     TransactionStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	newTransaction, err = txRepo.CreateTransaction(ctx, newTransaction)
	if err != nil {
		return Transaction{}, err
	}

	bk.AvailableCopies--
	if bk.AvailableCopies == 0 {
		bk.Status = BookStatusBorrowed
	}
	bk.UpdatedAt = now
	if _, err := txRepo.UpdateBook(ctx, bk); err != nil {
		return Transaction{}, err
	}

	if err := tx.Commit(); err != nil {
		return Transaction{}, fmt.Errorf("borrowing book: %w", err)
	}
	return newTransaction, nil
}

/* Closes a loan: stamps the return, restores the copy to the shelf,
issues a fine when the book came back late and re-evaluates the member's
suspension. All of it commits or none of it does. */
func (s *Service) ReturnBook(ctx context.Context, transactionID uuid.UUID) (ReturnReceipt, error) {
	txRepo, tx, err := s.repo.BeginTx(ctx, nil)
	if err != nil {
		return ReturnReceipt{}, fmt.Errorf("returning book: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	transaction, err := txRepo.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return ReturnReceipt{}, err
	}
	if transaction.ReturnedAt != nil {
		return ReturnReceipt{}, ErrResponseAlreadyReturned
	}

	bk, err := txRepo.GetBookForUpdate(ctx, transaction.BookID)
	if err != nil {
		return ReturnReceipt{}, err
	}
	member, err := txRepo.GetMemberForUpdate(ctx, transaction.MemberID)
	if err != nil {
		return ReturnReceipt{}, err
	}

	now := time.Now().UTC().Round(time.Millisecond)

	returnedAt := now
	transaction.ReturnedAt = &returnedAt
	transaction.Status = TransactionStatusReturned
	transaction.UpdatedAt = now
	transaction, err = txRepo.UpdateTransaction(ctx, transaction)
	if err != nil {
		return ReturnReceipt{}, err
	}

	bk.AvailableCopies++
	if bk.Status == BookStatusBorrowed { //A book under maintenance stays that way.
		bk.Status = BookStatusAvailable
	}
	bk.UpdatedAt = now
	if _, err := txRepo.UpdateBook(ctx, bk); err != nil {
		return ReturnReceipt{}, err
	}

	receipt := ReturnReceipt{Transaction: transaction}

	//The amount is computed from the return instant and fixed forever.
	if amount := s.policy.FineAmount(transaction.DueDate, now); amount > 0 {
		fine := Fine{
			ID:            uuid.New(),
			MemberID:      member.ID,
			TransactionID: transaction.ID,
			Amount:        amount,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		fine, err = txRepo.CreateFine(ctx, fine)
		if err != nil {
			return ReturnReceipt{}, err
		}
		receipt.Fine = &fine
	}

	member, suspendedNow, err := s.reevaluateMemberStatus(ctx, txRepo, member, now)
	if err != nil {
		return ReturnReceipt{}, err
	}

	if err := tx.Commit(); err != nil {
		return ReturnReceipt{}, fmt.Errorf("returning book: %w", err)
	}

	if receipt.Fine != nil {
		s.notifyFineIssued(member.MembershipNumber, receipt.Fine.Amount)
	}
	if suspendedNow {
		s.notifyMemberSuspended(member.MembershipNumber)
	}
	return receipt, nil
}

/* Settles a fine and re-evaluates the member, who may get their
borrowing rights back. */
func (s *Service) PayFine(ctx context.Context, fineID uuid.UUID) (Fine, error) {
	txRepo, tx, err := s.repo.BeginTx(ctx, nil)
	if err != nil {
		return Fine{}, fmt.Errorf("paying fine: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	fine, err := txRepo.GetFineByID(ctx, fineID)
	if err != nil {
		return Fine{}, err
	}
	if fine.Paid() {
		return Fine{}, ErrResponseAlreadyPaid
	}

	now := time.Now().UTC().Round(time.Millisecond)

	fine, err = txRepo.SetFinePaid(ctx, fine.ID, now)
	if err != nil {
		return Fine{}, err
	}

	member, err := txRepo.GetMemberForUpdate(ctx, fine.MemberID)
	if err != nil {
		return Fine{}, err
	}
	if _, _, err := s.reevaluateMemberStatus(ctx, txRepo, member, now); err != nil {
		return Fine{}, err
	}

	if err := tx.Commit(); err != nil {
		return Fine{}, fmt.Errorf("paying fine: %w", err)
	}
	return fine, nil
}

/* Re-evaluates one member in a transaction of its own, committing
whatever status flip comes out of it. */
func (s *Service) refreshMemberStatus(ctx context.Context, memberID uuid.UUID) (Member, bool, error) {
	txRepo, tx, err := s.repo.BeginTx(ctx, nil)
	if err != nil {
		return Member{}, false, fmt.Errorf("refreshing member status: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	member, err := txRepo.GetMemberForUpdate(ctx, memberID)
	if err != nil {
		return Member{}, false, err
	}

	now := time.Now().UTC().Round(time.Millisecond)
	member, suspendedNow, err := s.reevaluateMemberStatus(ctx, txRepo, member, now)
	if err != nil {
		return Member{}, false, err
	}

	if err := tx.Commit(); err != nil {
		return Member{}, false, fmt.Errorf("refreshing member status: %w", err)
	}
	return member, suspendedNow, nil
}

/* Recomputes the member's status from their open loans. A member holding
too many concurrently overdue loans is suspended; a suspended member with
the overdue count back under the threshold and no unpaid fines left is
reactivated. Returns whether this call flipped the member to suspended. */
func (s *Service) reevaluateMemberStatus(ctx context.Context, repo Repository, member Member, at time.Time) (Member, bool, error) {
	overdueCount, err := repo.CountOverdueTransactionsByMember(ctx, member.ID, at)
	if err != nil {
		return Member{}, false, err
	}

	switch {
	case member.Status == MemberStatusActive && overdueCount >= s.policy.SuspensionThreshold:
		member.Status = MemberStatusSuspended
		member.UpdatedAt = at
		member, err = repo.UpdateMember(ctx, member)
		if err != nil {
			return Member{}, false, err
		}
		return member, true, nil

	case member.Status == MemberStatusSuspended && overdueCount < s.policy.SuspensionThreshold:
		unpaidFines, err := repo.CountUnpaidFinesByMember(ctx, member.ID)
		if err != nil {
			return Member{}, false, err
		}
		if unpaidFines == 0 {
			member.Status = MemberStatusActive
			member.UpdatedAt = at
			member, err = repo.UpdateMember(ctx, member)
			if err != nil {
				return Member{}, false, err
			}
		}
	}

	return member, false, nil
}

func (s *Service) notifyFineIssued(membershipNumber string, amount float64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.notificationsTimeout)
	defer cancel()
	if err := s.ntfy.FineIssued(ctx, membershipNumber, amount); err != nil {
		log.Println(err)
	}
}

func (s *Service) notifyMemberSuspended(membershipNumber string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.notificationsTimeout)
	defer cancel()
	if err := s.ntfy.MemberSuspended(ctx, membershipNumber); err != nil {
		log.Println(err)
	}
}
