package expense

import (
	"errors"
	"fmt"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrEmptyText       = errors.New("description text is required")
	ErrNotGroupMember  = errors.New("only group members can add expenses")
)

// Rejection is implemented by every error that turns a candidate down before
// anything is written. Code is a stable machine-readable identifier and
// Details carries the offending values.
type Rejection interface {
	error
	Code() string
	Details() map[string]any
}

// InvalidAmountError means the expense amount is not strictly positive
// once rounded to whole currency units.
type InvalidAmountError struct {
	Amount float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("expense amount must be a positive whole amount within range, got %v", e.Amount)
}
func (e *InvalidAmountError) Code() string { return "INVALID_AMOUNT" }
func (e *InvalidAmountError) Details() map[string]any {
	return map[string]any{"amount": e.Amount}
}

// MissingPayerError means no member was marked as the payer.
type MissingPayerError struct{}

func (e *MissingPayerError) Error() string           { return "no member is marked as the payer" }
func (e *MissingPayerError) Code() string            { return "MISSING_PAYER" }
func (e *MissingPayerError) Details() map[string]any { return nil }

// EmptyMembershipError means the candidate lists nobody.
type EmptyMembershipError struct{}

func (e *EmptyMembershipError) Error() string           { return "expense has no members" }
func (e *EmptyMembershipError) Code() string            { return "EMPTY_MEMBERSHIP" }
func (e *EmptyMembershipError) Details() map[string]any { return nil }

// SplitMismatchError means the member splits do not add up to one.
type SplitMismatchError struct {
	Sum float64
}

func (e *SplitMismatchError) Error() string {
	return fmt.Sprintf("member splits must add up to 1, got %v", e.Sum)
}
func (e *SplitMismatchError) Code() string { return "SPLIT_MISMATCH" }
func (e *SplitMismatchError) Details() map[string]any {
	return map[string]any{"sum": e.Sum}
}

// EmptyDescriptionError means the extracted description is blank.
type EmptyDescriptionError struct{}

func (e *EmptyDescriptionError) Error() string           { return "expense description is empty" }
func (e *EmptyDescriptionError) Code() string            { return "EMPTY_DESCRIPTION" }
func (e *EmptyDescriptionError) Details() map[string]any { return nil }

// MultiplePayersError means more than one member was marked as the payer.
type MultiplePayersError struct {
	Count int
}

func (e *MultiplePayersError) Error() string {
	return fmt.Sprintf("exactly one payer is allowed, got %d", e.Count)
}
func (e *MultiplePayersError) Code() string { return "MULTIPLE_PAYERS" }
func (e *MultiplePayersError) Details() map[string]any {
	return map[string]any{"count": e.Count}
}

// SplitOutOfRangeError means a member's split is outside [0, 1].
type SplitOutOfRangeError struct {
	Name  string
	Split float64
}

func (e *SplitOutOfRangeError) Error() string {
	return fmt.Sprintf("split for %q must be between 0 and 1, got %v", e.Name, e.Split)
}
func (e *SplitOutOfRangeError) Code() string { return "SPLIT_OUT_OF_RANGE" }
func (e *SplitOutOfRangeError) Details() map[string]any {
	return map[string]any{"name": e.Name, "split": e.Split}
}

// CurrentUserNotPresentError means the text did not include its author.
type CurrentUserNotPresentError struct{}

func (e *CurrentUserNotPresentError) Error() string {
	return "the person describing the expense is not one of its members"
}
func (e *CurrentUserNotPresentError) Code() string            { return "CURRENT_USER_NOT_PRESENT" }
func (e *CurrentUserNotPresentError) Details() map[string]any { return nil }

// MemberNotFoundError names a member that matched nobody in the roster
// confidently. Closest is the best candidate that was rejected, if any.
type MemberNotFoundError struct {
	Name    string
	Closest string
	Score   float64
}

func (e *MemberNotFoundError) Error() string {
	if e.Closest == "" {
		return fmt.Sprintf("no group member matches %q", e.Name)
	}
	return fmt.Sprintf("no group member matches %q (closest: %q)", e.Name, e.Closest)
}
func (e *MemberNotFoundError) Code() string { return "MEMBER_NOT_FOUND" }
func (e *MemberNotFoundError) Details() map[string]any {
	d := map[string]any{"name": e.Name}
	if e.Closest != "" {
		d["closest"] = e.Closest
		d["score"] = e.Score
	}
	return d
}

// DuplicateParticipantError means two names resolved to the same group member.
type DuplicateParticipantError struct {
	Name  string
	Other string
}

func (e *DuplicateParticipantError) Error() string {
	return fmt.Sprintf("%q and %q refer to the same group member", e.Other, e.Name)
}
func (e *DuplicateParticipantError) Code() string { return "DUPLICATE_PARTICIPANT" }
func (e *DuplicateParticipantError) Details() map[string]any {
	return map[string]any{"name": e.Name, "other": e.Other}
}

// PersistenceError means the expense could not be written. Nothing from the
// failed attempt is left behind.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// errRowCount reports a statement that touched an unexpected number of rows.
func errRowCount(want, got int64) error {
	return fmt.Errorf("expected %d rows affected, got %d", want, got)
}
