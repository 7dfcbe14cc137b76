package expense

import (
	"time"

	"github.com/fkhayef/quicksplit/internal/draft"
)

// Candidate is the reconciled draft the validator checks: expense fields
// from the fast tier, members from the quality tier.
type Candidate struct {
	Expense draft.ExpenseFields
	Members []draft.Member
}

// ResolvedParticipant is a candidate member bound to a concrete user id.
type ResolvedParticipant struct {
	Name   string
	UserID string
	Role   draft.Role
	Split  float64
}

// Expense represents a persisted expense. Amount is in whole currency units.
type Expense struct {
	ID          string    `db:"id" json:"id"`
	GroupID     string    `db:"group_id" json:"group_id"`
	PayerID     string    `db:"payer_id" json:"payer_id"`
	Amount      int64     `db:"amount" json:"amount"`
	Date        time.Time `db:"date" json:"date"`
	Description string    `db:"description" json:"description"`
}

// Participant is one member's share of an expense.
type Participant struct {
	ExpenseID string     `db:"expense_id" json:"expense_id"`
	GroupID   string     `db:"group_id" json:"group_id"`
	UserID    string     `db:"user_id" json:"user_id"`
	Role      draft.Role `db:"role" json:"role"`
	Split     float64    `db:"split" json:"split"`
}

// ExpenseWithParticipants combines an expense with its participant rows
type ExpenseWithParticipants struct {
	Expense      *Expense
	Participants []*Participant
}
