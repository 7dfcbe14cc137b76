package expense

import (
	"time"

	"github.com/fkhayef/quicksplit/internal/expense/split"
)

// CreateFromDescriptionRequest is the free-text expense submission
type CreateFromDescriptionRequest struct {
	Description string `json:"description" example:"Split coffee with Jane Doe, $18"`
}

// CreateFromDescriptionResponse carries the id of the created expense
type CreateFromDescriptionResponse struct {
	ExpenseID string `json:"expense_id"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID           string                 `json:"id"`
	GroupID      string                 `json:"group_id"`
	PayerID      string                 `json:"payer_id"`
	Amount       int64                  `json:"amount"`
	Date         string                 `json:"date"`
	Description  string                 `json:"description"`
	Participants []*ParticipantResponse `json:"participants,omitempty"`
}

// ParticipantResponse is a participant with the amount they owe the payer
type ParticipantResponse struct {
	UserID string  `json:"user_id"`
	Role   string  `json:"role"`
	Split  float64 `json:"split"`
	Owed   float64 `json:"owed"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		Amount:      e.Amount,
		Date:        e.Date.UTC().Format(time.RFC3339),
		Description: e.Description,
	}
}

// ToResponse converts an expense and its participants, working out what
// each participant owes the payer.
func (ew *ExpenseWithParticipants) ToResponse() *ExpenseResponse {
	resp := ew.Expense.ToResponse()

	shares := make([]split.Share, len(ew.Participants))
	for i, p := range ew.Participants {
		shares[i] = split.Share{UserID: p.UserID, Fraction: p.Split}
	}
	owed := make(map[string]float64, len(shares))
	for _, d := range split.Owed(ew.Expense.Amount, ew.Expense.PayerID, shares) {
		owed[d.UserID] = d.Amount.InexactFloat64()
	}

	resp.Participants = make([]*ParticipantResponse, len(ew.Participants))
	for i, p := range ew.Participants {
		resp.Participants[i] = &ParticipantResponse{
			UserID: p.UserID,
			Role:   string(p.Role),
			Split:  p.Split,
			Owed:   owed[p.UserID],
		}
	}
	return resp
}
