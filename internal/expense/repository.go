package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles expense and participant persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create writes the expense and one participant row per resolved participant
// in a single transaction and returns the new expense id. Any failure,
// including an unexpected row count, rolls the whole write back and is
// reported as a *PersistenceError.
func (r *Repository) Create(ctx context.Context, expense *Expense, participants []ResolvedParticipant) (string, error) {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", &PersistenceError{Op: "begin transaction", Err: err}
	}
	defer tx.Rollback()

	if err := insertExpense(ctx, tx, expense); err != nil {
		return "", &PersistenceError{Op: "insert expense", Err: err}
	}
	if err := insertParticipants(ctx, tx, expense, participants); err != nil {
		return "", &PersistenceError{Op: "insert participants", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return "", &PersistenceError{Op: "commit expense", Err: err}
	}
	return expense.ID, nil
}

func insertExpense(ctx context.Context, tx *sqlx.Tx, e *Expense) error {
	query := tx.Rebind(`
		INSERT INTO expenses (id, group_id, payer_id, amount, date, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	result, err := tx.ExecContext(ctx, query, e.ID, e.GroupID, e.PayerID, e.Amount, e.Date, e.Description)
	if err != nil {
		return err
	}
	return checkRows(result, 1)
}

// insertParticipants writes all rows with one multi-row INSERT.
func insertParticipants(ctx context.Context, tx *sqlx.Tx, e *Expense, participants []ResolvedParticipant) error {
	if len(participants) == 0 {
		return errRowCount(1, 0)
	}

	values := make([]string, len(participants))
	args := make([]any, 0, len(participants)*5)
	for i, p := range participants {
		values[i] = "(?, ?, ?, ?, ?)"
		args = append(args, e.ID, e.GroupID, p.UserID, string(p.Role), p.Split)
	}

	query := tx.Rebind(`INSERT INTO participants (expense_id, group_id, user_id, role, split) VALUES ` +
		strings.Join(values, ", "))

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return checkRows(result, int64(len(participants)))
}

func checkRows(result sql.Result, want int64) error {
	got, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if got != want {
		return errRowCount(want, got)
	}
	return nil
}

// GetExpenseByID retrieves an expense by its ID. It returns nil when absent.
func (r *Repository) GetExpenseByID(ctx context.Context, id string) (*Expense, error) {
	query := r.db.Rebind(`
		SELECT id, group_id, payer_id, amount, date, description
		FROM expenses
		WHERE id = ?
	`)

	expense := &Expense{}
	if err := r.db.GetContext(ctx, expense, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// GetParticipantsByExpenseID retrieves all participants of an expense, payer first.
func (r *Repository) GetParticipantsByExpenseID(ctx context.Context, expenseID string) ([]*Participant, error) {
	query := r.db.Rebind(`
		SELECT expense_id, group_id, user_id, role, split
		FROM participants
		WHERE expense_id = ?
		ORDER BY CASE role WHEN 'payer' THEN 0 ELSE 1 END, user_id
	`)

	var participants []*Participant
	if err := r.db.SelectContext(ctx, &participants, query, expenseID); err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	return participants, nil
}

// ListExpensesByGroupID retrieves a page of a group's expenses, newest first
func (r *Repository) ListExpensesByGroupID(ctx context.Context, groupID string, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := r.db.Rebind(`SELECT COUNT(*) FROM expenses WHERE group_id = ?`)
	if err := r.db.GetContext(ctx, &total, countQuery, groupID); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := r.db.Rebind(`
		SELECT id, group_id, payer_id, amount, date, description
		FROM expenses
		WHERE group_id = ?
		ORDER BY date DESC, id
		LIMIT ? OFFSET ?
	`)

	var expenses []*Expense
	if err := r.db.SelectContext(ctx, &expenses, query, groupID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, total, nil
}
