package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema is applied on every startup. It only uses types and constraints that
// both PostgreSQL and SQLite accept.
// Groups must be created before expenses because of the foreign key.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS groups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS group_members (
		group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL,
		nickname TEXT NOT NULL,
		joined_at TIMESTAMP NOT NULL,
		PRIMARY KEY (group_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		payer_id TEXT NOT NULL,
		amount BIGINT NOT NULL CHECK (amount > 0),
		date TIMESTAMP NOT NULL,
		description TEXT NOT NULL CHECK (description <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		expense_id TEXT NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
		group_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('payer', 'participant')),
		split DOUBLE PRECISION NOT NULL CHECK (split >= 0 AND split <= 1),
		PRIMARY KEY (expense_id, group_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_group_members_group_id ON group_members(group_id)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_group_id ON expenses(group_id)`,
	`CREATE INDEX IF NOT EXISTS idx_participants_expense_id ON participants(expense_id)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
