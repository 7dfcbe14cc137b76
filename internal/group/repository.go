package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles group data persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group and its creator as the first member, in one transaction.
func (r *Repository) Create(ctx context.Context, name string, creator *AddMemberRequest) (*Group, error) {
	group := &Group{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`INSERT INTO groups (id, name, created_at) VALUES (?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, query, group.ID, group.Name, group.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	query = tx.Rebind(`INSERT INTO group_members (group_id, user_id, nickname, joined_at) VALUES (?, ?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, query, group.ID, creator.UserID, creator.Nickname, group.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to add creator: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group: %w", err)
	}
	return group, nil
}

// GetByID retrieves a group by its ID. It returns nil when the group does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := r.db.Rebind(`SELECT id, name, created_at FROM groups WHERE id = ?`)

	group := &Group{}
	if err := r.db.GetContext(ctx, group, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// AddMember adds a user to a group
func (r *Repository) AddMember(ctx context.Context, groupID string, req *AddMemberRequest) (*GroupMember, error) {
	member := &GroupMember{
		GroupID:  groupID,
		UserID:   req.UserID,
		Nickname: req.Nickname,
		JoinedAt: time.Now().UTC(),
	}

	query := r.db.Rebind(`
		INSERT INTO group_members (group_id, user_id, nickname, joined_at)
		VALUES (?, ?, ?, ?)
	`)
	if _, err := r.db.ExecContext(ctx, query, member.GroupID, member.UserID, member.Nickname, member.JoinedAt); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return member, nil
}

// GetMembers retrieves the roster of a group, oldest members first.
func (r *Repository) GetMembers(ctx context.Context, groupID string) ([]*GroupMember, error) {
	query := r.db.Rebind(`
		SELECT group_id, user_id, nickname, joined_at
		FROM group_members
		WHERE group_id = ?
		ORDER BY joined_at, nickname
	`)

	var members []*GroupMember
	if err := r.db.SelectContext(ctx, &members, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	return members, nil
}

// GetMember retrieves a specific member from a group. It returns nil when absent.
func (r *Repository) GetMember(ctx context.Context, groupID, userID string) (*GroupMember, error) {
	query := r.db.Rebind(`
		SELECT group_id, user_id, nickname, joined_at
		FROM group_members
		WHERE group_id = ? AND user_id = ?
	`)

	member := &GroupMember{}
	if err := r.db.GetContext(ctx, member, query, groupID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}
