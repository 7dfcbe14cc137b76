package group

import "time"

// Group represents a group in the system
type Group struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GroupMember is a user's membership in a group. The nickname is the name
// other members use for them when describing expenses.
type GroupMember struct {
	GroupID  string    `db:"group_id" json:"group_id"`
	UserID   string    `db:"user_id" json:"user_id"`
	Nickname string    `db:"nickname" json:"nickname"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}
