package group

import "time"

// CreateGroupRequest represents the request to create a new group.
// The creator joins the group under Nickname.
type CreateGroupRequest struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt string            `json:"created_at"`
	Members   []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents a member in a group response
type MemberResponse struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	JoinedAt string `json:"joined_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToResponse converts a GroupMember model to a MemberResponse DTO
func (m *GroupMember) ToResponse() *MemberResponse {
	return &MemberResponse{
		UserID:   m.UserID,
		Nickname: m.Nickname,
		JoinedAt: m.JoinedAt.UTC().Format(time.RFC3339),
	}
}
