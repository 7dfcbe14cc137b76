package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrMemberAlreadyExists = errors.New("user is already a member of this group")
	ErrInvalidMember       = errors.New("user id and nickname are required")
	ErrInvalidName         = errors.New("group name is required")
)

// NoMembersFoundError is returned when a group's roster is empty.
type NoMembersFoundError struct {
	GroupID string
}

func (e *NoMembersFoundError) Error() string {
	return fmt.Sprintf("no members found for group %s", e.GroupID)
}

// Service handles group business logic
type Service struct {
	repo   *Repository
	logger *slog.Logger
}

// NewService creates a new group service
func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create creates a new group with the creator as its first member
func (s *Service) Create(ctx context.Context, creatorID string, req *CreateGroupRequest) (*Group, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidName
	}
	creator := &AddMemberRequest{UserID: creatorID, Nickname: strings.TrimSpace(req.Nickname)}
	if creator.Nickname == "" {
		return nil, ErrInvalidMember
	}

	group, err := s.repo.Create(ctx, strings.TrimSpace(req.Name), creator)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Group created", "group_id", group.ID, "creator_id", creatorID)
	return group, nil
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// AddMember adds a user to a group
func (s *Service) AddMember(ctx context.Context, groupID string, req *AddMemberRequest) (*GroupMember, error) {
	req.Nickname = strings.TrimSpace(req.Nickname)
	if req.UserID == "" || req.Nickname == "" {
		return nil, ErrInvalidMember
	}

	if _, err := s.GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetMember(ctx, groupID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberAlreadyExists
	}

	return s.repo.AddMember(ctx, groupID, req)
}

// GetMembers returns the group's roster. An empty roster is a
// *NoMembersFoundError: nothing can be split in a group with nobody in it.
func (s *Service) GetMembers(ctx context.Context, groupID string) ([]*GroupMember, error) {
	members, err := s.repo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, &NoMembersFoundError{GroupID: groupID}
	}
	return members, nil
}
