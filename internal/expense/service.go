package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fkhayef/quicksplit/internal/draft"
	"github.com/fkhayef/quicksplit/internal/group"
	"github.com/fkhayef/quicksplit/internal/metrics"
)

// Roster returns the members of a group. An empty group is a
// *group.NoMembersFoundError.
type Roster interface {
	GetMembers(ctx context.Context, groupID string) ([]*group.GroupMember, error)
}

// Service handles expense business logic
type Service struct {
	repo         *Repository
	roster       Roster
	generator    draft.Generator
	draftTimeout time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, roster Roster, generator draft.Generator, draftTimeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		roster:       roster,
		generator:    generator,
		draftTimeout: draftTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateExpenseFromDescription turns free text written by userID into an
// expense of groupID and returns the new expense id.
//
// Stages run strictly in order and the first failure is returned as is:
// roster lookup, both draft tiers (concurrently), reconciliation, validation,
// participant resolution, then a single transactional write.
func (s *Service) CreateExpenseFromDescription(ctx context.Context, groupID, description, userID string) (expenseID string, err error) {
	start := time.Now()
	logger := s.logger.With("group_id", groupID, "user_id", userID)

	defer func() {
		kind := outcome(err)
		metrics.PipelineRuns.WithLabelValues(kind).Inc()
		if err != nil {
			logger.Warn("Expense pipeline failed", "kind", kind, "error", err)
			return
		}
		logger.Info("Expense created from description",
			"expense_id", expenseID, "duration_ms", time.Since(start).Milliseconds())
	}()

	text := strings.TrimSpace(description)
	if text == "" {
		return "", ErrEmptyText
	}

	roster, err := s.roster.GetMembers(ctx, groupID)
	if err != nil {
		return "", err
	}
	if !slices.ContainsFunc(roster, func(m *group.GroupMember) bool { return m.UserID == userID }) {
		return "", ErrNotGroupMember
	}

	fast, quality, err := s.generateDrafts(ctx, text)
	if err != nil {
		return "", err
	}

	candidate := Reconcile(fast, quality)
	if err := Validate(candidate); err != nil {
		return "", err
	}

	participants, err := Materialize(candidate, userID, roster)
	if err != nil {
		return "", err
	}

	expense := &Expense{
		GroupID:     groupID,
		PayerID:     payerOf(participants),
		Amount:      wholeUnits(candidate.Expense.Amount),
		Date:        s.now().UTC(),
		Description: strings.TrimSpace(candidate.Expense.Description),
	}
	return s.repo.Create(ctx, expense, participants)
}

// generateDrafts runs both tiers concurrently on the same text and waits for
// both. If either fails the other is cancelled and its result discarded.
func (s *Service) generateDrafts(ctx context.Context, text string) (fast, quality *draft.Draft, err error) {
	if s.draftTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.draftTimeout)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.generate(gctx, text, draft.TierFast)
		fast = d
		return err
	})
	g.Go(func() error {
		d, err := s.generate(gctx, text, draft.TierQuality)
		quality = d
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fast, quality, nil
}

// generate calls one tier and makes sure any failure is a *draft.GenerationError.
func (s *Service) generate(ctx context.Context, text string, tier draft.Tier) (*draft.Draft, error) {
	d, err := s.generator.Generate(ctx, text, tier)
	if err != nil {
		var genErr *draft.GenerationError
		if errors.As(err, &genErr) {
			return nil, err
		}
		return nil, &draft.GenerationError{Tier: tier, Err: err}
	}
	if d == nil {
		return nil, &draft.GenerationError{Tier: tier, Err: fmt.Errorf("no draft returned")}
	}
	return d, nil
}

func payerOf(participants []ResolvedParticipant) string {
	for _, p := range participants {
		if p.Role == draft.RolePayer {
			return p.UserID
		}
	}
	return ""
}

// outcome labels a pipeline result for metrics and logs.
func outcome(err error) string {
	var (
		rejection Rejection
		genErr    *draft.GenerationError
		noMembers *group.NoMembersFoundError
		persist   *PersistenceError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &genErr):
		return "draft_generation"
	case errors.As(err, &noMembers):
		return "no_members_found"
	case errors.As(err, &persist):
		return "persistence"
	case errors.As(err, &rejection):
		return strings.ToLower(rejection.Code())
	case errors.Is(err, ErrEmptyText):
		return "empty_text"
	case errors.Is(err, ErrNotGroupMember):
		return "not_group_member"
	default:
		return "error"
	}
}

// GetExpenseByID retrieves an expense with its participants
func (s *Service) GetExpenseByID(ctx context.Context, id string) (*ExpenseWithParticipants, error) {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	participants, err := s.repo.GetParticipantsByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithParticipants{
		Expense:      expense,
		Participants: participants,
	}, nil
}

// ListExpensesByGroup returns a page of a group's expenses
func (s *Service) ListExpensesByGroup(ctx context.Context, groupID string, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListExpensesByGroupID(ctx, groupID, perPage, offset)
}
