package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/group"
)

// Common errors
var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrNotGroupMember      = errors.New("user is not a member of the group")
	ErrDescriptionRequired = errors.New("description is required")
)

// Service handles expense business logic
type Service struct {
	repo         *Repository
	groupRepo    *group.Repository
	splitFactory *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, groupRepo *group.Repository, splitFactory *split.Factory) *Service {
	return &Service{
		repo:         repo,
		groupRepo:    groupRepo,
		splitFactory: splitFactory,
	}
}

// CreateExpense records an expense and its splits. The payer and every
// participant must belong to the group; the expense and its splits are
// stored atomically.
func (s *Service) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*ExpenseWithSplits, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	g, err := s.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	inputs := make([]split.SplitInput, len(req.Participants))
	for i, p := range req.Participants {
		if p == nil {
			return nil, fmt.Errorf("%w: participant %d is empty", split.ErrInvalidSplit, i)
		}
		inputs[i] = p.ToSplitInput()
	}

	outputs, err := strategy.Calculate(req.Amount, inputs)
	if err != nil {
		return nil, err
	}

	if err := s.requireMembers(ctx, g.ID, req.PayerID, outputs); err != nil {
		return nil, err
	}

	expense := &Expense{
		GroupID:     g.ID,
		PayerID:     req.PayerID,
		Description: description,
		Amount:      req.Amount,
		SplitType:   strategy.Type(),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	splits := make([]*Split, len(outputs))
	for i, o := range outputs {
		splits[i] = &Split{
			UserID:     o.UserID,
			Amount:     o.AmountOwed,
			Percentage: o.Percentage,
		}
	}

	if err := s.repo.CreateWithSplits(ctx, expense, splits); err != nil {
		return nil, err
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"payer_id", expense.PayerID,
		"split_type", expense.SplitType,
		"splits", len(splits),
	)

	return &ExpenseWithSplits{
		Expense: expense,
		Splits:  splits,
	}, nil
}

// requireMembers checks the payer and every split user against the group
func (s *Service) requireMembers(ctx context.Context, groupID, payerID int64, outputs []split.SplitOutput) error {
	userIDs := make([]int64, 0, len(outputs)+1)
	userIDs = append(userIDs, payerID)
	for _, o := range outputs {
		userIDs = append(userIDs, o.UserID)
	}

	for _, userID := range userIDs {
		ok, err := s.groupRepo.IsMember(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: user %d, group %d", ErrNotGroupMember, userID, groupID)
		}
	}
	return nil
}

// GetExpenseByID retrieves an expense with its splits
func (s *Service) GetExpenseByID(ctx context.Context, id int64) (*ExpenseWithSplits, error) {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	splits, err := s.repo.GetSplitsByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{
		Expense: expense,
		Splits:  splits,
	}, nil
}

// ListExpensesByGroupID retrieves expenses for a group
func (s *Service) ListExpensesByGroupID(ctx context.Context, groupID int64, page, perPage int) ([]*Expense, int, error) {
	g, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, 0, err
	}
	if g == nil {
		return nil, 0, ErrGroupNotFound
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListExpensesByGroupID(ctx, groupID, perPage, offset)
}

// ListRecent retrieves the latest expenses across every group
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Expense, error) {
	return s.repo.ListRecent(ctx, limit)
}
