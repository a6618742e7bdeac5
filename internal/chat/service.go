// Package chat assembles the ledger snapshot used as structured input for
// a conversational assistant. It never talks to a language model itself.
package chat

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fkhayef/splitledger/internal/balance"
	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/group"
	"github.com/fkhayef/splitledger/internal/user"
)

// GroupLister lists every group with members and expense totals
type GroupLister interface {
	ListDetails(ctx context.Context) ([]*group.Detail, error)
	GetByID(ctx context.Context, id int64) (*group.Group, error)
}

// ExpenseLister lists the most recent expenses across all groups
type ExpenseLister interface {
	ListRecent(ctx context.Context, limit int) ([]*expense.Expense, error)
}

// UserResolver resolves user IDs to users, omitting unknown IDs
type UserResolver interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*user.User, error)
}

// BalanceReader computes the balances involving a user
type BalanceReader interface {
	UserBalances(ctx context.Context, userID int64) ([]balance.UserGroupBalances, error)
}

// Service builds chat context snapshots. Every call recomputes from the store.
type Service struct {
	groups   GroupLister
	expenses ExpenseLister
	users    UserResolver
	balances BalanceReader
	recent   int
}

// NewService creates a new chat service returning up to recent expenses per snapshot
func NewService(groups GroupLister, expenses ExpenseLister, users UserResolver, balances BalanceReader, recent int) *Service {
	return &Service{
		groups:   groups,
		expenses: expenses,
		users:    users,
		balances: balances,
		recent:   recent,
	}
}

// Context returns the snapshot. User balances are filled only when userID
// is set and are an empty list otherwise.
func (s *Service) Context(ctx context.Context, userID *int64) (*Snapshot, error) {
	details, err := s.groups.ListDetails(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Groups:         make([]GroupSummary, 0, len(details)),
		RecentExpenses: []RecentExpense{},
		UserBalances:   []balance.UserGroupBalances{},
	}

	groupNames := make(map[int64]string, len(details))
	for _, d := range details {
		members := make([]string, len(d.Members))
		for i, m := range d.Members {
			members[i] = m.Name
		}
		groupNames[d.Group.ID] = d.Group.Name
		snapshot.Groups = append(snapshot.Groups, GroupSummary{
			ID:            d.Group.ID,
			Name:          d.Group.Name,
			Members:       members,
			TotalExpenses: d.TotalExpenses,
		})
	}

	recent, err := s.recentExpenses(ctx, groupNames)
	if err != nil {
		return nil, err
	}
	snapshot.RecentExpenses = recent

	if userID != nil {
		views, err := s.balances.UserBalances(ctx, *userID)
		if err != nil {
			return nil, err
		}
		if views != nil {
			snapshot.UserBalances = views
		}
	}

	slog.Debug("Chat context assembled",
		"groups", len(snapshot.Groups),
		"recent_expenses", len(snapshot.RecentExpenses),
		"with_user", userID != nil,
	)
	return snapshot, nil
}

func (s *Service) recentExpenses(ctx context.Context, groupNames map[int64]string) ([]RecentExpense, error) {
	expenses, err := s.expenses.ListRecent(ctx, s.recent)
	if err != nil {
		return nil, err
	}

	out := make([]RecentExpense, 0, len(expenses))
	if len(expenses) == 0 {
		return out, nil
	}

	payerIDs := make([]int64, 0, len(expenses))
	for _, e := range expenses {
		payerIDs = append(payerIDs, e.PayerID)
	}
	payers, err := s.users.GetByIDs(ctx, payerIDs)
	if err != nil {
		return nil, err
	}

	for _, e := range expenses {
		payer, ok := payers[e.PayerID]
		if !ok {
			return nil, &balance.DataIntegrityError{Entity: "user", ID: e.PayerID}
		}
		groupName, err := s.groupName(ctx, groupNames, e.GroupID)
		if err != nil {
			return nil, err
		}

		out = append(out, RecentExpense{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Payer:       payer.Name,
			Group:       groupName,
			Date:        e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	return out, nil
}

// groupName resolves a group created after the group listing was read
// before treating it as missing.
func (s *Service) groupName(ctx context.Context, known map[int64]string, id int64) (string, error) {
	if name, ok := known[id]; ok {
		return name, nil
	}

	g, err := s.groups.GetByID(ctx, id)
	if errors.Is(err, group.ErrGroupNotFound) {
		return "", &balance.DataIntegrityError{Entity: "group", ID: id}
	}
	if err != nil {
		return "", err
	}
	known[id] = g.Name
	return g.Name, nil
}
