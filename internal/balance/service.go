package balance

import (
	"context"
	"log/slog"
	"time"

	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/group"
	"github.com/fkhayef/splitledger/internal/user"
)

// Metric scopes
const (
	ScopeGroup = "group"
	ScopeUser  = "user"
)

// LedgerReader loads a group's expenses with their splits
type LedgerReader interface {
	ListWithSplitsByGroup(ctx context.Context, groupID int64) ([]*expense.ExpenseWithSplits, error)
}

// GroupReader looks up groups. GetByID returns nil, nil when absent.
type GroupReader interface {
	GetByID(ctx context.Context, id int64) (*group.Group, error)
	ListByUserID(ctx context.Context, userID int64) ([]*group.Group, error)
}

// UserReader looks up users. GetByID returns nil, nil when absent and
// GetByIDs omits IDs it cannot find.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*user.User, error)
}

// Observer records balance computations
type Observer interface {
	ObserveBalance(scope string, duration time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveBalance(string, time.Duration, error) {}

// Service composes group and user balance views. Nothing is cached: every
// call reloads the ledger and recomputes from scratch.
type Service struct {
	ledger   LedgerReader
	groups   GroupReader
	users    UserReader
	observer Observer
}

// NewService creates a new balance service. A nil observer disables instrumentation.
func NewService(ledger LedgerReader, groups GroupReader, users UserReader, observer Observer) *Service {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Service{
		ledger:   ledger,
		groups:   groups,
		users:    users,
		observer: observer,
	}
}

// GroupBalances returns the net balances of a group with names resolved
func (s *Service) GroupBalances(ctx context.Context, groupID int64) (balances []Balance, err error) {
	start := time.Now()
	defer func() { s.observer.ObserveBalance(ScopeGroup, time.Since(start), err) }()

	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	return s.groupBalances(ctx, g.ID)
}

// UserBalances returns, for every group the user belongs to, the balances
// in which the user is debtor or creditor. Groups with none are left out.
func (s *Service) UserBalances(ctx context.Context, userID int64) (views []UserGroupBalances, err error) {
	start := time.Now()
	defer func() { s.observer.ObserveBalance(ScopeUser, time.Since(start), err) }()

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	groups, err := s.groups.ListByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	views = make([]UserGroupBalances, 0, len(groups))
	for _, g := range groups {
		balances, err := s.groupBalances(ctx, g.ID)
		if err != nil {
			return nil, err
		}

		var relevant []Balance
		for _, b := range balances {
			if b.Involves(u.ID) {
				relevant = append(relevant, b)
			}
		}
		if len(relevant) == 0 {
			continue
		}

		views = append(views, UserGroupBalances{
			GroupID:   g.ID,
			GroupName: g.Name,
			Balances:  relevant,
		})
	}

	return views, nil
}

func (s *Service) groupBalances(ctx context.Context, groupID int64) ([]Balance, error) {
	ledger, err := s.ledger.ListWithSplitsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(ledger))
	for i, item := range ledger {
		entries[i] = toEntry(item)
	}

	nets := Net(Accumulate(entries))

	balances, err := s.resolve(ctx, nets)
	if err != nil {
		slog.Error("Balance computation failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.Debug("Group balances computed",
		"group_id", groupID,
		"expenses", len(ledger),
		"balances", len(balances),
	)
	return balances, nil
}

// resolve attaches display names. Every ID must resolve.
func (s *Service) resolve(ctx context.Context, nets []NetBalance) ([]Balance, error) {
	balances := make([]Balance, 0, len(nets))
	if len(nets) == 0 {
		return balances, nil
	}

	seen := make(map[int64]struct{})
	var ids []int64
	for _, n := range nets {
		for _, id := range []int64{n.DebtorID, n.CreditorID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, n := range nets {
		debtor, ok := users[n.DebtorID]
		if !ok {
			return nil, &DataIntegrityError{Entity: "user", ID: n.DebtorID}
		}
		creditor, ok := users[n.CreditorID]
		if !ok {
			return nil, &DataIntegrityError{Entity: "user", ID: n.CreditorID}
		}

		balances = append(balances, Balance{
			DebtorID:   n.DebtorID,
			Debtor:     debtor.Name,
			CreditorID: n.CreditorID,
			Creditor:   creditor.Name,
			Amount:     n.Amount,
		})
	}

	return balances, nil
}

func toEntry(item *expense.ExpenseWithSplits) Entry {
	shares := make([]Share, len(item.Splits))
	for i, sp := range item.Splits {
		shares[i] = Share{UserID: sp.UserID, Amount: sp.Amount}
	}
	return Entry{PayerID: item.Expense.PayerID, Shares: shares}
}
