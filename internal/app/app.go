// Package app wires the ledger's dependencies for the API server and the
// splitctl CLI.
//
// It builds repositories, services and handlers from a Config and an open
// database, exposing them through the App struct.
package app

import (
	"database/sql"
	"fmt"

	"github.com/fkhayef/splitledger/internal/balance"
	"github.com/fkhayef/splitledger/internal/chat"
	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/group"
	"github.com/fkhayef/splitledger/internal/metrics"
	"github.com/fkhayef/splitledger/internal/user"
)

// App bundles every service built on one database
type App struct {
	Config  *config.Config
	DB      *sql.DB
	Metrics *metrics.Metrics // nil when metrics are disabled

	Users    *user.Service
	Groups   *group.Service
	Expenses *expense.Service
	Balances *balance.Service
	Chat     *chat.Service
}

// New constructs the dependency graph. The caller keeps ownership of db.
func New(cfg *config.Config, db *sql.DB) (*App, error) {
	opts, err := SplitOptions(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, DB: db}
	if cfg.MetricsEnabled {
		a.Metrics = metrics.New()
	}

	userRepo := user.NewRepository(db)
	groupRepo := group.NewRepository(db)
	expenseRepo := expense.NewRepository(db)

	a.Users = user.NewService(userRepo)
	a.Groups = group.NewService(groupRepo)
	a.Expenses = expense.NewService(expenseRepo, groupRepo, split.NewSplitStrategyFactory(opts))

	var observer balance.Observer
	if a.Metrics != nil {
		observer = a.Metrics
	}
	a.Balances = balance.NewService(expenseRepo, groupRepo, userRepo, observer)
	a.Chat = chat.NewService(a.Groups, a.Expenses, userRepo, a.Balances, cfg.ChatRecentExpenses)

	return a, nil
}

// SplitOptions translates the configured split policies
func SplitOptions(cfg *config.Config) (split.Options, error) {
	opts := split.Options{
		Remainder:  split.RemainderPolicy(cfg.SplitRemainderPolicy),
		Percentage: split.PercentagePolicy(cfg.SplitPercentagePolicy),
	}

	switch opts.Remainder {
	case "":
		opts.Remainder = split.RemainderDrift
	case split.RemainderDrift, split.RemainderRedistribute:
	default:
		return split.Options{}, fmt.Errorf("unknown remainder policy %q", cfg.SplitRemainderPolicy)
	}

	switch opts.Percentage {
	case "":
		opts.Percentage = split.PercentageLenient
	case split.PercentageLenient, split.PercentageStrict:
	default:
		return split.Options{}, fmt.Errorf("unknown percentage policy %q", cfg.SplitPercentagePolicy)
	}

	return opts, nil
}
