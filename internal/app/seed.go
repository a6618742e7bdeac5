package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/group"
	"github.com/fkhayef/splitledger/internal/user"
)

// ErrAlreadySeeded is returned by Seed when the database already holds users
var ErrAlreadySeeded = errors.New("database already contains data")

// SeedResult holds the IDs created by Seed
type SeedResult struct {
	Users    []int64
	Groups   []int64
	Expenses []int64
}

type seedExpense struct {
	group       int
	payer       int
	description string
	amount      float64
	splitType   string
	members     []int
	percentages []float64
}

var (
	seedUsers = []user.CreateUserRequest{
		{Name: "Alice Johnson", Email: "alice@example.com"},
		{Name: "Bob Smith", Email: "bob@example.com"},
		{Name: "Charlie Brown", Email: "charlie@example.com"},
		{Name: "Diana Prince", Email: "diana@example.com"},
	}

	seedGroups = []struct {
		name    string
		members []int
	}{
		{"Weekend Trip", []int{0, 1, 2}},
		{"Roommates", []int{0, 1, 2, 3}},
		{"Office Lunch", []int{1, 2, 3}},
	}

	seedExpenses = []seedExpense{
		{group: 0, payer: 0, description: "Hotel booking", amount: 300, splitType: "EQUAL", members: []int{0, 1, 2}},
		{group: 0, payer: 1, description: "Dinner at restaurant", amount: 120, splitType: "PERCENTAGE", members: []int{0, 1, 2}, percentages: []float64{40, 35, 25}},
		{group: 1, payer: 2, description: "Grocery shopping", amount: 85.50, splitType: "EQUAL", members: []int{0, 1, 2, 3}},
		{group: 2, payer: 3, description: "Pizza lunch", amount: 45, splitType: "EQUAL", members: []int{1, 2, 3}},
	}
)

// Seed loads the demo users, groups and expenses into an empty database
func (a *App) Seed(ctx context.Context) (*SeedResult, error) {
	_, total, err := a.Users.List(ctx, 1, 1)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		return nil, ErrAlreadySeeded
	}

	res := &SeedResult{}

	for i := range seedUsers {
		req := seedUsers[i]
		u, err := a.Users.Create(ctx, &req)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", req.Name, err)
		}
		res.Users = append(res.Users, u.ID)
	}

	for _, sg := range seedGroups {
		g, err := a.Groups.Create(ctx, &group.CreateGroupRequest{Name: sg.name, UserIDs: pick(res.Users, sg.members)})
		if err != nil {
			return nil, fmt.Errorf("seed group %s: %w", sg.name, err)
		}
		res.Groups = append(res.Groups, g.ID)
	}

	for _, se := range seedExpenses {
		participants := make([]*expense.SplitParticipant, len(se.members))
		for i, m := range se.members {
			participants[i] = &expense.SplitParticipant{UserID: res.Users[m]}
			if se.percentages != nil {
				pct := se.percentages[i]
				participants[i].Percentage = &pct
			}
		}

		created, err := a.Expenses.CreateExpense(ctx, &expense.CreateExpenseRequest{
			GroupID:      res.Groups[se.group],
			PayerID:      res.Users[se.payer],
			Description:  se.description,
			Amount:       se.amount,
			SplitType:    se.splitType,
			Participants: participants,
		})
		if err != nil {
			return nil, fmt.Errorf("seed expense %s: %w", se.description, err)
		}
		res.Expenses = append(res.Expenses, created.Expense.ID)
	}

	slog.Info("Demo data seeded",
		"users", len(res.Users),
		"groups", len(res.Groups),
		"expenses", len(res.Expenses),
	)
	return res, nil
}

func pick(ids []int64, idx []int) []int64 {
	out := make([]int64, len(idx))
	for i, j := range idx {
		out[i] = ids[j]
	}
	return out
}
