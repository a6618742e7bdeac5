package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/fkhayef/splitledger/internal/database/databasetest"
	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/group"
)

type fixture struct {
	db      *sql.DB
	svc     *Service
	repo    *Repository
	users   map[string]int64
	groupID int64
}

// newFixture creates Alice, Bob, Charlie and Dave and a group holding the
// first three.
func newFixture(t *testing.T, opts split.Options) *fixture {
	t.Helper()
	db := databasetest.Open(t)

	f := &fixture{db: db, users: make(map[string]int64)}
	for _, name := range []string{"Alice", "Bob", "Charlie", "Dave"} {
		var id int64
		err := db.QueryRow(
			`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
			name, fmt.Sprintf("%s@example.com", name),
		).Scan(&id)
		if err != nil {
			t.Fatalf("insert user %s: %v", name, err)
		}
		f.users[name] = id
	}

	groupRepo := group.NewRepository(db)
	g, err := groupRepo.Create(context.Background(), "Weekend Trip", []int64{f.users["Alice"], f.users["Bob"], f.users["Charlie"]})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	f.groupID = g.ID

	f.repo = NewRepository(db)
	f.svc = NewService(f.repo, groupRepo, split.NewSplitStrategyFactory(opts))
	return f
}

func (f *fixture) participants(names ...string) []*SplitParticipant {
	out := make([]*SplitParticipant, len(names))
	for i, n := range names {
		out[i] = &SplitParticipant{UserID: f.users[n]}
	}
	return out
}

func pct(v float64) *float64 { return &v }

func TestCreateExpenseEqual(t *testing.T) {
	f := newFixture(t, split.Options{})
	ctx := context.Background()

	created, err := f.svc.CreateExpense(ctx, &CreateExpenseRequest{
		GroupID:      f.groupID,
		PayerID:      f.users["Alice"],
		Description:  "Hotel booking",
		Amount:       300,
		SplitType:    "equal",
		Participants: f.participants("Alice", "Bob", "Charlie"),
	})
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}
	if created.Expense.ID == 0 || created.Expense.SplitType != split.SplitTypeEqual {
		t.Errorf("expense = %+v", created.Expense)
	}

	loaded, err := f.svc.GetExpenseByID(ctx, created.Expense.ID)
	if err != nil {
		t.Fatalf("GetExpenseByID() error = %v", err)
	}
	if loaded.Expense.PayerName != "Alice" {
		t.Errorf("PayerName = %q, want Alice", loaded.Expense.PayerName)
	}
	if len(loaded.Splits) != 3 {
		t.Fatalf("splits = %d, want 3", len(loaded.Splits))
	}

	var total float64
	for _, s := range loaded.Splits {
		if math.Abs(s.Amount-100) > 0.01 {
			t.Errorf("%s owes %v, want 100", s.UserName, s.Amount)
		}
		if s.Percentage != nil {
			t.Errorf("%s has percentage on an equal split", s.UserName)
		}
		total += s.Amount
	}
	if math.Abs(total-300) > 0.01 {
		t.Errorf("splits total %v, want 300", total)
	}
}

func TestCreateExpensePercentage(t *testing.T) {
	f := newFixture(t, split.Options{})
	ctx := context.Background()

	created, err := f.svc.CreateExpense(ctx, &CreateExpenseRequest{
		GroupID:     f.groupID,
		PayerID:     f.users["Bob"],
		Description: "Dinner",
		Amount:      120,
		SplitType:   "PERCENTAGE",
		Participants: []*SplitParticipant{
			{UserID: f.users["Alice"], Percentage: pct(40)},
			{UserID: f.users["Bob"], Percentage: pct(35)},
			{UserID: f.users["Charlie"], Percentage: pct(25)},
		},
	})
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}

	loaded, err := f.svc.GetExpenseByID(ctx, created.Expense.ID)
	if err != nil {
		t.Fatalf("GetExpenseByID() error = %v", err)
	}

	want := map[string]float64{"Alice": 48, "Bob": 42, "Charlie": 30}
	for _, s := range loaded.Splits {
		if math.Abs(s.Amount-want[s.UserName]) > 0.01 {
			t.Errorf("%s owes %v, want %v", s.UserName, s.Amount, want[s.UserName])
		}
		if s.Percentage == nil {
			t.Errorf("%s is missing the stored percentage", s.UserName)
		}
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	f := newFixture(t, split.Options{Percentage: split.PercentageStrict})
	ctx := context.Background()

	valid := func() *CreateExpenseRequest {
		return &CreateExpenseRequest{
			GroupID:      f.groupID,
			PayerID:      f.users["Alice"],
			Description:  "Taxi",
			Amount:       30,
			SplitType:    "EQUAL",
			Participants: f.participants("Alice", "Bob"),
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateExpenseRequest)
		wantErr error
	}{
		{name: "unknown group", mutate: func(r *CreateExpenseRequest) { r.GroupID = 999 }, wantErr: ErrGroupNotFound},
		{name: "blank description", mutate: func(r *CreateExpenseRequest) { r.Description = "  " }, wantErr: ErrDescriptionRequired},
		{name: "payer outside group", mutate: func(r *CreateExpenseRequest) { r.PayerID = f.users["Dave"] }, wantErr: ErrNotGroupMember},
		{name: "participant outside group", mutate: func(r *CreateExpenseRequest) { r.Participants = f.participants("Alice", "Dave") }, wantErr: ErrNotGroupMember},
		{name: "no participants", mutate: func(r *CreateExpenseRequest) { r.Participants = nil }, wantErr: split.ErrNoParticipants},
		{name: "zero amount", mutate: func(r *CreateExpenseRequest) { r.Amount = 0 }, wantErr: split.ErrNonPositiveAmount},
		{name: "unknown split type", mutate: func(r *CreateExpenseRequest) { r.SplitType = "EXACT" }, wantErr: split.ErrUnknownSplitType},
		{name: "percentages off under strict policy", mutate: func(r *CreateExpenseRequest) {
			r.SplitType = "PERCENTAGE"
			r.Participants = []*SplitParticipant{
				{UserID: f.users["Alice"], Percentage: pct(60)},
				{UserID: f.users["Bob"], Percentage: pct(30)},
			}
		}, wantErr: split.ErrInvalidPercentages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			if _, err := f.svc.CreateExpense(ctx, req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateExpense() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	var count int
	if err := f.db.QueryRow(`SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		t.Fatalf("count expenses: %v", err)
	}
	if count != 0 {
		t.Errorf("expenses after rejected requests = %d, want 0", count)
	}
}

func TestCreateWithSplitsIsAtomic(t *testing.T) {
	f := newFixture(t, split.Options{})
	ctx := context.Background()

	expense := &Expense{
		GroupID:     f.groupID,
		PayerID:     f.users["Alice"],
		Description: "Broken",
		Amount:      10,
		SplitType:   split.SplitTypeEqual,
	}
	splits := []*Split{
		{UserID: f.users["Alice"], Amount: 5},
		{UserID: 999, Amount: 5},
	}

	if err := f.repo.CreateWithSplits(ctx, expense, splits); err == nil {
		t.Fatal("CreateWithSplits() = nil, want foreign key error")
	}

	var expenses, rows int
	f.db.QueryRow(`SELECT COUNT(*) FROM expenses`).Scan(&expenses)
	f.db.QueryRow(`SELECT COUNT(*) FROM expense_splits`).Scan(&rows)
	if expenses != 0 || rows != 0 {
		t.Errorf("after failed insert: %d expenses, %d splits; want none", expenses, rows)
	}
}

func TestListWithSplitsByGroup(t *testing.T) {
	f := newFixture(t, split.Options{})
	ctx := context.Background()

	other, err := group.NewRepository(f.db).Create(ctx, "Office Lunch", []int64{f.users["Bob"], f.users["Dave"]})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	requests := []*CreateExpenseRequest{
		{GroupID: f.groupID, PayerID: f.users["Alice"], Description: "Hotel", Amount: 300, SplitType: "EQUAL", Participants: f.participants("Alice", "Bob", "Charlie")},
		{GroupID: other.ID, PayerID: f.users["Dave"], Description: "Pizza", Amount: 45, SplitType: "EQUAL", Participants: f.participants("Bob", "Dave")},
		{GroupID: f.groupID, PayerID: f.users["Bob"], Description: "Fuel", Amount: 60, SplitType: "EQUAL", Participants: f.participants("Alice", "Bob")},
	}
	for _, req := range requests {
		if _, err := f.svc.CreateExpense(ctx, req); err != nil {
			t.Fatalf("CreateExpense(%s) error = %v", req.Description, err)
		}
	}

	ledger, err := f.repo.ListWithSplitsByGroup(ctx, f.groupID)
	if err != nil {
		t.Fatalf("ListWithSplitsByGroup() error = %v", err)
	}
	if len(ledger) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(ledger))
	}
	if ledger[0].Expense.Description != "Hotel" || len(ledger[0].Splits) != 3 {
		t.Errorf("first entry = %s with %d splits, want Hotel with 3", ledger[0].Expense.Description, len(ledger[0].Splits))
	}
	if ledger[1].Expense.Description != "Fuel" || len(ledger[1].Splits) != 2 {
		t.Errorf("second entry = %s with %d splits, want Fuel with 2", ledger[1].Expense.Description, len(ledger[1].Splits))
	}

	recent, err := f.svc.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(recent) != 2 || recent[0].Description != "Fuel" || recent[1].Description != "Pizza" {
		t.Errorf("recent = %+v, want Fuel then Pizza", recent)
	}

	page, total, err := f.svc.ListExpensesByGroupID(ctx, f.groupID, 1, 1)
	if err != nil {
		t.Fatalf("ListExpensesByGroupID() error = %v", err)
	}
	if total != 2 || len(page) != 1 || page[0].Description != "Fuel" {
		t.Errorf("page = %+v (total %d), want newest Fuel of 2", page, total)
	}

	if _, _, err := f.svc.ListExpensesByGroupID(ctx, 999, 1, 10); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("ListExpensesByGroupID(999) error = %v, want %v", err, ErrGroupNotFound)
	}
}
