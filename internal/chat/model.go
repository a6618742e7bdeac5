package chat

import "github.com/fkhayef/splitledger/internal/balance"

// Snapshot is the read-only ledger context handed to an external assistant
type Snapshot struct {
	Groups         []GroupSummary              `json:"groups"`
	RecentExpenses []RecentExpense             `json:"recent_expenses"`
	UserBalances   []balance.UserGroupBalances `json:"user_balances"`
}

// GroupSummary describes a group by name
type GroupSummary struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Members       []string `json:"members"`
	TotalExpenses float64  `json:"total_expenses"`
}

// RecentExpense is an expense with payer and group resolved to names
type RecentExpense struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Payer       string  `json:"payer"`
	Group       string  `json:"group"`
	Date        string  `json:"date"`
}
