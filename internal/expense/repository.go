package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkhayef/splitledger/internal/database"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithSplits inserts an expense and all of its splits in one
// transaction and fills in the generated IDs.
func (r *Repository) CreateWithSplits(ctx context.Context, expense *Expense, splits []*Split) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO expenses (group_id, payer_id, description, amount, split_type, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err := tx.QueryRowContext(ctx, query,
			expense.GroupID,
			expense.PayerID,
			expense.Description,
			expense.Amount,
			string(expense.SplitType),
			expense.CreatedAt,
		).Scan(&expense.ID)
		if err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}

		splitQuery := `
			INSERT INTO expense_splits (expense_id, user_id, amount, percentage)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		for _, s := range splits {
			s.ExpenseID = expense.ID
			if err := tx.QueryRowContext(ctx, splitQuery, s.ExpenseID, s.UserID, s.Amount, s.Percentage).Scan(&s.ID); err != nil {
				return fmt.Errorf("failed to create split for user %d: %w", s.UserID, err)
			}
		}
		return nil
	})
}

// GetExpenseByID retrieves an expense by its ID
func (r *Repository) GetExpenseByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.amount, e.split_type, e.created_at, u.name
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.SplitType,
		&expense.CreatedAt,
		&expense.PayerName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetSplitsByExpenseID retrieves all splits for an expense
func (r *Repository) GetSplitsByExpenseID(ctx context.Context, expenseID int64) ([]*Split, error) {
	query := `
		SELECT s.id, s.expense_id, s.user_id, s.amount, s.percentage, u.name
		FROM expense_splits s
		JOIN users u ON s.user_id = u.id
		WHERE s.expense_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []*Split
	for rows.Next() {
		split := &Split{}
		if err := rows.Scan(
			&split.ID,
			&split.ExpenseID,
			&split.UserID,
			&split.Amount,
			&split.Percentage,
			&split.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}

	return splits, rows.Err()
}

// ListExpensesByGroupID retrieves a page of a group's expenses, newest first
func (r *Repository) ListExpensesByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.amount, e.split_type, e.created_at, u.name
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.group_id = $1
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.SplitType,
			&expense.CreatedAt,
			&expense.PayerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, total, rows.Err()
}

// ListRecent retrieves the most recent expenses across all groups.
// Payer names are left for the caller to resolve.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*Expense, error) {
	query := `
		SELECT id, group_id, payer_id, description, amount, split_type, created_at
		FROM expenses
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.SplitType,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

// ListWithSplitsByGroup loads a group's full ledger: every expense in
// creation order with its splits. Only identifiers are loaded.
func (r *Repository) ListWithSplitsByGroup(ctx context.Context, groupID int64) ([]*ExpenseWithSplits, error) {
	query := `
		SELECT id, group_id, payer_id, description, amount, split_type, created_at
		FROM expenses
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group ledger: %w", err)
	}
	defer rows.Close()

	var ledger []*ExpenseWithSplits
	byID := make(map[int64]*ExpenseWithSplits)
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.SplitType,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		entry := &ExpenseWithSplits{Expense: expense}
		ledger = append(ledger, entry)
		byID[expense.ID] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load group ledger: %w", err)
	}
	rows.Close()

	splitQuery := `
		SELECT s.id, s.expense_id, s.user_id, s.amount, s.percentage
		FROM expense_splits s
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.group_id = $1
		ORDER BY s.expense_id, s.id
	`

	splitRows, err := r.db.QueryContext(ctx, splitQuery, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		split := &Split{}
		if err := splitRows.Scan(
			&split.ID,
			&split.ExpenseID,
			&split.UserID,
			&split.Amount,
			&split.Percentage,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if entry, ok := byID[split.ExpenseID]; ok {
			entry.Splits = append(entry.Splits, split)
		}
	}

	return ledger, splitRows.Err()
}
