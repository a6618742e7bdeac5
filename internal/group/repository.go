package group

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fkhayef/splitledger/internal/database"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a group and its initial memberships in one transaction
func (r *Repository) Create(ctx context.Context, name string, userIDs []int64) (*Group, error) {
	group := &Group{
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO groups (name, created_at)
			VALUES ($1, $2)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, group.Name, group.CreatedAt).Scan(&group.ID); err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}

		for _, userID := range userIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`,
				group.ID, userID,
			); err != nil {
				return fmt.Errorf("failed to add member %d: %w", userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Group, error) {
	query := `
		SELECT id, name, created_at
		FROM groups
		WHERE id = $1
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// List retrieves groups with pagination, oldest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Group, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	query := `
		SELECT id, name, created_at
		FROM groups
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	groups, err := r.queryGroups(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

// ListAll retrieves every group, oldest first
func (r *Repository) ListAll(ctx context.Context) ([]*Group, error) {
	return r.queryGroups(ctx, `SELECT id, name, created_at FROM groups ORDER BY id`)
}

// ListByUserID retrieves all groups the user belongs to
func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]*Group, error) {
	query := `
		SELECT g.id, g.name, g.created_at
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.user_id = $1
		ORDER BY g.id
	`
	return r.queryGroups(ctx, query, userID)
}

func (r *Repository) queryGroups(ctx context.Context, query string, args ...any) ([]*Group, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

// AddMember adds a user to a group
func (r *Repository) AddMember(ctx context.Context, groupID, userID int64) error {
	query := `INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, groupID, userID); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// GetMembers retrieves all members of a group ordered by user ID
func (r *Repository) GetMembers(ctx context.Context, groupID int64) ([]*Member, error) {
	query := `
		SELECT gm.group_id, gm.user_id, u.name, u.email
		FROM group_members gm
		JOIN users u ON gm.user_id = u.id
		WHERE gm.group_id = $1
		ORDER BY gm.user_id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		if err := rows.Scan(
			&member.GroupID,
			&member.UserID,
			&member.Name,
			&member.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// GetMember retrieves a specific member from a group
func (r *Repository) GetMember(ctx context.Context, groupID, userID int64) (*Member, error) {
	query := `
		SELECT gm.group_id, gm.user_id, u.name, u.email
		FROM group_members gm
		JOIN users u ON gm.user_id = u.id
		WHERE gm.group_id = $1 AND gm.user_id = $2
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, userID).Scan(
		&member.GroupID,
		&member.UserID,
		&member.Name,
		&member.Email,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// IsMember reports whether the user belongs to the group
func (r *Repository) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, groupID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return exists, nil
}

// TotalExpenses sums the amounts of every expense recorded in the group
func (r *Repository) TotalExpenses(ctx context.Context, groupID int64) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, query, groupID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum group expenses: %w", err)
	}
	return total, nil
}
