package group

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fkhayef/splitledger/internal/database"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrMemberAlreadyExists = errors.New("user is already a member of this group")
	ErrNameRequired        = errors.New("group name is required")
	ErrNoMembers           = errors.New("a group needs at least one member")
)

// Service handles group business logic
type Service struct {
	repo *Repository
}

// NewService creates a new group service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new group with its initial members.
// Repeated user IDs are collapsed.
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	userIDs := uniqueIDs(req.UserIDs)
	if len(userIDs) == 0 {
		return nil, ErrNoMembers
	}

	group, err := s.repo.Create(ctx, name, userIDs)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "members", len(userIDs))
	return group, nil
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// GetDetail retrieves a group with its members and expense total
func (s *Service) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	group, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, group)
}

// ListDetails retrieves every group with its members and expense total
func (s *Service) ListDetails(ctx context.Context) ([]*Detail, error) {
	groups, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*Detail, 0, len(groups))
	for _, g := range groups {
		d, err := s.detail(ctx, g)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *Service) detail(ctx context.Context, group *Group) (*Detail, error) {
	members, err := s.repo.GetMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.TotalExpenses(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	return &Detail{Group: group, Members: members, TotalExpenses: total}, nil
}

// List retrieves groups with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Group, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// ListByUserID retrieves all groups for a user
func (s *Service) ListByUserID(ctx context.Context, userID int64) ([]*Group, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// AddMember adds a user to a group
func (s *Service) AddMember(ctx context.Context, groupID int64, req *AddMemberRequest) (*Member, error) {
	if _, err := s.GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetMember(ctx, groupID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberAlreadyExists
	}

	if err := s.repo.AddMember(ctx, groupID, req.UserID); err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return nil, ErrMemberAlreadyExists
		case database.IsForeignKeyViolation(err):
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	slog.Info("Member added", "group_id", groupID, "user_id", req.UserID)
	return s.repo.GetMember(ctx, groupID, req.UserID)
}

// GetMembers retrieves all members of a group
func (s *Service) GetMembers(ctx context.Context, groupID int64) ([]*Member, error) {
	if _, err := s.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.repo.GetMembers(ctx, groupID)
}

// IsMember reports whether the user belongs to the group
func (s *Service) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	return s.repo.IsMember(ctx, groupID, userID)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
