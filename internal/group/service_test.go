package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/fkhayef/splitledger/internal/database/databasetest"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()
	db := databasetest.Open(t)
	return NewService(NewRepository(db)), db
}

func insertUsers(t *testing.T, db *sql.DB, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, len(names))
	for i, name := range names {
		err := db.QueryRow(
			`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
			name, fmt.Sprintf("user%d@example.com", i),
		).Scan(&ids[i])
		if err != nil {
			t.Fatalf("insert user %s: %v", name, err)
		}
	}
	return ids
}

func TestCreateGroupWithMembers(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	ids := insertUsers(t, db, "Alice", "Bob", "Charlie")

	group, err := svc.Create(ctx, &CreateGroupRequest{
		Name:    "  Weekend Trip ",
		UserIDs: []int64{ids[2], ids[0], ids[1], ids[0]},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if group.Name != "Weekend Trip" {
		t.Errorf("Name = %q, want trimmed name", group.Name)
	}

	detail, err := svc.GetDetail(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetDetail() error = %v", err)
	}
	if len(detail.Members) != 3 {
		t.Fatalf("members = %d, want 3", len(detail.Members))
	}
	for i, want := range []string{"Alice", "Bob", "Charlie"} {
		if detail.Members[i].Name != want {
			t.Errorf("member %d = %q, want %q", i, detail.Members[i].Name, want)
		}
	}
	if detail.TotalExpenses != 0 {
		t.Errorf("TotalExpenses = %v, want 0", detail.TotalExpenses)
	}
}

func TestCreateGroupValidation(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	ids := insertUsers(t, db, "Alice")

	tests := []struct {
		name    string
		req     *CreateGroupRequest
		wantErr error
	}{
		{name: "blank name", req: &CreateGroupRequest{Name: " ", UserIDs: ids}, wantErr: ErrNameRequired},
		{name: "no members", req: &CreateGroupRequest{Name: "Empty"}, wantErr: ErrNoMembers},
		{name: "unknown user", req: &CreateGroupRequest{Name: "Ghosts", UserIDs: []int64{ids[0], 999}}, wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM groups`).Scan(&count); err != nil {
		t.Fatalf("count groups: %v", err)
	}
	if count != 0 {
		t.Errorf("groups after failed creates = %d, want 0", count)
	}
}

func TestAddMember(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	ids := insertUsers(t, db, "Alice", "Bob")

	group, err := svc.Create(ctx, &CreateGroupRequest{Name: "Roommates", UserIDs: ids[:1]})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	member, err := svc.AddMember(ctx, group.ID, &AddMemberRequest{UserID: ids[1]})
	if err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}
	if member.UserID != ids[1] || member.Name != "Bob" {
		t.Errorf("member = %+v, want Bob", member)
	}

	tests := []struct {
		name    string
		groupID int64
		userID  int64
		wantErr error
	}{
		{name: "already a member", groupID: group.ID, userID: ids[1], wantErr: ErrMemberAlreadyExists},
		{name: "unknown group", groupID: 999, userID: ids[1], wantErr: ErrGroupNotFound},
		{name: "unknown user", groupID: group.ID, userID: 999, wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.AddMember(ctx, tt.groupID, &AddMemberRequest{UserID: tt.userID}); !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddMember() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	ok, err := svc.IsMember(ctx, group.ID, ids[1])
	if err != nil || !ok {
		t.Errorf("IsMember() = %v, %v; want true", ok, err)
	}
}

func TestListByUserIDAndDetails(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	ids := insertUsers(t, db, "Alice", "Bob", "Charlie")

	trip, err := svc.Create(ctx, &CreateGroupRequest{Name: "Trip", UserIDs: ids[:2]})
	if err != nil {
		t.Fatalf("Create(trip) error = %v", err)
	}
	if _, err := svc.Create(ctx, &CreateGroupRequest{Name: "Lunch", UserIDs: ids[1:]}); err != nil {
		t.Fatalf("Create(lunch) error = %v", err)
	}

	groups, err := svc.ListByUserID(ctx, ids[0])
	if err != nil {
		t.Fatalf("ListByUserID() error = %v", err)
	}
	if len(groups) != 1 || groups[0].ID != trip.ID {
		t.Errorf("groups of Alice = %+v, want only Trip", groups)
	}

	if _, err := db.Exec(
		`INSERT INTO expenses (group_id, payer_id, description, amount, split_type) VALUES ($1, $2, $3, $4, $5)`,
		trip.ID, ids[0], "Hotel", 300.0, "EQUAL",
	); err != nil {
		t.Fatalf("insert expense: %v", err)
	}
	if _, err := db.Exec(
		`INSERT INTO expenses (group_id, payer_id, description, amount, split_type) VALUES ($1, $2, $3, $4, $5)`,
		trip.ID, ids[1], "Dinner", 45.5, "EQUAL",
	); err != nil {
		t.Fatalf("insert expense: %v", err)
	}

	details, err := svc.ListDetails(ctx)
	if err != nil {
		t.Fatalf("ListDetails() error = %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("details = %d, want 2", len(details))
	}
	if details[0].TotalExpenses != 345.5 {
		t.Errorf("Trip total = %v, want 345.5", details[0].TotalExpenses)
	}
	if details[1].TotalExpenses != 0 {
		t.Errorf("Lunch total = %v, want 0", details[1].TotalExpenses)
	}

	if _, err := svc.GetDetail(ctx, 999); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("GetDetail(999) error = %v, want %v", err, ErrGroupNotFound)
	}
}
