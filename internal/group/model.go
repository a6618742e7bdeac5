package group

import "time"

// Group represents a set of users sharing expenses
type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Member relates one user to one group. Membership only grows.
type Member struct {
	GroupID int64 `json:"group_id"`
	UserID  int64 `json:"user_id"`

	// Populated from JOIN
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Detail is a group together with its members and the sum of its expenses
type Detail struct {
	Group         *Group
	Members       []*Member
	TotalExpenses float64
}
