package group

// CreateGroupRequest represents the request to create a new group with its initial members
type CreateGroupRequest struct {
	Name    string  `json:"name"`
	UserIDs []int64 `json:"user_ids"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	UserID int64 `json:"user_id"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	CreatedAt     string            `json:"created_at"`
	Members       []*MemberResponse `json:"members,omitempty"`
	TotalExpenses *float64          `json:"total_expenses,omitempty"`
}

// MemberResponse represents a member in a group response
type MemberResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		UserID: m.UserID,
		Name:   m.Name,
		Email:  m.Email,
	}
}

// ToResponse converts a Detail to a GroupResponse with members and total
func (d *Detail) ToResponse() *GroupResponse {
	resp := d.Group.ToResponse()
	resp.Members = make([]*MemberResponse, len(d.Members))
	for i, m := range d.Members {
		resp.Members[i] = m.ToResponse()
	}
	total := d.TotalExpenses
	resp.TotalExpenses = &total
	return resp
}
