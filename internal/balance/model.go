package balance

// Balance is a net balance with both users resolved to display names
type Balance struct {
	DebtorID   int64   `json:"debtor_id"`
	Debtor     string  `json:"debtor"`
	CreditorID int64   `json:"creditor_id"`
	Creditor   string  `json:"creditor"`
	Amount     float64 `json:"amount"`
}

// Involves reports whether the user is on either side of the balance
func (b Balance) Involves(userID int64) bool {
	return b.DebtorID == userID || b.CreditorID == userID
}

// UserGroupBalances holds the balances of one group that involve a given user
type UserGroupBalances struct {
	GroupID   int64     `json:"group_id"`
	GroupName string    `json:"group_name"`
	Balances  []Balance `json:"balances"`
}
