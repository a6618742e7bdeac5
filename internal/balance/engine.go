package balance

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Pair is a directed (debtor, creditor) relation between two users
type Pair struct {
	Debtor   int64
	Creditor int64
}

// Debts holds gross directional debt totals. Both directions of a pair
// may be present; Net reconciles them.
type Debts map[Pair]float64

// Share is one user's owed portion of an expense
type Share struct {
	UserID int64
	Amount float64
}

// Entry is an expense as seen by the accumulator: who paid and who owes what
type Entry struct {
	PayerID int64
	Shares  []Share
}

// NetBalance is the reconciled amount one user owes another, rounded to cents
type NetBalance struct {
	DebtorID   int64   `json:"debtor_id"`
	CreditorID int64   `json:"creditor_id"`
	Amount     float64 `json:"amount"`
}

// Accumulate adds every share to the (share user, payer) total.
// A payer's own share is skipped.
func Accumulate(entries []Entry) Debts {
	debts := make(Debts)
	for _, e := range entries {
		for _, s := range e.Shares {
			if s.UserID == e.PayerID {
				continue
			}
			debts[Pair{Debtor: s.UserID, Creditor: e.PayerID}] += s.Amount
		}
	}
	return debts
}

// Net collapses each unordered pair into at most one balance. The
// difference of the two directions is taken first and rounded once;
// pairs that cancel to zero cents are dropped. The result is sorted by
// debtor, then creditor.
func Net(debts Debts) []NetBalance {
	visited := make(map[Pair]struct{}, len(debts))
	balances := make([]NetBalance, 0, len(debts))

	for pair, amount := range debts {
		if amount == 0 || pair.Debtor == pair.Creditor {
			continue
		}

		key := canonical(pair)
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		net := debts[key] - debts[Pair{Debtor: key.Creditor, Creditor: key.Debtor}]
		rounded := Round(math.Abs(net))
		if rounded == 0 {
			continue
		}

		if net > 0 {
			balances = append(balances, NetBalance{DebtorID: key.Debtor, CreditorID: key.Creditor, Amount: rounded})
		} else {
			balances = append(balances, NetBalance{DebtorID: key.Creditor, CreditorID: key.Debtor, Amount: rounded})
		}
	}

	sort.Slice(balances, func(i, j int) bool {
		if balances[i].DebtorID != balances[j].DebtorID {
			return balances[i].DebtorID < balances[j].DebtorID
		}
		return balances[i].CreditorID < balances[j].CreditorID
	})

	return balances
}

// Round rounds to two decimal places, halves away from zero
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// canonical orders a pair by user ID so both directions share one key
func canonical(p Pair) Pair {
	if p.Debtor < p.Creditor {
		return p
	}
	return Pair{Debtor: p.Creditor, Creditor: p.Debtor}
}
