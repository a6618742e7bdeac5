package split

// EqualStrategy divides the expense equally among all participants,
// the payer included when listed.
type EqualStrategy struct {
	Remainder RemainderPolicy
}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(totalAmount float64, participants []SplitInput) error {
	return validateCommon(totalAmount, participants)
}

// Calculate gives every participant amount / count. Under the drift policy
// the share is left unrounded, so 100 split three ways owes 33.333... each.
func (s *EqualStrategy) Calculate(totalAmount float64, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	outputs := make([]SplitOutput, len(participants))

	if s.Remainder == RemainderRedistribute {
		total := toCents(totalAmount)
		if total < int64(len(participants)) {
			return nil, ErrShareBelowOneCent
		}
		for i, cents := range distributeCents(total, len(participants)) {
			outputs[i] = SplitOutput{UserID: participants[i].UserID, AmountOwed: fromCents(cents)}
		}
		return outputs, nil
	}

	share := totalAmount / float64(len(participants))
	for i, p := range participants {
		outputs[i] = SplitOutput{UserID: p.UserID, AmountOwed: share}
	}
	return outputs, nil
}

// distributeCents splits total cents into n shares that differ by at most
// one cent, the larger shares going first.
func distributeCents(total int64, n int) []int64 {
	base := total / int64(n)
	extra := total % int64(n)

	shares := make([]int64, n)
	for i := range shares {
		shares[i] = base
		if int64(i) < extra {
			shares[i]++
		}
	}
	return shares
}
