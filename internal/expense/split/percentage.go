package split

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// PercentageStrategy divides the expense by each participant's percentage.
// The payer's own percentage is their share of the cost, like everyone else's.
type PercentageStrategy struct {
	Remainder RemainderPolicy
	// Strict rejects percentages that do not add up to 100
	Strict bool
}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() SplitType {
	return SplitTypePercentage
}

// Validate checks if the inputs are valid for a percentage split
func (s *PercentageStrategy) Validate(totalAmount float64, participants []SplitInput) error {
	if err := validateCommon(totalAmount, participants); err != nil {
		return err
	}

	for _, p := range participants {
		if p.Percentage == nil {
			return ErrMissingPercentage
		}
		if !(*p.Percentage > 0) || *p.Percentage > 100 || math.IsNaN(*p.Percentage) {
			return ErrPercentageOutOfRange
		}
	}

	if s.Strict && !sumsToHundred(participants) {
		return ErrInvalidPercentages
	}

	return nil
}

// Calculate computes amount × percentage / 100 for each participant
func (s *PercentageStrategy) Calculate(totalAmount float64, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	outputs := make([]SplitOutput, len(participants))
	for i, p := range participants {
		pct := *p.Percentage
		outputs[i] = SplitOutput{
			UserID:     p.UserID,
			AmountOwed: totalAmount * (pct / 100),
			Percentage: &pct,
		}
	}

	if s.Remainder == RemainderRedistribute {
		if err := redistributePercentages(totalAmount, participants, outputs); err != nil {
			return nil, err
		}
	}

	return outputs, nil
}

// redistributePercentages rounds every share to cents. When the
// percentages cover the whole amount, the last participant absorbs the
// rounding difference so the shares add up exactly. A share that rounds
// to nothing is rejected.
func redistributePercentages(totalAmount float64, participants []SplitInput, outputs []SplitOutput) error {
	total := decimal.NewFromFloat(totalAmount)
	hundred := decimal.NewFromInt(100)

	var assigned int64
	for i, p := range participants {
		cents := total.Mul(decimal.NewFromFloat(*p.Percentage)).Div(hundred).Shift(2).Round(0).IntPart()
		if cents <= 0 {
			return fmt.Errorf("%w: user %d", ErrShareBelowOneCent, p.UserID)
		}
		outputs[i].AmountOwed = fromCents(cents)
		assigned += cents
	}

	if !sumsToHundred(participants) {
		return nil
	}

	last := len(outputs) - 1
	lastCents := toCents(outputs[last].AmountOwed) + toCents(totalAmount) - assigned
	if lastCents <= 0 {
		return fmt.Errorf("%w: user %d", ErrShareBelowOneCent, participants[last].UserID)
	}
	outputs[last].AmountOwed = fromCents(lastCents)
	return nil
}

func sumsToHundred(participants []SplitInput) bool {
	var sum float64
	for _, p := range participants {
		if p.Percentage != nil {
			sum += *p.Percentage
		}
	}
	return math.Abs(sum-100) <= percentageTolerance
}
