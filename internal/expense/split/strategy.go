package split

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// SplitType defines the type of split strategy
type SplitType string

const (
	SplitTypeEqual      SplitType = "EQUAL"
	SplitTypePercentage SplitType = "PERCENTAGE"
)

// ParseSplitType accepts a split type in any letter case
func ParseSplitType(s string) (SplitType, error) {
	switch t := SplitType(strings.ToUpper(strings.TrimSpace(s))); t {
	case SplitTypeEqual, SplitTypePercentage:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSplitType, s)
	}
}

// RemainderPolicy controls what happens to the fraction of a cent left over
// when an amount does not divide evenly.
type RemainderPolicy string

const (
	// RemainderDrift keeps the raw floating-point shares.
	RemainderDrift RemainderPolicy = "drift"
	// RemainderRedistribute rounds shares to cents and hands leftover cents
	// to participants in allocation order.
	RemainderRedistribute RemainderPolicy = "redistribute"
)

// PercentagePolicy controls whether percentage splits must total 100
type PercentagePolicy string

const (
	PercentageLenient PercentagePolicy = "lenient"
	PercentageStrict  PercentagePolicy = "strict"
)

// Options tune the strategies built by a Factory. The zero value means
// drift and lenient.
type Options struct {
	Remainder  RemainderPolicy
	Percentage PercentagePolicy
}

// SplitInput represents a participant in a split with optional values
type SplitInput struct {
	UserID     int64    `json:"user_id"`
	Percentage *float64 `json:"percentage,omitempty"` // For PERCENTAGE split
}

// SplitOutput represents the calculated split for a single participant
type SplitOutput struct {
	UserID     int64    `json:"user_id"`
	AmountOwed float64  `json:"amount_owed"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate computes the owed amount of every participant, in input order
	Calculate(totalAmount float64, participants []SplitInput) ([]SplitOutput, error)

	// Type returns the type identifier for this strategy
	Type() SplitType

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount float64, participants []SplitInput) error
}

// Factory creates split strategies based on the requested type
type Factory struct {
	opts Options
}

// NewSplitStrategyFactory creates a new factory instance
func NewSplitStrategyFactory(opts Options) *Factory {
	return &Factory{opts: opts}
}

// Create returns the appropriate strategy implementation based on the type
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{Remainder: f.opts.Remainder}, nil
	case SplitTypePercentage:
		return &PercentageStrategy{
			Remainder: f.opts.Remainder,
			Strict:    f.opts.Percentage == PercentageStrict,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitType, splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests)
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	t, err := ParseSplitType(splitType)
	if err != nil {
		return nil, err
	}
	return f.Create(t)
}

// Compute resolves the strategy for splitType and runs it
func (f *Factory) Compute(amount float64, splitType SplitType, participants []SplitInput) ([]SplitOutput, error) {
	strategy, err := f.Create(splitType)
	if err != nil {
		return nil, err
	}
	return strategy.Calculate(amount, participants)
}

// Compute splits amount with the default options (drift, lenient)
func Compute(amount float64, splitType SplitType, participants []SplitInput) ([]SplitOutput, error) {
	return NewSplitStrategyFactory(Options{}).Compute(amount, splitType, participants)
}

// ErrInvalidSplit is wrapped by every validation error of this package.
var ErrInvalidSplit = errors.New("invalid split")

var (
	ErrNoParticipants       = fmt.Errorf("%w: at least one participant is required", ErrInvalidSplit)
	ErrNonPositiveAmount    = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidSplit)
	ErrDuplicateParticipant = fmt.Errorf("%w: a participant may appear only once", ErrInvalidSplit)
	ErrMissingPercentage    = fmt.Errorf("%w: percentage value required for all participants", ErrInvalidSplit)
	ErrPercentageOutOfRange = fmt.Errorf("%w: percentage must be above 0 and at most 100", ErrInvalidSplit)
	ErrInvalidPercentages   = fmt.Errorf("%w: percentages must sum to 100", ErrInvalidSplit)
	ErrUnknownSplitType     = fmt.Errorf("%w: unknown split type", ErrInvalidSplit)
	ErrShareBelowOneCent    = fmt.Errorf("%w: amount too small to give every participant a cent", ErrInvalidSplit)
)

// percentageTolerance allows 99.99 to 100.01 under the strict policy
const percentageTolerance = 0.01

// validateCommon checks the rules shared by every strategy
func validateCommon(totalAmount float64, participants []SplitInput) error {
	if !(totalAmount > 0) || math.IsInf(totalAmount, 1) {
		return ErrNonPositiveAmount
	}
	if len(participants) == 0 {
		return ErrNoParticipants
	}

	seen := make(map[int64]struct{}, len(participants))
	for _, p := range participants {
		if _, ok := seen[p.UserID]; ok {
			return fmt.Errorf("%w: user %d", ErrDuplicateParticipant, p.UserID)
		}
		seen[p.UserID] = struct{}{}
	}
	return nil
}

// toCents converts an amount to a whole number of cents, rounding half away from zero
func toCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

func fromCents(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
