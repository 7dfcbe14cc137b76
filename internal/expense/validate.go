package expense

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/quicksplit/internal/draft"
)

var (
	// splitTolerance is the allowed distance between the split sum and 1.
	splitTolerance = decimal.New(1, -4)

	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

// roundAmount rounds an extracted amount half away from zero to whole units.
func roundAmount(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(0)
}

// wholeUnits is the stored amount. Only call it on a validated candidate.
func wholeUnits(amount float64) int64 {
	return roundAmount(amount).IntPart()
}

// Validate checks a candidate and returns the first rule it breaks.
//
// The order is fixed: amount, payer present, membership, split sum. After
// those come description, single payer and per-member split range.
func Validate(c *Candidate) error {
	if rounded := roundAmount(c.Expense.Amount); !rounded.IsPositive() || rounded.GreaterThan(maxAmount) {
		return &InvalidAmountError{Amount: c.Expense.Amount}
	}

	payers := 0
	for _, m := range c.Members {
		if m.Role == draft.RolePayer {
			payers++
		}
	}
	if payers == 0 {
		return &MissingPayerError{}
	}

	if len(c.Members) < 1 {
		return &EmptyMembershipError{}
	}

	sum := decimal.Zero
	for _, m := range c.Members {
		sum = sum.Add(decimal.NewFromFloat(m.Split))
	}
	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(splitTolerance) {
		return &SplitMismatchError{Sum: sum.InexactFloat64()}
	}

	if strings.TrimSpace(c.Expense.Description) == "" {
		return &EmptyDescriptionError{}
	}
	if payers > 1 {
		return &MultiplePayersError{Count: payers}
	}
	for _, m := range c.Members {
		if m.Split < 0 || m.Split > 1 {
			return &SplitOutOfRangeError{Name: m.Name, Split: m.Split}
		}
	}

	return nil
}
