// Package split works out what each participant of an expense owes its payer.
package split

import "github.com/shopspring/decimal"

// Share is one participant's fraction of an expense
type Share struct {
	UserID   string
	Fraction float64
}

// Debt is the amount a participant owes the payer, in currency units with cents
type Debt struct {
	UserID string
	Amount decimal.Decimal
}

// Owed divides amount among every share except the payer's. Each debt is
// rounded to cents and the last debtor absorbs the rounding difference, so the
// debts always add up to the part of amount not covered by the payer's share.
func Owed(amount int64, payerID string, shares []Share) []Debt {
	total := decimal.NewFromInt(amount)

	payerFraction := decimal.Zero
	debts := make([]Debt, 0, len(shares))
	calculated := decimal.Zero

	for _, s := range shares {
		fraction := decimal.NewFromFloat(s.Fraction)
		if s.UserID == payerID {
			payerFraction = fraction
			continue
		}
		owed := total.Mul(fraction).Round(2)
		calculated = calculated.Add(owed)
		debts = append(debts, Debt{UserID: s.UserID, Amount: owed})
	}

	if len(debts) == 0 {
		return debts
	}

	expected := total.Mul(decimal.NewFromInt(1).Sub(payerFraction)).Round(2)
	if diff := expected.Sub(calculated); !diff.IsZero() {
		last := &debts[len(debts)-1]
		last.Amount = last.Amount.Add(diff)
	}

	return debts
}
