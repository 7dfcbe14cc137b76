package expense

import (
	"slices"

	"github.com/fkhayef/quicksplit/internal/draft"
)

// Reconcile merges the two tier drafts. The expense fields always come from
// the fast draft and the members always come from the quality draft; the
// overlapping fields are never blended.
func Reconcile(fast, quality *draft.Draft) *Candidate {
	return &Candidate{
		Expense: fast.Expense,
		Members: slices.Clone(quality.Members),
	}
}
