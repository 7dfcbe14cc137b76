//go:generate mockery --name Generator --output mocks --outpkg mocks

// Package draft turns free text into structured expense drafts using an
// external text-generation model.
package draft

import "context"

// Generator produces a structured draft from free text for a given tier.
// Implementations must give every tier the same schema and grounding.
type Generator interface {
	Generate(ctx context.Context, text string, tier Tier) (*Draft, error)
}

// Grounding holds the extraction rules sent with every request, whatever the tier.
const Grounding = `You extract a single shared expense from a short message written by a group member.
Return JSON that matches the provided schema exactly.

Rules:
- expense.description: a short title-cased label for what was bought. Do not include people's names, dates or amounts.
- expense.amount: the total amount paid, as a number, without currency symbols.
- members: everyone who shares the cost, including the payer.
- Use the name "USER" for the person who wrote the message. Always include USER unless the message explicitly says they are not involved.
- role: "payer" for the single person who paid, "participant" for everyone else.
- split: each member's fraction of the total, between 0 and 1. Splits must add up to 1.
- When the message does not say how to split, split equally between all members.
- Never give a listed member who is not the payer a split of exactly 0.
- Copy other members' names as written in the message; do not invent surnames.`
