package draft

import "fmt"

// GenerationError means a tier failed to produce a parseable structured draft.
type GenerationError struct {
	Tier Tier
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("draft generation failed (%s tier): %v", e.Tier, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// SchemaMismatchError reports a draft that decoded but broke the output schema.
type SchemaMismatchError struct {
	Field  string
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("draft schema mismatch at %s: %s", e.Field, e.Reason)
}
