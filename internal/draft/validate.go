package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Parse decodes a model response into a Draft and checks it against the schema.
func Parse(content []byte) (*Draft, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var d Draft
	if err := dec.Decode(&d); err != nil {
		return nil, &SchemaMismatchError{Field: "$", Reason: err.Error()}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &SchemaMismatchError{Field: "$", Reason: "unexpected data after the draft object"}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks the structural rules of the output schema. Financial rules
// (positive amount, split sum, payer present) are not checked here: they apply
// to the reconciled candidate, not to a single tier's draft.
func (d *Draft) Validate() error {
	if len(d.Members) == 0 {
		return &SchemaMismatchError{Field: "members", Reason: "must not be empty"}
	}

	users := 0
	for i, m := range d.Members {
		field := fmt.Sprintf("members[%d]", i)
		if strings.TrimSpace(m.Name) == "" {
			return &SchemaMismatchError{Field: field + ".name", Reason: "must not be empty"}
		}
		if m.Role != RolePayer && m.Role != RoleParticipant {
			return &SchemaMismatchError{Field: field + ".role", Reason: fmt.Sprintf("unknown role %q", m.Role)}
		}
		if m.Name == UserSentinel {
			users++
		}
	}
	if users > 1 {
		return &SchemaMismatchError{Field: "members", Reason: fmt.Sprintf("%s appears %d times", UserSentinel, users)}
	}
	return nil
}
