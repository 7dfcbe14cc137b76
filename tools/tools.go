//go:build tools

// Package tools pins the code generators used by go:generate.
package tools

import (
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
)
