//go:build tools

// Package tools pins the code generators behind go:generate (wire, sqlc, swag, mockgen) and air.
package tools

import (
	_ "github.com/air-verse/air"
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "go.uber.org/mock/mockgen"
)
