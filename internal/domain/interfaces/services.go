package interfaces

import (
	"context"

	domaintypes "bigsum/internal/domain/types"
)

// Adder computes the sum of two decimal numerals, locally or remotely.
type Adder interface {
	Sum(ctx context.Context, a, b string) (domaintypes.Result, error)
}
