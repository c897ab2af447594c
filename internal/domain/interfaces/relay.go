package interfaces

import "context"

// RelayClient talks to a remote bigsumd, all with context.
type RelayClient interface {
	Adder
	Health(ctx context.Context) error
}
