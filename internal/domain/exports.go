package domain

import (
	interfaces "bigsum/internal/domain/interfaces"
	types "bigsum/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SumRequest    = types.SumRequest
	Result        = types.Result
	ErrorResponse = types.ErrorResponse
	Record        = types.Record
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Adder        = interfaces.Adder
	RelayClient  = interfaces.RelayClient
	HistoryStore = interfaces.HistoryStore
)
