// Package sum implements domain.Adder on top of internal/decimal.
//
// Arithmetic runs locally or is delegated to a remote Adder. The service
// optionally enforces strict grouping, so "1,23" is rejected
// instead of being read as 123, and records every successful computation in
// a domain.HistoryStore when one is supplied.
package sum
