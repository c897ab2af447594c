// Package relay provides an HTTP implementation of the domain.RelayClient
// interface used by bigsum.
//
// The relay is a bigsumd instance (see internal/server). Supported operations:
//   - Adding two operands remotely (Sum).
//   - Checking the relay is up (Health).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// full URL, and status text to aid diagnostics.
package relay
