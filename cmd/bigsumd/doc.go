// Package main runs bigsumd, the HTTP front end for the decimal adder. The
// bigsum CLI talks to it when --relay is set.
//
// See internal/server for the HTTP API. Configuration comes from the
// environment (BIGSUM_LISTEN, BIGSUM_LOG_LEVEL, BIGSUM_STRICT_GROUPING); the
// -listen flag overrides BIGSUM_LISTEN. The default listen address is :8080.
//
// The daemon is stateless: it keeps no history and can be restarted freely.
// SIGINT and SIGTERM trigger a graceful shutdown.
package main
