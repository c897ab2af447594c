// Package server exposes a domain.Adder over HTTP.
//
// HTTP API
//
//	POST /sum { "a": "1,200", "b": "1,500" }
//	    Return { "sum": "2,700", "grouped": true }.
//
//	GET /sum?a=999&b=1
//	    Same as POST, operands taken from the query string.
//
//	GET /healthz
//	    Return 200 "ok".
//
// Behaviour
//
//   - Responses are JSON. Non-2xx statuses carry { "error": "..." }.
//   - Malformed operands yield 400; undecodable bodies yield 400.
//   - Request bodies are capped at MaxBodyBytes.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
package server
