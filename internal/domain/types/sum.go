package types

// SumRequest is the wire body accepted by the sum endpoint.
type SumRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Result is the outcome of adding two operands.
type Result struct {
	Sum     string `json:"sum"`
	Grouped bool   `json:"grouped"`
}

// ErrorResponse is returned by the server with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
