package types

// Record is one persisted computation.
type Record struct {
	A          string `json:"a"`
	B          string `json:"b"`
	Sum        string `json:"sum"`
	CreatedUTC int64  `json:"created_utc"`
}
