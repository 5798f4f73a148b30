package types

import "time"

// PrimesResponse is the JSON response for the primes endpoint.
type PrimesResponse struct {
	N         int    `json:"n"`
	Count     int    `json:"count"`
	Last      int    `json:"last"`
	Primes    []int  `json:"primes,omitempty"`
	Source    string `json:"source"` // "cache" or "computed"
	ElapsedMS int64  `json:"elapsed_ms"`
}

// TwoSumRequest is the incoming payload for a two-sum search.
type TwoSumRequest struct {
	Nums   []int  `json:"nums"`
	Target int    `json:"target"`
	Method string `json:"method"` // "brute" or "optimized", default optimized
}

// TwoSumResponse reports the matching indices and the values at them.
type TwoSumResponse struct {
	Method  string `json:"method"`
	Indices []int  `json:"indices"`
	Values  []int  `json:"values"`
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Millis converts a duration to whole milliseconds, rounding sub-millisecond
// durations up so a finished computation never reports 0.
func Millis(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms == 0 {
		return 1
	}
	return ms
}
