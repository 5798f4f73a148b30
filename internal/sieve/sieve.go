package sieve

import (
	"errors"
	"fmt"
	"math"
)

// DefaultLimit is the upper bound used by the command line harness.
const DefaultLimit = 389_238_191

var ErrInvalidArgument = errors.New("sieve: invalid argument")

// Primes returns every prime in [0, n] in ascending order using the
// Sieve of Eratosthenes. Negative n is rejected with ErrInvalidArgument.
func Primes(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d must be non-negative", ErrInvalidArgument, n)
	}
	if n < 2 {
		return []int{}, nil
	}

	marked := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		marked[i] = true
	}

	// multiples below i*i were already cleared by a smaller factor
	for i := 2; i*i <= n; i++ {
		if !marked[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			marked[j] = false
		}
	}

	out := make([]int, 0, estimateCount(n))
	for i := 2; i <= n; i++ {
		if marked[i] {
			out = append(out, i)
		}
	}
	return out, nil
}

// estimateCount is an upper bound on pi(n) used to size the result slice:
// pi(n) < 1.25506 n/ln(n) for n > 1.
func estimateCount(n int) int {
	if n < 17 {
		return n/2 + 1
	}
	return int(1.25506*float64(n)/math.Log(float64(n))) + 1
}

// Summary is the count/last report printed after a sieve run.
type Summary struct {
	N     int `json:"n"`
	Count int `json:"count"`
	Last  int `json:"last"`
}

// Summarize builds the report for primes computed up to n. Last is 0 when
// there are no primes.
func Summarize(n int, primes []int) Summary {
	s := Summary{N: n, Count: len(primes)}
	if len(primes) > 0 {
		s.Last = primes[len(primes)-1]
	}
	return s
}
