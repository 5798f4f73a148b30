package twosum

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("no two numbers add up to the target")
	ErrUnknownMethod = errors.New("twosum: unknown method")
)

// Pair holds the two indices into nums whose values sum to the target.
type Pair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Indices returns the pair as a two element slice.
func (p Pair) Indices() []int { return []int{p.I, p.J} }

// complement returns target-v. ok is false when the subtraction overflows,
// in which case no int can complete the pair.
func complement(target, v int) (c int, ok bool) {
	c = target - v
	if (v < 0 && c < target) || (v > 0 && c > target) {
		return 0, false
	}
	return c, true
}

// BruteForce checks every pair i<j, i-major, and returns the first match.
func BruteForce(nums []int, target int) (Pair, error) {
	for i := 0; i < len(nums); i++ {
		c, ok := complement(target, nums[i])
		if !ok {
			continue
		}
		for j := i + 1; j < len(nums); j++ {
			if nums[j] == c {
				return Pair{I: i, J: j}, nil
			}
		}
	}
	return Pair{}, ErrNotFound
}

// Find walks nums in order and returns i together with the first index
// anywhere in nums holding target-nums[i].
//
// J is the first occurrence over the whole slice, so it can equal I when
// nums[i]*2 == target. It is never less than I. For inputs with such a
// self pairing the result can differ from BruteForce.
func Find(nums []int, target int) (Pair, error) {
	first := make(map[int]int, len(nums))
	for i, v := range nums {
		if _, ok := first[v]; !ok {
			first[v] = i
		}
	}
	for i, v := range nums {
		c, ok := complement(target, v)
		if !ok {
			continue
		}
		if j, ok := first[c]; ok {
			return Pair{I: i, J: j}, nil
		}
	}
	return Pair{}, ErrNotFound
}

// Method selects a search strategy.
type Method string

const (
	MethodBrute     Method = "brute"
	MethodOptimized Method = "optimized"
)

// ParseMethod maps a name to a Method. Empty selects MethodOptimized.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", MethodOptimized:
		return MethodOptimized, nil
	case MethodBrute:
		return MethodBrute, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Solve runs the chosen strategy.
func Solve(m Method, nums []int, target int) (Pair, error) {
	switch m {
	case MethodBrute:
		return BruteForce(nums, target)
	case MethodOptimized:
		return Find(nums, target)
	}
	return Pair{}, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
}
