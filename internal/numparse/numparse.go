// Package numparse turns console lines into the integer inputs used by the
// two-sum tools.
package numparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrEmpty = errors.New("numparse: no numbers given")

// Ints parses whitespace separated integers.
func Ints(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("numparse: token %d %q is not an integer", i+1, f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Int parses a single integer, ignoring surrounding whitespace.
func Int(line string) (int, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, ErrEmpty
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("numparse: %q is not an integer", s)
	}
	return n, nil
}
