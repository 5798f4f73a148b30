// Command sieve times a Sieve of Eratosthenes run and reports the number of
// primes found and the largest one.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/primesum/internal/sieve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sieve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", sieve.DefaultLimit, "upper bound (inclusive)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	start := cpuTime()
	primes, err := sieve.Primes(*n)
	used := cpuTime() - start
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	s := sieve.Summarize(*n, primes)
	fmt.Fprintf(stdout, "CPU time: %.4f seconds\n", used.Seconds())
	if s.Count == 0 {
		fmt.Fprintf(stdout, "Found 0 primes up to %d\n", s.N)
		return 0
	}
	fmt.Fprintf(stdout, "Found %d primes. Last prime is %d\n", s.Count, s.Last)
	return 0
}
