// Command twosum checks both two-sum strategies against a known input, then
// reads a list of numbers and a target from stdin and prints the matching
// indices.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/example/primesum/internal/numparse"
	"github.com/example/primesum/internal/twosum"
)

var (
	checkNums   = []int{2, 4, 12, 18, 3, 57, 182}
	checkTarget = 60
	checkWant   = twosum.Pair{I: 4, J: 5}
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func selfCheck() error {
	bf, err := twosum.BruteForce(checkNums, checkTarget)
	if err != nil {
		return fmt.Errorf("brute force self check: %w", err)
	}
	op, err := twosum.Find(checkNums, checkTarget)
	if err != nil {
		return fmt.Errorf("optimized self check: %w", err)
	}
	if bf != checkWant || op != checkWant {
		return fmt.Errorf("self check mismatch: brute=%v optimized=%v want=%v", bf, op, checkWant)
	}
	return nil
}

func readLine(sc *bufio.Scanner) (string, error) {
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	if err := selfCheck(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	fmt.Fprint(stdout, "Enter a list of numbers separated by spaces: ")
	line, err := readLine(sc)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	nums, err := numparse.Ints(line)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprint(stdout, "Enter the target: ")
	line, err = readLine(sc)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	target, err := numparse.Int(line)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	p, err := twosum.Find(nums, target)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "The indices of the two numbers that add up to %d are [%d, %d]\n", target, p.I, p.J)
	return 0
}
