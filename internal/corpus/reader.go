// Package corpus reads batches of puzzles from an "N K" + K-rule-lines
// text format: a scan-lines-accumulate-records reader over a
// bufio.Scanner.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrMalformed is raised by Read when the corpus stream violates the
// "N K" header + K non-blank rule lines shape.
var ErrMalformed = errors.NewKind("corpus: malformed entry: %s")

// PuzzleSpec is one raw corpus entry: a puzzle size and its rule
// strings, not yet parsed into algebra.Rule values. Parsing is left to
// the caller so that a single ill-formed rule fails that one puzzle
// without corrupting the whole read.
type PuzzleSpec struct {
	N     int
	Rules []string
}

// Read parses every puzzle entry from r: each entry is a header line
// "N K" (N variables, K rules) followed by K non-blank rule-string
// lines. Blank lines between and within entries are ignored, matching
// the original reader's line.strip() + truthiness check.
func Read(r io.Reader) ([]PuzzleSpec, error) {
	var specs []PuzzleSpec
	scanner := bufio.NewScanner(r)

	var current *PuzzleSpec
	var wantRules int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if current == nil {
			n, k, err := parseHeader(line)
			if err != nil {
				return nil, err
			}
			current = &PuzzleSpec{N: n}
			wantRules = k
			if wantRules == 0 {
				specs = append(specs, *current)
				current = nil
			}
			continue
		}
		current.Rules = append(current.Rules, line)
		if len(current.Rules) == wantRules {
			specs = append(specs, *current)
			current = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		return nil, ErrMalformed.New(fmt.Sprintf("entry ended with %d of %d rules", len(current.Rules), wantRules))
	}
	return specs, nil
}

func parseHeader(line string) (n, k int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, ErrMalformed.New("expected \"N K\" header, got: " + line)
	}
	n, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, ErrMalformed.New("non-integer N in header: " + line)
	}
	k, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, ErrMalformed.New("non-integer K in header: " + line)
	}
	return n, k, nil
}
