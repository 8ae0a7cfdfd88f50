// Package connectivity reads the classic dynamic-connectivity input and answers it
// with a disjoint set: given n sites and a stream of pairs "p q", report which
// pairs connect two previously separate components.
//
// Input format:
//
//	# comment
//	10        <- number of sites n
//	4 3       <- pair p q
//	3 8 7     <- pair with an optional integer weight (used by MST clients)
//
// Blank lines and lines starting with '#' are ignored.
package connectivity

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/unionfind/kruskal"
)

// Sentinel errors for input parsing.
var (
	// ErrMissingSize indicates the input holds no site count.
	ErrMissingSize = errors.New("connectivity: missing site count")
	// ErrBadToken indicates a token that is not a valid integer, or a site count outside [0, MaxSites].
	ErrBadToken = errors.New("connectivity: bad token")
	// ErrIncompletePair indicates a pair line without exactly two or three tokens.
	ErrIncompletePair = errors.New("connectivity: pair needs two sites and an optional weight")
	// ErrPairOutOfRange indicates a site outside [0, n).
	ErrPairOutOfRange = errors.New("connectivity: site out of range")
)

// MaxSites caps the site count accepted by Parse, bounding the memory Solve allocates.
const MaxSites = 1 << 24

// DefaultWeight is assigned to pairs without an explicit weight.
const DefaultWeight int64 = 1

// Pair is one "p q [w]" input line.
type Pair struct {
	P, Q   int
	Weight int64
	// Line is the 1-based input line the pair came from.
	Line int
}

// Problem is a parsed input: n sites and the pairs in input order.
type Problem struct {
	N     int
	Pairs []Pair
}

// Parse reads a Problem from r. Every site is validated against [0, n),
// and n itself must not exceed MaxSites.
func Parse(r io.Reader) (*Problem, error) {
	var (
		prob    *Problem
		sc      = bufio.NewScanner(r)
		lineNum = 0
	)
	for sc.Scan() {
		lineNum++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if prob == nil {
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: expected a single site count", ErrBadToken, lineNum)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: site count %q", ErrBadToken, lineNum, fields[0])
			}
			if n > MaxSites {
				return nil, fmt.Errorf("%w: line %d: site count %d exceeds %d", ErrBadToken, lineNum, n, MaxSites)
			}
			prob = &Problem{N: n}
			continue
		}

		pair, err := parsePair(fields, lineNum, prob.N)
		if err != nil {
			return nil, err
		}
		prob.Pairs = append(prob.Pairs, pair)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("connectivity: read input: %w", err)
	}
	if prob == nil {
		return nil, ErrMissingSize
	}

	return prob, nil
}

// parsePair converts the fields of one pair line.
func parsePair(fields []string, line, n int) (Pair, error) {
	if len(fields) != 2 && len(fields) != 3 {
		return Pair{}, fmt.Errorf("%w: line %d: got %d tokens", ErrIncompletePair, line, len(fields))
	}
	ints := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Pair{}, fmt.Errorf("%w: line %d: %q", ErrBadToken, line, f)
		}
		ints[i] = v
	}
	p := Pair{P: int(ints[0]), Q: int(ints[1]), Weight: DefaultWeight, Line: line}
	if len(ints) == 3 {
		p.Weight = ints[2]
	}
	for _, s := range [2]int64{ints[0], ints[1]} {
		if s < 0 || s >= int64(n) {
			return Pair{}, fmt.Errorf("%w: line %d: site %d, n=%d", ErrPairOutOfRange, line, s, n)
		}
	}

	return p, nil
}

// Edges converts the pairs to weighted MST edges, in input order.
func (p *Problem) Edges() []kruskal.Edge {
	edges := make([]kruskal.Edge, len(p.Pairs))
	for i, pr := range p.Pairs {
		edges[i] = kruskal.Edge{From: pr.P, To: pr.Q, Weight: pr.Weight}
	}

	return edges
}
