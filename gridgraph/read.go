package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadGrid parses a grid from text: one row per line, cells separated by
// whitespace. Blank lines and lines starting with '#' are skipped.
// Rows of a single token made only of digits ("0110") are split per character.
// Shape errors (ErrEmptyGrid, ErrNonRectangular) are left to NewGridGraph.
func ReadGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 1 && len(fields[0]) > 1 && isDigits(fields[0]) {
			fields = strings.Split(fields[0], "")
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: line %d: bad cell %q: %w", line, f, err)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return grid, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
