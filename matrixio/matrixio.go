// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvstrassen/matrix"
)

// Sentinel errors returned by Parse and ReadFile.
var (
	// ErrEmptyInput indicates that the input contained no integers.
	ErrEmptyInput = errors.New("matrixio: input contains no integers")

	// ErrNotSquare indicates that the integer count cannot form an n×n matrix.
	ErrNotSquare = errors.New("matrixio: element count is not a perfect square")

	// ErrSyntax indicates a token that is not a decimal int32.
	ErrSyntax = errors.New("matrixio: invalid integer")
)

// delimiters are rewritten to blanks before tokenizing.
var delimiters = strings.NewReplacer("{", " ", "}", " ", ",", " ")

// Parse reads every integer from r and arranges them into a square matrix.
// Implementation:
//   - Stage 1: scan lines, replace delimiters, split into fields.
//   - Stage 2: parse each field as int32 (ErrSyntax with line/column on failure).
//   - Stage 3: require a perfect-square count and build the matrix row-major.
//
// Complexity: O(len(input)).
func Parse(r io.Reader) (*matrix.Square, error) {
	var values []matrix.Element

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		for col, tok := range strings.Fields(delimiters.Replace(sc.Text())) {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d, token %d %q: %w", line, col+1, tok, ErrSyntax)
			}
			values = append(values, matrix.Element(v))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}

	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	n := isqrt(len(values))
	if n*n != len(values) {
		return nil, fmt.Errorf("%d elements: %w", len(values), ErrNotSquare)
	}

	return matrix.NewFromFlat(n, values)
}

// ReadFile opens path and parses it with Parse. Errors carry the path.
func ReadFile(path string) (*matrix.Square, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Write prints m as a header line followed by one tab-separated row per line:
//
//	A Matrix (2x2):
//	1	2
//	3	4
func Write(w io.Writer, name string, m *matrix.Square) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio.Write: %w", err)
	}
	bw := bufio.NewWriter(w)
	n := m.Size()
	fmt.Fprintf(bw, "%s Matrix (%dx%d):\n", name, n, n)
	for _, row := range m.Rows() {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(strconv.FormatInt(int64(v), 10))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// isqrt returns floor(sqrt(x)) for x >= 0, corrected for float rounding.
func isqrt(x int) int {
	r := int(math.Sqrt(float64(x)))
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}

	return r
}
