// Package loader parses the text inputs accepted by the bestpath command:
// occupancy grids and weighted edge lists.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Sentinel errors for input parsing.
var (
	// ErrFormat indicates a missing or non-integer token.
	ErrFormat = errors.New("loader: malformed input")
	// ErrDimensions indicates a non-positive grid size or node count.
	ErrDimensions = errors.New("loader: invalid dimensions")
	// ErrEndpoint indicates a start or goal off the grid or on an obstacle.
	ErrEndpoint = errors.New("loader: invalid endpoint")
)

// tokens reads whitespace-separated integers and remembers how many it has
// consumed, for error messages.
type tokens struct {
	sc   *bufio.Scanner
	read int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next returns the next integer. what names the value for error messages.
func (t *tokens) next(what string) (int, error) {
	v, ok, err := t.optional(what)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of input, want %s (token %d)", ErrFormat, what, t.read+1)
	}

	return v, nil
}

// optional is next for a value that may be absent: ok is false at a clean
// end of input.
func (t *tokens) optional(what string) (v int, ok bool, err error) {
	if !t.sc.Scan() {
		if err = t.sc.Err(); err != nil {
			return 0, false, fmt.Errorf("%w: reading %s: %w", ErrFormat, what, err)
		}
		return 0, false, nil
	}
	t.read++
	if v, err = strconv.Atoi(t.sc.Text()); err != nil {
		return 0, false, fmt.Errorf("%w: %s: %q is not an integer (token %d)", ErrFormat, what, t.sc.Text(), t.read)
	}

	return v, true, nil
}
