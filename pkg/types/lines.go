package types

import "fmt"

// LineRange is a closed interval of 1-based line positions.
type LineRange struct {
	// Start is the first line to consider (1-based).
	Start int `json:"start" yaml:"start"`

	// End is the last line to consider (1-based, inclusive). It may exceed
	// the file length.
	End int `json:"end" yaml:"end"`
}

// Clamp returns the zero-based half-open index interval [lo, hi) covered by
// the range in a file of n lines. An End past the file is truncated to n.
// If the range is empty, lo >= hi.
func (r LineRange) Clamp(n int) (lo, hi int) {
	lo = r.Start - 1
	hi = r.End
	if hi > n {
		hi = n
	}
	return lo, hi
}

// Valid reports whether Start is a positive line number.
func (r LineRange) Valid() bool {
	return r.Start >= 1
}

func (r LineRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
