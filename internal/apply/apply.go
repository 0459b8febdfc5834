// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apply grafts converted lines from a backup dump into a target dump.
//
// The two files are expected to be structurally identical. The backup holds
// raw Japanese content in a broken format; the target holds the correct
// structure. For each line in the requested range, an eligible backup line
// is converted and replaces the target line at the same position. All other
// target lines are kept as they are.
package apply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/locgraft/internal/convert"
	"github.com/pdiddy/locgraft/pkg/types"
)

var (
	// ErrInvalidRange is returned when the range does not start at a
	// positive line number.
	ErrInvalidRange = errors.New("invalid line range")

	// ErrTargetTooShort is returned when the target has no line at a
	// position that would be replaced.
	ErrTargetTooShort = errors.New("target file has fewer lines than source")
)

// Check is a named eligibility predicate over a backup line.
type Check struct {
	Name string
	Pass func(line string) bool
}

// Checks must all pass for a backup line to be grafted. A line that already
// contains a doubled quote is taken to be translated.
var Checks = []Check{
	{Name: "no-data-marker", Pass: func(l string) bool { return strings.Contains(l, convert.DataMarker) }},
	{Name: "already-doubled", Pass: func(l string) bool { return !strings.Contains(l, convert.DoubledQuote) }},
	{Name: "script-node", Pass: func(l string) bool { return !strings.Contains(l, convert.ScriptNode) }},
}

// Eligible reports whether a backup line should be converted into the
// target. When it is not, reason names the first failed check.
func Eligible(line string) (reason string, ok bool) {
	for _, c := range Checks {
		if !c.Pass(line) {
			return c.Name, false
		}
	}
	return "", true
}

// Change records one target line replaced during a run.
type Change struct {
	// Line is the 1-based position.
	Line   int
	Before string
	After  string
}

// Summary holds the outcome of applying a range.
type Summary struct {
	Range types.LineRange
	// Considered is the number of positions inside the clamped range.
	Considered int
	Converted  int
	Skipped    int
	Changes    []Change
	// Reasons counts skipped lines by the check that rejected them.
	Reasons map[string]int
}

// Lines replaces eligible target lines in place and returns what changed.
// The range is clamped to the source length; an end past the source is not
// an error.
func Lines(source, target []string, r types.LineRange) (Summary, error) {
	sum := Summary{Range: r, Reasons: map[string]int{}}
	if !r.Valid() {
		return sum, fmt.Errorf("%w: start line %d", ErrInvalidRange, r.Start)
	}

	lo, hi := r.Clamp(len(source))
	for i := lo; i < hi; i++ {
		sum.Considered++
		src := source[i]
		if reason, ok := Eligible(src); !ok {
			sum.Skipped++
			sum.Reasons[reason]++
			continue
		}
		if i >= len(target) {
			return sum, fmt.Errorf("%w: line %d", ErrTargetTooShort, i+1)
		}
		converted := convert.Line(src)
		sum.Changes = append(sum.Changes, Change{Line: i + 1, Before: target[i], After: converted})
		target[i] = converted
		sum.Converted++
	}
	return sum, nil
}

// Files reads the source and target named in cfg, applies cfg.Range, and
// writes the target back unless cfg.DryRun is set. The confirmation line is
// printed to w; per-line status goes to os.Stderr when cfg.Verbose is set.
func Files(ctx context.Context, cfg types.ApplyConfig, w io.Writer) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	source, err := ReadLines(cfg.SourcePath)
	if err != nil {
		return Summary{}, fmt.Errorf("reading backup file %s: %w", cfg.SourcePath, err)
	}
	target, err := ReadLines(cfg.TargetPath)
	if err != nil {
		return Summary{}, fmt.Errorf("reading target file %s: %w", cfg.TargetPath, err)
	}

	sum, err := Lines(source, target, cfg.Range)
	if err != nil {
		return sum, err
	}

	if cfg.Verbose {
		PrintStatus(os.Stderr, source, sum)
	}

	if cfg.DryRun {
		PrintChanges(w, sum)
		fmt.Fprintf(w, "Dry run: %d line(s) would change in %s\n", sum.Converted, cfg.TargetPath)
		return sum, nil
	}

	if err := WriteLines(cfg.TargetPath, target); err != nil {
		return sum, fmt.Errorf("writing target file %s: %w", cfg.TargetPath, err)
	}

	fmt.Fprintf(w, "Applied translations from lines %d to %d\n", cfg.Range.Start, cfg.Range.End)
	return sum, nil
}

// PrintChanges writes a before/after pair for each replaced line.
func PrintChanges(w io.Writer, sum Summary) {
	for _, c := range sum.Changes {
		fmt.Fprintf(w, "line %d:\n  - %s  + %s", c.Line, ensureNewline(c.Before), ensureNewline(c.After))
	}
}

// PrintStatus writes one status line per considered position.
func PrintStatus(w io.Writer, source []string, sum Summary) {
	lo, hi := sum.Range.Clamp(len(source))
	changed := make(map[int]bool, len(sum.Changes))
	for _, c := range sum.Changes {
		changed[c.Line] = true
	}
	for i := lo; i < hi; i++ {
		if changed[i+1] {
			fmt.Fprintf(w, "line %d: converted\n", i+1)
			continue
		}
		reason, _ := Eligible(source[i])
		fmt.Fprintf(w, "line %d: skipped (%s)\n", i+1, reason)
	}
	fmt.Fprintf(w, "\nSummary: %d converted, %d skipped (considered: %d)\n",
		sum.Converted, sum.Skipped, sum.Considered)
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
