// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert rewrites Japanese-bracketed dialogue strings into the
// engine's doubled-quote convention, one dump line at a time.
//
// A data line looks like
//
//	  12   string data = "「テスト」"
//
// and becomes
//
//	  12   string data = ""テスト""
//
// Lines that are not data lines, or are ambiguous, pass through unchanged.
package convert

import (
	"regexp"
	"strings"
)

const (
	// DataMarker identifies a line that assigns a string value.
	DataMarker = "string data = "

	// DoubledQuote opens and closes a converted value.
	DoubledQuote = `""`

	// ScriptNode marks technical rows that carry no dialogue.
	ScriptNode = "Script Node"

	markupDelim = "::"
)

var (
	dataLineRe = regexp.MustCompile(`^(\s+\d+\s+string data = )(.*)`)

	// Go's \w is ASCII only; allow any letter or digit in markup names.
	markupPrefixRe = regexp.MustCompile(`^(::[\p{L}\p{N}_]+:: )`)

	bracketStripper = strings.NewReplacer("「", "", "」", "", "『", "", "』", "")
)

// DataLine is a line split at the assignment marker.
type DataLine struct {
	// Prefix is everything up to and including the marker, with the
	// original indentation and numeric key.
	Prefix string
	// Content is the assigned value without the line terminator.
	Content string
}

// Parse splits line into its prefix and content. ok is false when the line
// does not have the `<ws><int><ws>string data = <value>` shape.
func Parse(line string) (DataLine, bool) {
	m := dataLineRe.FindStringSubmatch(line)
	if m == nil {
		return DataLine{}, false
	}
	return DataLine{Prefix: m[1], Content: m[2]}, true
}

// Result describes what Explain did with a line.
type Result struct {
	Output string
	// Reason is the name of the guard that left the line unchanged, or
	// empty when the line was converted.
	Reason string
}

// Converted reports whether the line was rewritten.
func (r Result) Converted() bool {
	return r.Reason == ""
}

// Line converts a single dump line. See Explain.
func Line(line string) string {
	return Explain(line).Output
}

// Explain converts line and reports which guard, if any, short-circuited.
// It never fails: input that does not fit the expected shape is returned
// as is.
func Explain(line string) Result {
	if !strings.Contains(line, DataMarker) {
		return Result{Output: line, Reason: ReasonNoMarker}
	}
	dl, ok := Parse(line)
	if !ok {
		return Result{Output: line, Reason: ReasonUnparsed}
	}
	if g, skip := Skip(dl.Content); skip {
		return Result{Output: line, Reason: g.Name}
	}

	content := dl.Content
	markup := ""
	if m := markupPrefixRe.FindString(content); m != "" {
		markup = m
		content = content[len(m):]
	}

	content = bracketStripper.Replace(unquote(strings.TrimSpace(content)))

	var b strings.Builder
	b.Grow(len(dl.Prefix) + len(markup) + len(content) + 5)
	b.WriteString(dl.Prefix)
	b.WriteString(markup)
	b.WriteString(DoubledQuote)
	b.WriteString(content)
	b.WriteString(DoubledQuote)
	b.WriteByte('\n')
	return Result{Output: b.String()}
}

// unquote strips one layer of quoting. A value already in doubled form has
// the doubled layer removed so converted output converts to itself.
func unquote(s string) string {
	if len(s) >= 2*len(DoubledQuote) && strings.HasPrefix(s, DoubledQuote) && strings.HasSuffix(s, DoubledQuote) {
		return s[len(DoubledQuote) : len(s)-len(DoubledQuote)]
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		if len(s) == 1 {
			return ""
		}
		return s[1 : len(s)-1]
	}
	return s
}
