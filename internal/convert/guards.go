// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "strings"

// Reasons reported for lines rejected before any guard runs.
const (
	ReasonNoMarker = "no-data-marker"
	ReasonUnparsed = "unparsed"
)

// Guard is a named predicate over a data line's content. A matching guard
// leaves the line untouched.
type Guard struct {
	Name  string
	Match func(content string) bool
}

// Guards run in order; the first match wins.
var Guards = []Guard{
	{Name: "empty-value", Match: IsEmptyValue},
	{Name: "script-node", Match: IsScriptNode},
	{Name: "markup-only", Match: IsMarkupOnly},
}

// Skip returns the first guard matching content.
func Skip(content string) (Guard, bool) {
	for _, g := range Guards {
		if g.Match(content) {
			return g, true
		}
	}
	return Guard{}, false
}

// IsEmptyValue reports an empty quoted value: nothing to translate.
func IsEmptyValue(content string) bool {
	return strings.TrimSpace(content) == DoubledQuote
}

// IsScriptNode reports a technical row.
func IsScriptNode(content string) bool {
	return strings.Contains(content, ScriptNode)
}

// IsMarkupOnly reports content that is nothing but action markup, e.g.
// "::shake::".
func IsMarkupOnly(content string) bool {
	s := strings.TrimSpace(content)
	return strings.HasPrefix(s, markupDelim) && strings.HasSuffix(s, markupDelim)
}
