package svganim

import "strings"

// Subpath is an ordered run of tokens starting at a move-to boundary.
type Subpath []Token

// String reassembles the subpath into path data text with single
// space separators. This is the form written back into a shape's d
// attribute.
func (sp Subpath) String() string {
	parts := make([]string, len(sp))
	for i, t := range sp {
		parts[i] = t.Value
	}
	return strings.Join(parts, " ")
}

// SplitSubpaths groups a token sequence into independent subpaths: a
// new group starts at every absolute or relative move-to that is not
// the first token of its group. Empty input yields no subpaths.
func SplitSubpaths(tokens []Token) []Subpath {
	if len(tokens) == 0 {
		return nil
	}
	var subpaths []Subpath
	var current Subpath
	for _, t := range tokens {
		if t.Kind == TokenLetter && (t.Value == "M" || t.Value == "m") && len(current) > 0 {
			subpaths = append(subpaths, current)
			current = nil
		}
		current = append(current, t)
	}
	if len(current) > 0 {
		subpaths = append(subpaths, current)
	}
	return subpaths
}
