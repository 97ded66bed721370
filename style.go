package svganim

import (
	"sort"
	"strings"
)

// ParseStyle splits a style attribute into its declarations. Parts
// without a colon are dropped.
func ParseStyle(style string) map[string]string {
	result := make(map[string]string)
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		result[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return result
}

// SerializeStyle writes declarations back out with the keys in
// lexicographic order, so repeated rewrites of the same attribute stay
// byte for byte identical regardless of the original declaration
// order.
func SerializeStyle(styles map[string]string) string {
	keys := make([]string, 0, len(styles))
	for key := range styles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = key + ": " + styles[key]
	}
	return strings.Join(parts, "; ")
}
