// search/filter.go

// Package search narrows a list of groups down to the ones matching a
// free-text query.
package search

import (
	"strings"

	"github.com/ViniZap4/groupboard/domain"
)

// TagPrefix restricts a query token to matching tags only.
const TagPrefix = "tag:"

// Filter returns the groups that match every whitespace-separated token of
// query, in their original order. An empty query matches everything.
//
// A token matches a group when the name, the description or any tag
// contains it, ignoring case. A token of the form "tag:x" only looks at
// tags.
func Filter(query string, groups []domain.Group) []domain.Group {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return groups
	}

	matched := make([]domain.Group, 0, len(groups))
	for _, g := range groups {
		if matchesAll(g, tokens) {
			matched = append(matched, g)
		}
	}
	return matched
}

func matchesAll(g domain.Group, tokens []string) bool {
	for _, token := range tokens {
		if !matches(g, token) {
			return false
		}
	}
	return true
}

// matches expects token to be lower-cased already.
func matches(g domain.Group, token string) bool {
	if tag, ok := strings.CutPrefix(token, TagPrefix); ok {
		return anyTagContains(g.Tags, tag)
	}
	return strings.Contains(strings.ToLower(g.Name), token) ||
		strings.Contains(strings.ToLower(g.Description), token) ||
		anyTagContains(g.Tags, token)
}

func anyTagContains(tags []string, s string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), s) {
			return true
		}
	}
	return false
}
