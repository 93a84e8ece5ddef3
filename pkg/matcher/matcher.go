// Package matcher compiles search patterns and locates their occurrences
// within single lines of text.
package matcher

import (
	"fmt"
	"regexp"

	"github.com/pverhoeven/grepline/pkg/types"
)

// Pattern is a compiled search pattern. It is immutable after Compile and
// safe to share across sources for the lifetime of one run.
type Pattern struct {
	expr     string
	compiled *regexp.Regexp
}

// Compile validates and compiles a pattern expression. An empty expression
// is rejected, as is anything the regexp dialect cannot parse. Compilation
// happens once, before any source is read.
func Compile(expr string) (*Pattern, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", expr, err)
	}
	return &Pattern{expr: expr, compiled: re}, nil
}

// String returns the original pattern expression.
func (p *Pattern) String() string {
	return p.expr
}

// FindMatches returns all non-overlapping matches of the pattern in line,
// scanned left to right, as intervals sorted by ascending start offset.
// An empty line yields no matches. Zero-width matches are dropped so every
// returned interval satisfies start < end.
func (p *Pattern) FindMatches(line string) []types.MatchInterval {
	indexes := p.compiled.FindAllStringIndex(line, -1)
	if len(indexes) == 0 {
		return nil
	}

	intervals := make([]types.MatchInterval, 0, len(indexes))
	for _, m := range indexes {
		if m[0] == m[1] {
			continue
		}
		intervals = append(intervals, types.MatchInterval{Start: m[0], End: m[1]})
	}
	return intervals
}
