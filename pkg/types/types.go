// Package types contains shared data structures used across the application.
package types

// MatchInterval identifies one pattern match within a line as a half-open
// [Start, End) pair of byte offsets.
type MatchInterval struct {
	Start int
	End   int
}

// LineRecord represents a single matching input line, ready for formatting.
// Text carries the line with its trailing terminator already stripped;
// Matches is ordered by ascending Start and contains no overlaps.
type LineRecord struct {
	Source  string
	Number  int
	Text    string
	Matches []MatchInterval
}
