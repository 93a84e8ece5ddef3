package format

import "github.com/pverhoeven/grepline/pkg/types"

// DefaultFormatter prints matching lines as "source:lineNumber:line" with
// no visual distinction of the matched spans.
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new default formatter.
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// Format renders the record as a single plain output line.
func (f *DefaultFormatter) Format(rec types.LineRecord) string {
	return linePrefix(rec) + rec.Text
}
