package format

import (
	"strings"

	"github.com/pverhoeven/grepline/pkg/types"
)

const (
	// DefaultHighlightColor is the SGR code used when none is configured
	// (bright magenta).
	DefaultHighlightColor = "95"

	highlightReset = "\x1b[0m"
)

// ColorFormatter prints matching lines as "source:lineNumber:line" with each
// matched span wrapped in ANSI highlight sequences.
type ColorFormatter struct {
	start string
}

// NewColorFormatter creates a color formatter highlighting matches with the
// given SGR code. An empty code selects DefaultHighlightColor.
func NewColorFormatter(sgrCode string) *ColorFormatter {
	if sgrCode == "" {
		sgrCode = DefaultHighlightColor
	}
	return &ColorFormatter{start: "\x1b[" + sgrCode + "m"}
}

// Format renders the record with highlighted match spans. Unmatched spans
// are emitted verbatim; highlight markers wrap only the matched spans, in
// interval order.
func (f *ColorFormatter) Format(rec types.LineRecord) string {
	var b strings.Builder
	b.WriteString(linePrefix(rec))

	lastEnd := 0
	for _, m := range rec.Matches {
		b.WriteString(rec.Text[lastEnd:m.Start])
		b.WriteString(f.start)
		b.WriteString(rec.Text[m.Start:m.End])
		b.WriteString(highlightReset)
		lastEnd = m.End
	}
	b.WriteString(rec.Text[lastEnd:])

	return b.String()
}
