package format

import "github.com/pverhoeven/grepline/pkg/types"

// UnderscoreFormatter prints matching lines as "source:lineNumber:line"
// followed by a second line of equal length carrying '^' under every matched
// character.
type UnderscoreFormatter struct{}

// NewUnderscoreFormatter creates a new underscore formatter.
func NewUnderscoreFormatter() *UnderscoreFormatter {
	return &UnderscoreFormatter{}
}

// Format renders the record as two physical lines. Caret positions are
// shifted by the prefix length so they line up under the matched spans.
func (f *UnderscoreFormatter) Format(rec types.LineRecord) string {
	prefix := linePrefix(rec)

	carets := make([]byte, len(prefix)+len(rec.Text))
	for i := range carets {
		carets[i] = ' '
	}
	for _, m := range rec.Matches {
		for i := m.Start + len(prefix); i < m.End+len(prefix); i++ {
			carets[i] = '^'
		}
	}

	return prefix + rec.Text + "\n" + string(carets)
}
