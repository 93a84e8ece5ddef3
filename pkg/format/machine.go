package format

import (
	"fmt"
	"strings"

	"github.com/pverhoeven/grepline/pkg/types"
)

// MachineFormatter prints one line per match in the machine-readable shape
// "source:lineNumber:matchStart:matchedText".
type MachineFormatter struct{}

// NewMachineFormatter creates a new machine-readable formatter.
func NewMachineFormatter() *MachineFormatter {
	return &MachineFormatter{}
}

// Format renders one output line per match interval, newline-joined in
// interval order, with no trailing newline.
func (f *MachineFormatter) Format(rec types.LineRecord) string {
	lines := make([]string, 0, len(rec.Matches))
	for _, m := range rec.Matches {
		lines = append(lines, fmt.Sprintf("%s:%d:%d:%s", rec.Source, rec.Number, m.Start, rec.Text[m.Start:m.End]))
	}
	return strings.Join(lines, "\n")
}
