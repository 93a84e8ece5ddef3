// Package format renders matched lines in the selectable output formats.
package format

import (
	"fmt"
	"strconv"

	"github.com/pverhoeven/grepline/pkg/types"
)

// Formatter renders one matching line record into printable text. The
// returned string may contain embedded newlines for multi-line formats;
// implementations are only invoked for records with at least one match.
type Formatter interface {
	Format(rec types.LineRecord) string
}

// Type identifies one of the built-in output formats.
type Type string

// The built-in output formats.
const (
	TypeDefault    Type = "default"
	TypeColor      Type = "color"
	TypeUnderscore Type = "underscore"
	TypeMachine    Type = "machine"
)

// ParseType converts a format name into a Type.
func ParseType(name string) (Type, error) {
	switch Type(name) {
	case TypeDefault, TypeColor, TypeUnderscore, TypeMachine:
		return Type(name), nil
	default:
		return "", fmt.Errorf("unknown format %q (use default, color, underscore or machine)", name)
	}
}

// linePrefix renders the "source:lineNumber:" prefix shared by the
// line-oriented formats.
func linePrefix(rec types.LineRecord) string {
	return rec.Source + ":" + strconv.Itoa(rec.Number) + ":"
}
