package format

import (
	"strings"
	"testing"

	"github.com/pverhoeven/grepline/pkg/types"
)

func TestRegistry_Get(t *testing.T) {
	r := DefaultRegistry("")

	tests := []struct {
		name       string
		formatType Type
		check      func(Formatter) bool
	}{
		{
			name:       "default",
			formatType: TypeDefault,
			check: func(f Formatter) bool {
				_, ok := f.(*DefaultFormatter)
				return ok
			},
		},
		{
			name:       "color",
			formatType: TypeColor,
			check: func(f Formatter) bool {
				_, ok := f.(*ColorFormatter)
				return ok
			},
		},
		{
			name:       "underscore",
			formatType: TypeUnderscore,
			check: func(f Formatter) bool {
				_, ok := f.(*UnderscoreFormatter)
				return ok
			},
		},
		{
			name:       "machine",
			formatType: TypeMachine,
			check: func(f Formatter) bool {
				_, ok := f.(*MachineFormatter)
				return ok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := r.Get(tt.formatType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(f) {
				t.Errorf("expected a %s formatter but got %T", tt.formatType, f)
			}
		})
	}
}

func TestRegistry_GetUnregistered(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get(Type("json"))
	if err == nil {
		t.Fatal("expected an error for an unregistered format but got none")
	}
	if !strings.Contains(err.Error(), "json") {
		t.Errorf("expected error to name the invalid selector, got %q", err.Error())
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := DefaultRegistry("")
	r.Register(TypeDefault, func() Formatter { return NewMachineFormatter() })

	f, err := r.Get(TypeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.(*MachineFormatter); !ok {
		t.Errorf("expected the replacement formatter but got %T", f)
	}
}

func TestDefaultRegistry_HighlightColor(t *testing.T) {
	r := DefaultRegistry("32")

	f, err := r.Get(TypeColor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := types.LineRecord{
		Source:  "f",
		Number:  1,
		Text:    "ab",
		Matches: []types.MatchInterval{{Start: 0, End: 1}},
	}
	got := f.Format(rec)
	want := "f:1:\x1b[32ma\x1b[0mb"
	if got != want {
		t.Errorf("expected %q but got %q", want, got)
	}
}
