package format

import "fmt"

// Factory constructs a Formatter instance.
type Factory func() Formatter

// Registry maps format types to formatter factories. It holds no scan state;
// registration happens once at startup and lookups are read-only afterward.
type Registry struct {
	factories map[Type]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[Type]Factory),
	}
}

// Register associates a format type with a formatter factory. Registering
// the same type again replaces the previous factory.
func (r *Registry) Register(t Type, factory Factory) {
	r.factories[t] = factory
}

// Get returns a formatter for the given type. Requesting an unregistered
// type is a configuration error and is reported before any scanning starts.
func (r *Registry) Get(t Type) (Formatter, error) {
	factory, ok := r.factories[t]
	if !ok {
		return nil, fmt.Errorf("no formatter registered for format %q", t)
	}
	return factory(), nil
}

// DefaultRegistry returns a registry with all built-in formats registered.
// highlightColor is the SGR code used by the color format; empty selects
// DefaultHighlightColor.
func DefaultRegistry(highlightColor string) *Registry {
	r := NewRegistry()
	r.Register(TypeDefault, func() Formatter { return NewDefaultFormatter() })
	r.Register(TypeColor, func() Formatter { return NewColorFormatter(highlightColor) })
	r.Register(TypeUnderscore, func() Formatter { return NewUnderscoreFormatter() })
	r.Register(TypeMachine, func() Formatter { return NewMachineFormatter() })
	return r
}
