package wkhtml

import (
	"fmt"
	"sort"
)

// Declaration registers an option name with its default value before any
// value may be set. Repeatable options accept a list value; each element
// produces its own flag occurrence when compiled.
type Declaration struct {
	Name       string
	Default    any
	Repeatable bool
}

// Registry is an ordered mapping from declared option names to their
// current values. Options must be declared before they can be set;
// declaration and assignment are deliberately distinct steps.
//
// Registry is not safe for concurrent use. Callers mixing Set and
// conversion across goroutines must synchronize externally or use one
// Converter per goroutine.
type Registry struct {
	order      []string
	values     map[string]any
	repeatable map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		values:     make(map[string]any),
		repeatable: make(map[string]bool),
	}
}

// Declare registers name with a default value. Redeclaring an existing
// name overwrites its default and keeps its original position (last
// write wins; declaration happens once at construction time).
func (r *Registry) Declare(name string, def any) {
	r.declare(name, def, false)
}

// DeclareRepeatable registers name as a repeatable option whose value,
// when set, must be a list.
func (r *Registry) DeclareRepeatable(name string, def any) {
	r.declare(name, def, true)
}

// DeclareAll declares many options at once, preserving input order so
// that compilation output stays deterministic.
func (r *Registry) DeclareAll(decls []Declaration) {
	for _, d := range decls {
		r.declare(d.Name, d.Default, d.Repeatable)
	}
}

func (r *Registry) declare(name string, def any, repeatable bool) {
	if _, known := r.repeatable[name]; !known {
		r.order = append(r.order, name)
	}
	r.values[name] = def
	r.repeatable[name] = repeatable
}

// Set assigns a value to a previously declared option. A nil value
// unsets the option so it is omitted from compilation. Setting an
// undeclared name fails with ErrUnknownOption and leaves the registry
// unchanged.
func (r *Registry) Set(name string, value any) error {
	if _, known := r.repeatable[name]; !known {
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	r.values[name] = value
	return nil
}

// SetAll applies Set for each entry in sorted key order (maps have no
// stable iteration order). Application is not atomic: entries applied
// before a failing entry remain applied.
func (r *Registry) SetAll(values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.Set(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current value of name and whether name is declared.
func (r *Registry) Get(name string) (any, bool) {
	if _, known := r.repeatable[name]; !known {
		return nil, false
	}
	return r.values[name], true
}

// IsRepeatable reports whether name was declared as repeatable.
func (r *Registry) IsRepeatable(name string) bool {
	return r.repeatable[name]
}

// Names returns the declared option names in declaration order.
// The returned slice is a copy.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
