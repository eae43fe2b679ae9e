package logicsim

import (
	"github.com/pkg/errors"
)

// A Library maps chip names to built chip templates. It is seeded with
// primitives and grown as composites are resolved; loading a composite looks
// its components up here, which is why records must be built in creation
// order. A Library is not safe for concurrent mutation.
//
type Library struct {
	specs map[string]*ChipSpec
	names []string // insertion order
}

// NewLibrary returns an empty library.
//
func NewLibrary() *Library {
	return &Library{specs: make(map[string]*ChipSpec)}
}

// Add registers a chip template under its name. Names are unique across the
// whole library; registering a duplicate is an error.
//
func (l *Library) Add(s *ChipSpec) error {
	if s.Name == "" {
		return errors.New("chip template has no name")
	}
	if _, ok := l.specs[s.Name]; ok {
		return errors.Errorf("chip %q already registered", s.Name)
	}
	l.specs[s.Name] = s
	l.names = append(l.names, s.Name)
	return nil
}

// Replace swaps the template registered under s.Name for s, registering it
// anew if absent. Editing a chip replaces its library entry rather than
// mutating it in place.
//
func (l *Library) Replace(s *ChipSpec) error {
	if s.Name == "" {
		return errors.New("chip template has no name")
	}
	if _, ok := l.specs[s.Name]; !ok {
		return l.Add(s)
	}
	l.specs[s.Name] = s
	return nil
}

// Lookup returns the template registered under name.
//
func (l *Library) Lookup(name string) (*ChipSpec, bool) {
	s, ok := l.specs[name]
	return s, ok
}

// Has reports whether a template is registered under name.
//
func (l *Library) Has(name string) bool {
	_, ok := l.specs[name]
	return ok
}

// Names returns every registered chip name in insertion order.
//
func (l *Library) Names() []string {
	return append([]string(nil), l.names...)
}

// Len returns the number of registered templates.
//
func (l *Library) Len() int { return len(l.specs) }

// Instantiate creates a fresh instance of the named chip.
//
func (l *Library) Instantiate(name string) (*Chip, error) {
	s, ok := l.specs[name]
	if !ok {
		return nil, errors.Errorf("chip %q not in library", name)
	}
	return s.Instantiate()
}
