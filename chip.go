package logicsim

import (
	"github.com/pkg/errors"
)

// An EvalFn computes a primitive chip's output words as a pure function of
// its input words. in and out are the chip's pin states in pin order; the
// function must write every element of out.
//
type EvalFn func(in, out []Signal)

// A Role distinguishes signal-terminal chips from ordinary ones. Placements
// of RoleInput and RoleOutput chips inside a composite become the composite's
// interface pins, in placement order.
//
type Role uint8

// Chip roles.
const (
	RoleNone Role = iota
	RoleInput
	RoleOutput
)

// A PinSpec names a pin and declares its wire type.
//
type PinSpec struct {
	Name string
	Type WireType
}

// A PartSlot places a component chip inside a composite template. The Inputs
// and Outputs lists relabel the component's pins for this placement, letting
// the same template be reused with different pin labels. X and Y are
// display-only coordinates.
//
type PartSlot struct {
	Spec    *ChipSpec
	Inputs  []PinSpec
	Outputs []PinSpec
	X, Y    float64
}

// A Link wires the FromPin-th output pin of part slot FromPart to the
// ToPin-th input pin of part slot ToPart. Cyclic marks the connection as an
// intentional feedback edge.
//
type Link struct {
	FromPart, FromPin int
	ToPart, ToPin     int
	Cyclic            bool
}

// A ChipSpec is a chip template: the static shape shared by every instance of
// the chip. Primitives carry an Eval function; composites carry part slots
// and links. Templates are immutable once registered in a Library.
//
type ChipSpec struct {
	Name       string
	Colour     string
	NameColour string
	Creation   int // creation index, the library load-order key
	Folder     string
	Scale      float64
	Role       Role

	Inputs  []PinSpec
	Outputs []PinSpec

	Eval EvalFn // primitive behaviour; nil for composites

	Parts []PartSlot
	Links []Link
}

// A Chip is a runnable instance of a ChipSpec with independent pin state.
//
type Chip struct {
	spec    *ChipSpec
	inputs  []*Pin
	outputs []*Pin
	parts   []*Chip
	wires   []*Wire
}

// Instantiate creates a fresh instance of the template. For composites it
// recursively instantiates every part slot, applies the slot's pin labels and
// wires the parts according to the template's links; the interface pins of
// the new instance are the terminal pins of its RoleInput and RoleOutput
// parts, in placement order.
//
func (s *ChipSpec) Instantiate() (*Chip, error) {
	if s.Eval != nil {
		return s.instantiatePrimitive(), nil
	}
	c := &Chip{spec: s}
	for i := range s.Parts {
		slot := &s.Parts[i]
		p, err := slot.Spec.Instantiate()
		if err != nil {
			return nil, errors.Wrapf(err, "chip %q part %d (%s)", s.Name, i, slot.Spec.Name)
		}
		if len(slot.Inputs) != len(p.inputs) || len(slot.Outputs) != len(p.outputs) {
			return nil, errors.Errorf("chip %q part %d (%s): placement pin count does not match template",
				s.Name, i, slot.Spec.Name)
		}
		for j := range slot.Inputs {
			p.inputs[j].rename(slot.Inputs[j])
		}
		for j := range slot.Outputs {
			p.outputs[j].rename(slot.Outputs[j])
		}
		c.parts = append(c.parts, p)
	}
	for _, l := range s.Links {
		if l.FromPart < 0 || l.FromPart >= len(c.parts) || l.ToPart < 0 || l.ToPart >= len(c.parts) {
			return nil, errors.Errorf("chip %q: link references part out of range", s.Name)
		}
		src, dst := c.parts[l.FromPart], c.parts[l.ToPart]
		if l.FromPin < 0 || l.FromPin >= len(src.outputs) || l.ToPin < 0 || l.ToPin >= len(dst.inputs) {
			return nil, errors.Errorf("chip %q: link references pin out of range on %s", s.Name, src.Name())
		}
		from, to := src.outputs[l.FromPin], dst.inputs[l.ToPin]
		if !Connect(from, to, l.Cyclic) {
			return nil, errors.Errorf("chip %q: cannot connect %s.%s to %s.%s",
				s.Name, src.Name(), from.Name(), dst.Name(), to.Name())
		}
		c.wires = append(c.wires, &Wire{from: from, to: to})
	}
	for _, p := range c.parts {
		switch p.spec.Role {
		case RoleInput:
			c.inputs = append(c.inputs, p.inputs[0])
		case RoleOutput:
			c.outputs = append(c.outputs, p.outputs[0])
		}
	}
	return c, nil
}

func (s *ChipSpec) instantiatePrimitive() *Chip {
	c := &Chip{spec: s}
	c.inputs = make([]*Pin, len(s.Inputs))
	for i, ps := range s.Inputs {
		c.inputs[i] = &Pin{name: ps.Name, wtype: ps.Type, chip: c}
	}
	c.outputs = make([]*Pin, len(s.Outputs))
	for i, ps := range s.Outputs {
		c.outputs[i] = &Pin{name: ps.Name, wtype: ps.Type, chip: c, output: true}
	}
	return c
}

// deriveInterface computes a composite template's interface pin lists from
// its signal-terminal part slots.
func (s *ChipSpec) deriveInterface() {
	s.Inputs = s.Inputs[:0]
	s.Outputs = s.Outputs[:0]
	for i := range s.Parts {
		slot := &s.Parts[i]
		switch slot.Spec.Role {
		case RoleInput:
			s.Inputs = append(s.Inputs, slot.Inputs[0])
		case RoleOutput:
			s.Outputs = append(s.Outputs, slot.Outputs[0])
		}
	}
}

// Spec returns the template the chip was instantiated from.
//
func (c *Chip) Spec() *ChipSpec { return c.spec }

// Name returns the chip's template name.
//
func (c *Chip) Name() string { return c.spec.Name }

// Inputs returns the chip's ordered input pins.
//
func (c *Chip) Inputs() []*Pin { return c.inputs }

// Outputs returns the chip's ordered output pins.
//
func (c *Chip) Outputs() []*Pin { return c.outputs }

// Parts returns a composite instance's component chips, in placement order.
// It is nil for primitives.
//
func (c *Chip) Parts() []*Chip { return c.parts }

// Wires returns a composite instance's internal wires, in link order. It is
// nil for primitives.
//
func (c *Chip) Wires() []*Wire { return c.wires }

// FindInput returns the input pin with the given name, or nil.
//
func (c *Chip) FindInput(name string) *Pin {
	for _, p := range c.inputs {
		if p.name == name {
			return p
		}
	}
	return nil
}

// FindOutput returns the output pin with the given name, or nil.
//
func (c *Chip) FindOutput(name string) *Pin {
	for _, p := range c.outputs {
		if p.name == name {
			return p
		}
	}
	return nil
}

// Output returns the current state of the i-th output pin.
//
func (c *Chip) Output(i int) Signal {
	return c.outputs[i].state
}
