package logicsim

// A Signal is the word carried by a pin. Single-bit gates use only the low
// bit, but every pin stores a full 32-bit word so that bus-wide primitives
// share the same propagation path.
//
type Signal uint32

// A WireType declares the word width of a pin as recorded in saved chip
// definitions. It is schema metadata only: propagation always moves whole
// Signal words.
//
type WireType uint8

// Known wire types.
const (
	Bit WireType = iota
	Bus4
	Bus8
	Bus16
	Bus32
)

// A Pin is a named signal terminal owned by a chip instance. Input pins have
// at most one driving output pin; output pins may drive any number of input
// pins.
//
type Pin struct {
	name    string
	wtype   WireType
	state   Signal
	cyclic  bool
	output  bool
	chip    *Chip
	source  *Pin   // driving output pin, input pins only
	targets []*Pin // driven input pins, output pins only
}

// Name returns the pin's name. Placements may relabel the pins of a chip
// instance, so the name belongs to the instance, not the template.
//
func (p *Pin) Name() string { return p.name }

// Type returns the pin's declared wire type.
//
func (p *Pin) Type() WireType { return p.wtype }

// State returns the pin's current signal word.
//
func (p *Pin) State() Signal { return p.state }

// Cyclic reports whether the pin's incoming connection intentionally closes a
// feedback loop.
//
func (p *Pin) Cyclic() bool { return p.cyclic }

// Chip returns the chip instance owning the pin.
//
func (p *Pin) Chip() *Chip { return p.chip }

// Source returns the output pin driving p, or nil if p is unconnected or is
// itself an output pin.
//
func (p *Pin) Source() *Pin { return p.source }

// IsOutput reports whether p is an output pin of its owning chip.
//
func (p *Pin) IsOutput() bool { return p.output }

func (p *Pin) rename(s PinSpec) {
	if s.Name != "" {
		p.name = s.Name
	}
	p.wtype = s.Type
}

// Connect links output pin out to input pin in and reports whether the
// connection was made. The attempt is rejected, with no side effect, when the
// pins belong to the same chip instance, when the roles are wrong, or when in
// is already driven by a different output. Reconnecting the same pair is a
// no-op reported as success. A true cyclic argument marks in as intentionally
// closing a feedback loop; cycle legality itself is checked at evaluation
// time, not here.
//
func Connect(out, in *Pin, cyclic bool) bool {
	if out == nil || in == nil || !out.output || in.output {
		return false
	}
	if out.chip == in.chip {
		return false
	}
	if in.source == out {
		return true
	}
	if in.source != nil {
		return false
	}
	in.source = out
	if cyclic {
		in.cyclic = true
	}
	out.targets = append(out.targets, in)
	return true
}

// Disconnect tears down the connection from out to in. It does nothing if the
// two pins are not currently connected.
//
func Disconnect(out, in *Pin) {
	if in == nil || out == nil || in.source != out {
		return
	}
	in.source = nil
	in.cyclic = false
	for i, t := range out.targets {
		if t == in {
			out.targets = append(out.targets[:i], out.targets[i+1:]...)
			break
		}
	}
}
