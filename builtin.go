package logicsim

// common pin names
const (
	pinA   = "a"
	pinB   = "b"
	pinIn  = "in"
	pinOut = "out"
)

// BuiltinFolder is the library folder primitive chips are filed under.
const BuiltinFolder = "Builtin"

func primitive(name string, role Role, in, out []PinSpec, fn EvalFn) *ChipSpec {
	return &ChipSpec{
		Name:     name,
		Folder:   BuiltinFolder,
		Scale:    1,
		Creation: -1, // primitives sort before every saved record
		Role:     role,
		Inputs:   in,
		Outputs:  out,
		Eval:     fn,
	}
}

func gate(name string, fn func(a, b Signal) Signal) *ChipSpec {
	return primitive(name, RoleNone,
		[]PinSpec{{pinA, Bit}, {pinB, Bit}},
		[]PinSpec{{pinOut, Bit}},
		func(in, out []Signal) { out[0] = fn(in[0], in[1]) })
}

// And returns the AND primitive: out = a & b.
//
func And() *ChipSpec {
	return gate("AND", func(a, b Signal) Signal { return a & b })
}

// Nand returns the NAND primitive: out = ^(a & b).
//
func Nand() *ChipSpec {
	return gate("NAND", func(a, b Signal) Signal { return ^(a & b) })
}

// Or returns the OR primitive: out = a | b.
//
func Or() *ChipSpec {
	return gate("OR", func(a, b Signal) Signal { return a | b })
}

// Nor returns the NOR primitive: out = ^(a | b).
//
func Nor() *ChipSpec {
	return gate("NOR", func(a, b Signal) Signal { return ^(a | b) })
}

// Xor returns the XOR primitive: out = a ^ b.
//
func Xor() *ChipSpec {
	return gate("XOR", func(a, b Signal) Signal { return a ^ b })
}

// Not returns the NOT primitive: out = ^in.
//
func Not() *ChipSpec {
	return primitive("NOT", RoleNone,
		[]PinSpec{{pinIn, Bit}},
		[]PinSpec{{pinOut, Bit}},
		func(in, out []Signal) { out[0] = ^in[0] })
}

// Add returns the 32-bit adder primitive: out = a + b, wrapping.
//
func Add() *ChipSpec {
	return primitive("ADD", RoleNone,
		[]PinSpec{{pinA, Bus32}, {pinB, Bus32}},
		[]PinSpec{{pinOut, Bus32}},
		func(in, out []Signal) { out[0] = in[0] + in[1] })
}

// In returns the input signal terminal. Placements of this chip inside a
// composite become the composite's input pins, in placement order. It is a
// plain buffer at evaluation time.
//
func In() *ChipSpec {
	return primitive("IN", RoleInput,
		[]PinSpec{{pinIn, Bit}},
		[]PinSpec{{pinOut, Bit}},
		func(in, out []Signal) { out[0] = in[0] })
}

// Out returns the output signal terminal, the counterpart of In for a
// composite's output pins.
//
func Out() *ChipSpec {
	return primitive("OUT", RoleOutput,
		[]PinSpec{{pinIn, Bit}},
		[]PinSpec{{pinOut, Bit}},
		func(in, out []Signal) { out[0] = in[0] })
}

// Primitives returns a fresh set of every built-in chip template, ready to
// seed a Library.
//
func Primitives() []*ChipSpec {
	return []*ChipSpec{
		In(), Out(),
		And(), Nand(), Or(), Nor(), Xor(), Not(),
		Add(),
	}
}
