package logicsim

import (
	"github.com/pkg/errors"
)

// A propagator performs one synchronous, depth-first propagation pass. The
// active set holds the chips currently being recomputed on the call stack;
// re-entering one of them through a non-cyclic edge means the loader wired an
// unmarked cycle, which is a consistency violation, not a user error.
type propagator struct {
	active map[*Chip]struct{}
}

func newPropagator() *propagator {
	return &propagator{active: make(map[*Chip]struct{})}
}

func (pr *propagator) drive(p *Pin, v Signal) error {
	if p.output {
		return pr.setOutput(p, v)
	}
	return pr.setInput(p, v)
}

func (pr *propagator) setOutput(p *Pin, v Signal) error {
	p.state = v
	for _, t := range p.targets {
		if err := pr.setInput(t, v); err != nil {
			return err
		}
	}
	return nil
}

func (pr *propagator) setInput(p *Pin, v Signal) error {
	p.state = v
	if p.cyclic {
		// Feedback edge: latch the value but do not recompute the owner
		// within this pass. Memory elements hold state this way.
		return nil
	}
	return pr.recompute(p.chip)
}

func (pr *propagator) recompute(c *Chip) error {
	if c.spec.Eval == nil {
		return nil
	}
	if _, on := pr.active[c]; on {
		return &UnmarkedCycleError{Chip: c.spec.Name}
	}
	pr.active[c] = struct{}{}
	defer delete(pr.active, c)

	in := make([]Signal, len(c.inputs))
	for i, p := range c.inputs {
		in[i] = p.state
	}
	out := make([]Signal, len(c.outputs))
	c.spec.Eval(in, out)
	for i, p := range c.outputs {
		if err := pr.setOutput(p, out[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetInput drives the i-th input pin with v and propagates the change through
// the chip until a fixed point is reached. It returns an UnmarkedCycleError
// if propagation runs into a connection cycle not marked cyclic.
//
func (c *Chip) SetInput(i int, v Signal) error {
	if i < 0 || i >= len(c.inputs) {
		return errors.Errorf("chip %q has no input %d", c.Name(), i)
	}
	return newPropagator().drive(c.inputs[i], v)
}

// SetInputs drives every input pin in order and propagates each change.
//
func (c *Chip) SetInputs(vs ...Signal) error {
	if len(vs) != len(c.inputs) {
		return errors.Errorf("chip %q takes %d inputs, got %d", c.Name(), len(c.inputs), len(vs))
	}
	for i, v := range vs {
		if err := c.SetInput(i, v); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate re-drives every input pin with its current state, settling the
// whole chip. Feedback circuits latch one pass worth of state per call, so a
// memory element may need a second Evaluate for its complementary outputs to
// catch up.
//
func (c *Chip) Evaluate() error {
	pr := newPropagator()
	for _, p := range c.inputs {
		if err := pr.drive(p, p.state); err != nil {
			return err
		}
	}
	return nil
}
