/*
Package logicsim implements a digital logic engine where primitive gates are
composed into named, reusable chips that can in turn be placed as components
inside larger chips, recursively.

A chip exists in two forms: a ChipSpec is the immutable template owning the
static shape (pin names and word types, component placements, internal wiring),
and a Chip is a cheap runtime instance with independent pin state, created by
ChipSpec.Instantiate. Signal propagation is synchronous and push-based: driving
an input pin recomputes every chip downstream of it, depth first, until a fixed
point is reached. Input pins marked cyclic latch incoming values without
recomputing their owner, which is what lets feedback loops implement memory
elements instead of recursing forever.

Saved circuits are described by ChipRecord values. The Loader turns an
unordered collection of records into a fully wired Library: records are sorted
by creation index so that every component a composite places already exists in
the library when the composite is built.

*/
package logicsim
