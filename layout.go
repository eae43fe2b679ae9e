package logicsim

// A SavedWire locates one wire of a saved layout by component and pin
// indices, and carries its routing anchor points.
//
type SavedWire struct {
	ParentChipIndex       int     `json:"parentChipIndex"`
	ParentChipOutputIndex int     `json:"parentChipOutputIndex"`
	ChildChipIndex        int     `json:"childChipIndex"`
	ChildChipInputIndex   int     `json:"childChipInputIndex"`
	AnchorPoints          []Point `json:"anchorPoints"`
}

// A WireLayoutRecord is the persisted, display-only routing of a composite's
// wires, stored separately from the wiring itself.
//
type WireLayoutRecord struct {
	SerializableWires []SavedWire `json:"serializableWires"`
}

// MergeWireLayout attaches saved anchor points to the built composite's
// wires. Each layout entry is resolved to a start/end pin name pair through
// the composite's component indices and matched by name against the wire
// list; entries that resolve to no built wire are dropped. It returns the
// number of wires that received anchors.
//
// Indices in a layout record can diverge from the wiring record, which is why
// matching goes through pin names rather than index identity.
//
func MergeWireLayout(c *Chip, layout *WireLayoutRecord) int {
	n := 0
	for i := range layout.SerializableWires {
		sw := &layout.SerializableWires[i]
		from, to, ok := resolveLayoutPins(c, sw)
		if !ok {
			continue
		}
		for _, w := range c.wires {
			if w.from.name == from && w.to.name == to {
				w.SetAnchors(sw.AnchorPoints)
				n++
				break
			}
		}
	}
	return n
}

// resolveLayoutPins maps a layout entry's indices onto pin names. Some
// historical layouts were saved with the parent and child roles swapped, so
// both readings are bounds-checked up front and the valid one wins.
func resolveLayoutPins(c *Chip, sw *SavedWire) (from, to string, ok bool) {
	if from, to, ok = layoutPins(c, sw.ParentChipIndex, sw.ParentChipOutputIndex,
		sw.ChildChipIndex, sw.ChildChipInputIndex); ok {
		return from, to, true
	}
	return layoutPins(c, sw.ChildChipIndex, sw.ChildChipInputIndex,
		sw.ParentChipIndex, sw.ParentChipOutputIndex)
}

func layoutPins(c *Chip, srcPart, srcPin, dstPart, dstPin int) (string, string, bool) {
	if srcPart < 0 || srcPart >= len(c.parts) || dstPart < 0 || dstPart >= len(c.parts) {
		return "", "", false
	}
	src, dst := c.parts[srcPart], c.parts[dstPart]
	if srcPin < 0 || srcPin >= len(src.outputs) || dstPin < 0 || dstPin >= len(dst.inputs) {
		return "", "", false
	}
	return src.outputs[srcPin].name, dst.inputs[dstPin].name, true
}
