package logicsim

// A Point is a 2D routing coordinate. Anchor points only affect how a wire is
// drawn, never how it conducts.
//
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// A Wire records a directed connection from one chip's output pin to another
// chip's input pin inside a composite. Wires are created by the loader for
// every successful connection and are owned by the composite containing both
// endpoints.
//
type Wire struct {
	from    *Pin
	to      *Pin
	anchors []Point
}

// From returns the wire's driving output pin.
//
func (w *Wire) From() *Pin { return w.from }

// To returns the wire's driven input pin.
//
func (w *Wire) To() *Pin { return w.to }

// Anchors returns the wire's routing anchor points.
//
func (w *Wire) Anchors() []Point { return w.anchors }

// SetAnchors replaces the wire's routing anchor points.
//
func (w *Wire) SetAnchors(pts []Point) {
	w.anchors = append([]Point(nil), pts...)
}
