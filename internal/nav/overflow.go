package nav

// Overflow tracks whether the rendered list is taller than its viewport.
// It is re-measured on every layout-affecting change and never trusted
// across one.
type Overflow struct {
	content     int
	viewport    int
	overflowing bool
}

// Measure records a fresh layout and returns the derived flag. A viewport
// that has not been laid out yet (height <= 0) never overflows.
func (o *Overflow) Measure(contentHeight, viewportHeight int) bool {
	o.content = contentHeight
	o.viewport = viewportHeight
	o.overflowing = viewportHeight > 0 && contentHeight > viewportHeight
	return o.overflowing
}

// Overflowing returns the result of the most recent measurement.
func (o Overflow) Overflowing() bool { return o.overflowing }

// Extents returns the content and viewport heights from the last measurement.
func (o Overflow) Extents() (content, viewport int) {
	return o.content, o.viewport
}
