package cartesian

// cursor tracks the generator's read position in one dimension.
// index == dim.Len() means exhausted for the current cycle.
type cursor struct {
	dim   Dimension
	index int
}

func (c *cursor) value() any {
	return c.dim.Value(c.index)
}

// advance increments the position. Returns false on overflow.
func (c *cursor) advance() bool {
	c.index++
	return c.index < c.dim.Len()
}

// reset rewinds to the first value, for carry propagation.
func (c *cursor) reset() {
	c.index = 0
}
