package cartesian

import (
	"math"
	"sync"
)

// Product generates the combinations of a fixed set of dimensions, one
// pull at a time, in lexicographic order with the last dimension varying
// fastest.
//
// A nil cursor slice marks the exhausted state. Exhaustion is terminal: a
// drained product never yields again and is not rewindable.
type Product struct {
	mu      sync.Mutex
	dims    []Dimension
	cursors []cursor
}

func newProduct(dims []Dimension) *Product {
	p := &Product{dims: dims}
	if 0 == len(dims) {
		return p
	}
	cursors := make([]cursor, len(dims))
	for i, dim := range dims {
		if 0 == dim.Len() {
			// Multiplying by empty yields an empty product.
			return p
		}
		cursors[i] = cursor{dim: dim}
	}
	p.cursors = cursors
	return p
}

// Len returns the number of dimensions.
func (p *Product) Len() int {
	return len(p.dims)
}

// Next snapshots the current combination and advances the odometer, as a
// single atomic step. Safe for concurrent callers: each combination is
// yielded to exactly one of them. Returns false forever once the product
// is exhausted.
func (p *Product) Next() (*Combination, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursors == nil {
		return nil, false
	}

	values := make([]any, len(p.cursors))
	for i := range p.cursors {
		values[i] = p.cursors[i].value()
	}

	// Increment right to left. The first cursor staying in bounds stops
	// the carry; every cursor that overflowed before it rewinds to zero.
	// Carrying past the first dimension exhausts the product for good.
	for i := len(p.cursors) - 1; ; i-- {
		if i < 0 {
			p.cursors = nil
			break
		}
		if p.cursors[i].advance() {
			break
		}
		p.cursors[i].reset()
	}

	return newCombination(values), true
}

// Size estimates the total cardinality of the product, saturating at
// math.MaxUint64. The estimate is advisory and independent of traversal
// progress.
func (p *Product) Size() uint64 {
	lengths := make([]int, len(p.dims))
	for i, dim := range p.dims {
		lengths[i] = dim.Len()
	}
	return EstimateSize(lengths)
}

// EstimateSize multiplies dimension lengths with saturation at
// math.MaxUint64 instead of wrapping. An empty dimension anywhere zeroes
// the product.
func EstimateSize(lengths []int) uint64 {
	if 0 == len(lengths) {
		return 0
	}
	total := uint64(1)
	for _, length := range lengths {
		b := uint64(length)
		if 0 == b {
			return 0
		}
		if math.MaxUint64/total < b {
			return math.MaxUint64
		}
		total *= b
	}
	return total
}
