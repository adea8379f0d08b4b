// Package cartesian enumerates the Cartesian product of ordered value
// sequences lazily, without materializing it.
//
// Dimensions hold heterogeneous values. Combinations come out in
// lexicographic order, the last dimension varying fastest, like an
// odometer.
package cartesian

import "iter"

// Dimension is an ordered, immutable sequence of heterogeneous values.
// Each dimension contributes one digit to every combination.
type Dimension struct {
	values []any
}

// NewDimension captures values as a dimension.
func NewDimension(values ...any) Dimension {
	owned := make([]any, len(values))
	copy(owned, values)
	return Dimension{values: owned}
}

// DimensionOf captures a typed slice as a dimension.
func DimensionOf[T any](values []T) Dimension {
	owned := make([]any, len(values))
	for i, v := range values {
		owned[i] = v
	}
	return Dimension{values: owned}
}

// DimensionFromSeq drains a sequence once into a dimension. The generator
// revisits dimensions arbitrarily many times, so lazy input must be
// materialized up front.
func DimensionFromSeq(seq iter.Seq[any]) Dimension {
	var owned []any
	for v := range seq {
		owned = append(owned, v)
	}
	return Dimension{values: owned}
}

func (d Dimension) Len() int {
	return len(d.values)
}

// Value returns the value at position i, in input order.
func (d Dimension) Value(i int) any {
	return d.values[i]
}
