package cartesian

import "iter"

// Builder accumulates dimensions for a product.
//
// Builders are persistent: And returns a new value and never mutates its
// receiver, so an intermediate builder can be extended along several
// branches independently.
//
// A single dimension is a valid, if trivial, product.
type Builder struct {
	dims []Dimension
}

// Of starts a builder with the given values as first dimension.
func Of(values ...any) Builder {
	return Builder{}.add(NewDimension(values...))
}

// OfSlice starts a builder with a typed slice as first dimension.
func OfSlice[T any](values []T) Builder {
	return Builder{}.add(DimensionOf(values))
}

// OfSeq starts a builder by draining a sequence as first dimension.
func OfSeq(seq iter.Seq[any]) Builder {
	return Builder{}.add(DimensionFromSeq(seq))
}

// OfDimensions starts a builder from prebuilt dimensions.
func OfDimensions(dims ...Dimension) Builder {
	b := Builder{}
	for _, dim := range dims {
		b = b.add(dim)
	}
	return b
}

// And appends the given values as one more dimension.
func (b Builder) And(values ...any) Builder {
	return b.add(NewDimension(values...))
}

// AndSeq appends a drained sequence as one more dimension.
func (b Builder) AndSeq(seq iter.Seq[any]) Builder {
	return b.add(DimensionFromSeq(seq))
}

// AndDimension appends a prebuilt dimension.
func (b Builder) AndDimension(dim Dimension) Builder {
	return b.add(dim)
}

// AndSlice appends a typed slice as one more dimension. A function, not a
// method, since methods take no type parameters.
func AndSlice[T any](b Builder, values []T) Builder {
	return b.add(DimensionOf(values))
}

func (b Builder) add(dim Dimension) Builder {
	dims := make([]Dimension, len(b.dims)+1)
	copy(dims, b.dims)
	dims[len(b.dims)] = dim
	return Builder{dims: dims}
}

// Len returns the number of dimensions configured so far.
func (b Builder) Len() int {
	return len(b.dims)
}

// Size estimates the cardinality of the product without building it.
func (b Builder) Size() uint64 {
	lengths := make([]int, len(b.dims))
	for i, dim := range b.dims {
		lengths[i] = dim.Len()
	}
	return EstimateSize(lengths)
}

// Product finalizes the builder into a fresh generator.
func (b Builder) Product() *Product {
	dims := make([]Dimension, len(b.dims))
	copy(dims, b.dims)
	return newProduct(dims)
}

// Build finalizes the builder into a lazy, finite, single-pass sequence
// of combinations. Ranging a second time over the same sequence resumes
// the drained generator and yields nothing; call Build again for a fresh
// traversal.
func (b Builder) Build() iter.Seq[*Combination] {
	p := b.Product()
	return func(yield func(*Combination) bool) {
		for {
			combination, ok := p.Next()
			if !ok {
				return
			}
			if !yield(combination) {
				return
			}
		}
	}
}
