package cartesian

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrExhausted reports a read past the last value of a combination.
var ErrExhausted = errors.New("combination exhausted")

// TypeMismatchError reports a typed read of an incompatible value.
type TypeMismatchError struct {
	Index int
	Value any
	Want  string
}

func (err TypeMismatchError) Error() string {
	return fmt.Sprintf("value %d is %T, not %s", err.Index, err.Value, err.Want)
}

// Combination is one point of the product: one value per dimension, in
// dimension order. It is a snapshot, unrelated to the generator once
// yielded.
//
// Values are consumed once, left to right. The read position never
// rewinds. Reads are not synchronized; serialize them when sharing a
// single combination across goroutines.
type Combination struct {
	values []any
	read   int
}

func newCombination(values []any) *Combination {
	return &Combination{values: values}
}

// Len returns the number of dimensions, read or not.
func (c *Combination) Len() int {
	return len(c.values)
}

// HasNext tells whether an unread value remains. Does not consume.
func (c *Combination) HasNext() bool {
	return c.read < len(c.values)
}

// Next consumes the next value, untyped.
func (c *Combination) Next() (any, error) {
	if !c.HasNext() {
		return nil, ErrExhausted
	}
	v := c.values[c.read]
	c.read++
	return v, nil
}

// Next consumes the next value of c as T.
//
// The slot is consumed even when the assertion fails, like a cast after a
// fetch. A retry with another type reads the following value.
func Next[T any](c *Combination) (T, error) {
	var zero T
	v, err := c.Next()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, TypeMismatchError{
			Index: c.read - 1,
			Value: v,
			Want:  reflect.TypeFor[T]().String(),
		}
	}
	return t, nil
}

func (c *Combination) NextInt() (int, error) {
	return Next[int](c)
}

func (c *Combination) NextInt64() (int64, error) {
	return Next[int64](c)
}

func (c *Combination) NextFloat64() (float64, error) {
	return Next[float64](c)
}

func (c *Combination) NextBool() (bool, error) {
	return Next[bool](c)
}

func (c *Combination) NextString() (string, error) {
	return Next[string](c)
}

// AllRemaining consumes every unread value as T, in order. On mismatch,
// values read so far are returned along the error.
func AllRemaining[T any](c *Combination) (out []T, err error) {
	for c.HasNext() {
		v, err := Next[T](c)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return
}
