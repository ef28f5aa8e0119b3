package genkit

import (
	"iter"

	"go.llib.dev/frameless/port/option"
	"golang.org/x/exp/constraints"
)

// Range returns an arithmetic progression of integers as a lazy sequence,
// following the half-open interval convention: begin is inclusive, end is exclusive.
//
// Without options it behaves like Python's range(end): it starts from zero and steps by one.
// Use RangeFrom to set the starting value and RangeStep to set the stride.
// A negative step produces a strictly descending progression that terminates once the value is no longer greater than end.
//
// When begin equals end, the sequence is empty regardless of the step's sign.
func Range[T constraints.Integer](end T, opts ...RangeOption[T]) iter.Seq[T] {
	c := option.Use[RangeConfig[T]](opts)
	var (
		begin = c.Begin
		step  = c.getStep()
	)
	// sign folds the ascending and descending termination tests into a single comparison.
	var sign T = 1
	if step < 0 { // unreachable for unsigned types
		sign = T(0) - 1
	}
	var bound = end * sign
	return func(yield func(T) bool) {
		for value := begin; value*sign < bound; value += step {
			if !yield(value) {
				return
			}
		}
	}
}

type RangeConfig[T constraints.Integer] struct {
	// Begin is the inclusive starting value of the progression.
	Begin T
	// Step is the stride of the progression. The zero value means a step of one.
	Step T
}

func (c RangeConfig[T]) Configure(t *RangeConfig[T]) { option.Configure(c, t) }

func (c RangeConfig[T]) getStep() T {
	if c.Step == 0 {
		return 1
	}
	return c.Step
}

type RangeOption[T constraints.Integer] option.Option[RangeConfig[T]]

// RangeFrom sets the inclusive starting value of the progression.
func RangeFrom[T constraints.Integer](begin T) RangeOption[T] {
	return option.Func[RangeConfig[T]](func(c *RangeConfig[T]) {
		c.Begin = begin
	})
}

// RangeStep sets the stride of the progression.
// A zero step would never make progress towards the end of the interval,
// so it is rejected at construction time.
func RangeStep[T constraints.Integer](step T) RangeOption[T] {
	if step == 0 {
		panic("genkit.RangeStep: a zero step would yield an unbounded range")
	}
	return option.Func[RangeConfig[T]](func(c *RangeConfig[T]) {
		c.Step = step
	})
}
