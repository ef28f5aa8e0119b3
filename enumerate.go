package genkit

import (
	"iter"

	"go.llib.dev/frameless/port/option"
)

// Enumerate wraps a sequence and pairs each of its elements with an increasing index.
// The index starts from zero, or from the value given with EnumerateFrom.
//
// The result is yielded positionally as (index, element),
// so it destructures directly in a range statement:
//
//	for i, v := range genkit.Enumerate(src) { ... }
//
// Enumerate does not copy the wrapped sequence, it only advances it while being consumed,
// thus a single use input sequence yields a single use enumeration.
func Enumerate[T any](i iter.Seq[T], opts ...EnumerateOption) iter.Seq2[int, T] {
	c := option.Use[EnumerateConfig](opts)
	return func(yield func(int, T) bool) {
		index := c.StartIndex
		for v := range i {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

type EnumerateConfig struct {
	// StartIndex is the index paired with the first element of the wrapped sequence.
	StartIndex int
}

func (c EnumerateConfig) Configure(t *EnumerateConfig) { option.Configure(c, t) }

type EnumerateOption option.Option[EnumerateConfig]

// EnumerateFrom sets the starting index of the enumeration.
// It enables continuing a logical index across multiple enumerations.
func EnumerateFrom(start int) EnumerateOption {
	return option.Func[EnumerateConfig](func(c *EnumerateConfig) {
		c.StartIndex = start
	})
}
