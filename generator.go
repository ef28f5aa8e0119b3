package genkit

import "iter"

// Generator is the pull style counterpart of an iter.Seq,
// the minimal protocol every adapter of this package can be consumed through.
// Interface design inspired by https://golang.org/pkg/encoding/json/#Decoder
//
// A Generator is a single pass sequence:
// once exhausted, Next keeps reporting false and there is no way to reset it.
type Generator[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// It reports false once the sequence ran out of elements,
	// and keeps reporting false on any further call.
	Next() bool
	// Value returns the current value of the generator.
	// The action is repeatable without side effects.
	// Its result is only defined after a Next call that reported true.
	Value() V
	// Stop releases the resources of the generator.
	// It is safe to call multiple times, and after exhaustion it is a no-op.
	Stop()
}

// Generator2 is the pull style counterpart of an iter.Seq2.
// It follows the same single pass contract as Generator.
type Generator2[K, V any] interface {
	Next() bool
	// Value returns the current pair of the generator.
	// For Enumerate results, the first value is the index and the second is the element.
	Value() (K, V)
	Stop()
}

// ToGenerator turns a push style sequence into a pull style Generator.
// The caller is expected to call Stop once it no longer consumes the generator.
func ToGenerator[T any](itr iter.Seq[T]) Generator[T] {
	next, stop := iter.Pull(itr)
	return &pullGen[T]{next: next, stop: stop}
}

// ToGenerator2 turns a push style key-value sequence into a pull style Generator2.
// The caller is expected to call Stop once it no longer consumes the generator.
func ToGenerator2[K, V any](itr iter.Seq2[K, V]) Generator2[K, V] {
	next, stop := iter.Pull2(itr)
	return &pullGen2[K, V]{next: next, stop: stop}
}

// FromGenerator turns a pull style Generator back into a push style sequence.
// The returned sequence is single use, and it stops the generator when the iteration finishes.
func FromGenerator[T any](g Generator[T]) SingleUseSeq[T] {
	return Once(func(yield func(T) bool) {
		defer g.Stop()
		for g.Next() {
			if !yield(g.Value()) {
				return
			}
		}
	})
}

// FromGenerator2 turns a pull style Generator2 back into a push style sequence.
// The returned sequence is single use, and it stops the generator when the iteration finishes.
func FromGenerator2[K, V any](g Generator2[K, V]) SingleUseSeq2[K, V] {
	return Once2(func(yield func(K, V) bool) {
		defer g.Stop()
		for g.Next() {
			if !yield(g.Value()) {
				return
			}
		}
	})
}

type pullGen[T any] struct {
	next func() (T, bool)
	stop func()
	val  T
	done bool
}

func (g *pullGen[T]) Next() bool {
	if g.done {
		return false
	}
	v, ok := g.next()
	if !ok {
		g.done = true
		g.stop()
		return false
	}
	g.val = v
	return true
}

func (g *pullGen[T]) Value() T { return g.val }

func (g *pullGen[T]) Stop() {
	if g.done {
		return
	}
	g.done = true
	g.stop()
}

type pullGen2[K, V any] struct {
	next func() (K, V, bool)
	stop func()
	key  K
	val  V
	done bool
}

func (g *pullGen2[K, V]) Next() bool {
	if g.done {
		return false
	}
	k, v, ok := g.next()
	if !ok {
		g.done = true
		g.stop()
		return false
	}
	g.key = k
	g.val = v
	return true
}

func (g *pullGen2[K, V]) Value() (K, V) { return g.key, g.val }

func (g *pullGen2[K, V]) Stop() {
	if g.done {
		return
	}
	g.done = true
	g.stop()
}
