// Package genkit provides Python style iteration adapters on top of the standard iterator protocol.
//
// # Summary
//
// The adapters of this package (Range, Enumerate, Zip) produce lazy sequences:
// values are computed on demand, one element at a time,
// without materialising the whole collection.
// Each adapter returns a stdlib iter.Seq or iter.Seq2,
// thus they can be consumed directly with the range statement,
// or turned into a pull style Generator when the consumer needs to drive the iteration itself.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://docs.python.org/3/library/functions.html
package genkit

import (
	"iter"
	"slices"
	"sync/atomic"
)

// SingleUseSeq is an iter.Seq[T] that can only be iterated once.
// After iteration, it is expected to yield no more values.
//
// Most iterators provide the ability to walk an entire sequence:
// when called, the iterator does any setup necessary to start the sequence,
// then calls yield on successive elements of the sequence, and then cleans up before returning.
// Calling the iterator again walks the sequence again.
//
// SingleUseSeq iterators break that convention, providing the ability to walk a sequence only once.
// These “single-use iterators” typically report values from a data stream that cannot be rewound to start over.
// Calling the iterator again after the sequence is finished will yield no values at all.
type SingleUseSeq[T any] = iter.Seq[T]

// SingleUseSeq2 is an iter.Seq2[K, V] that can only be iterated once.
// After iteration, it is expected to yield no more values.
// For more information on single use sequences, please read the documentation of SingleUseSeq.
type SingleUseSeq2[K, V any] = iter.Seq2[K, V]

// Slice turns a slice into an iter.Seq.
// It is the bridge for feeding container backed values into Enumerate and Zip.
func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Empty2 iterator is used to represent nil result with Null object pattern
func Empty2[K, V any]() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {}
}

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// KVMapFunc maps a key-value pair of an iter.Seq2 into a single value.
type KVMapFunc[KV any, K, V any] func(K, V) KV

func Collect2[K, V, KV any](i iter.Seq2[K, V], m KVMapFunc[KV, K, V]) []KV {
	if i == nil {
		return nil
	}
	var es []KV
	for k, v := range i {
		es = append(es, m(k, v))
	}
	return es
}

// KV is the materialised form of a single iter.Seq2 step.
// For Enumerate results, K holds the index and V holds the element.
type KV[K, V any] struct {
	K K
	V V
}

func CollectKV[K, V any](i iter.Seq2[K, V]) []KV[K, V] {
	return Collect2(i, func(k K, v V) KV[K, V] {
		return KV[K, V]{K: k, V: v}
	})
}

// Once ensures that an iter.Seq behaves as a single use sequence,
// regardless of how many times it is ranged over.
func Once[T any](i iter.Seq[T]) SingleUseSeq[T] {
	var done int32
	return func(yield func(T) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for v := range i {
			if !yield(v) {
				return
			}
		}
	}
}

// Once2 ensures that an iter.Seq2 behaves as a single use sequence,
// regardless of how many times it is ranged over.
func Once2[K, V any](i iter.Seq2[K, V]) SingleUseSeq2[K, V] {
	var done int32
	return func(yield func(K, V) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for k, v := range i {
			if !yield(k, v) {
				return
			}
		}
	}
}
