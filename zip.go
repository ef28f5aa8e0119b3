package genkit

import "iter"

// Zip advances two sequences in lockstep and yields their elements pairwise.
// Iteration stops at the shorter input, the classic zip truncation semantics.
//
// The result is yielded positionally as (element of s1, element of s2),
// so it destructures directly in a range statement:
//
//	for a, b := range genkit.Zip(s1, s2) { ... }
//
// For three or four heterogeneous inputs, use Zip3 and Zip4.
// For any number of inputs that share an element type, use ZipAll.
func Zip[V1, V2 any](s1 iter.Seq[V1], s2 iter.Seq[V2]) iter.Seq2[V1, V2] {
	return func(yield func(V1, V2) bool) {
		next1, stop1 := iter.Pull(s1)
		defer stop1()
		next2, stop2 := iter.Pull(s2)
		defer stop2()
		for {
			// The trailing cursor is polled first,
			// so a shorter trailing sequence ends the round
			// before the leading sequences are read any further.
			v2, ok := next2()
			if !ok {
				return
			}
			v1, ok := next1()
			if !ok {
				return
			}
			if !yield(v1, v2) {
				return
			}
		}
	}
}

// Zipped3 is a single step of a Zip3 sequence.
// The field order follows the argument order of Zip3, which is the contract.
type Zipped3[V1, V2, V3 any] struct {
	V1 V1
	V2 V2
	V3 V3
}

// Zip3 advances three sequences in lockstep, stopping at the shortest input.
// The element types of the inputs are preserved in the yielded Zipped3 value.
func Zip3[V1, V2, V3 any](s1 iter.Seq[V1], s2 iter.Seq[V2], s3 iter.Seq[V3]) iter.Seq[Zipped3[V1, V2, V3]] {
	return func(yield func(Zipped3[V1, V2, V3]) bool) {
		next1, stop1 := iter.Pull(s1)
		defer stop1()
		next2, stop2 := iter.Pull(s2)
		defer stop2()
		next3, stop3 := iter.Pull(s3)
		defer stop3()
		for {
			v3, ok := next3()
			if !ok {
				return
			}
			v2, ok := next2()
			if !ok {
				return
			}
			v1, ok := next1()
			if !ok {
				return
			}
			if !yield(Zipped3[V1, V2, V3]{V1: v1, V2: v2, V3: v3}) {
				return
			}
		}
	}
}

// Zipped4 is a single step of a Zip4 sequence.
// The field order follows the argument order of Zip4, which is the contract.
type Zipped4[V1, V2, V3, V4 any] struct {
	V1 V1
	V2 V2
	V3 V3
	V4 V4
}

// Zip4 advances four sequences in lockstep, stopping at the shortest input.
func Zip4[V1, V2, V3, V4 any](s1 iter.Seq[V1], s2 iter.Seq[V2], s3 iter.Seq[V3], s4 iter.Seq[V4]) iter.Seq[Zipped4[V1, V2, V3, V4]] {
	return func(yield func(Zipped4[V1, V2, V3, V4]) bool) {
		next1, stop1 := iter.Pull(s1)
		defer stop1()
		next2, stop2 := iter.Pull(s2)
		defer stop2()
		next3, stop3 := iter.Pull(s3)
		defer stop3()
		next4, stop4 := iter.Pull(s4)
		defer stop4()
		for {
			v4, ok := next4()
			if !ok {
				return
			}
			v3, ok := next3()
			if !ok {
				return
			}
			v2, ok := next2()
			if !ok {
				return
			}
			v1, ok := next1()
			if !ok {
				return
			}
			if !yield(Zipped4[V1, V2, V3, V4]{V1: v1, V2: v2, V3: v3, V4: v4}) {
				return
			}
		}
	}
}

// ZipAll advances any number of same-typed sequences in lockstep,
// yielding one slice per round with one element per input, in argument order.
// Iteration stops at the shortest input.
// A single input behaves identically to iterating it directly, wrapped in a one element slice.
// Zero inputs degenerate to an empty sequence.
func ZipAll[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	if len(seqs) == 0 {
		return Empty[[]T]()
	}
	return func(yield func([]T) bool) {
		var nexts = make([]func() (T, bool), 0, len(seqs))
		for _, s := range seqs {
			next, stop := iter.Pull(s)
			defer stop()
			nexts = append(nexts, next)
		}
		for {
			var vs = make([]T, len(nexts))
			for i := len(nexts) - 1; 0 <= i; i-- {
				v, ok := nexts[i]()
				if !ok {
					return
				}
				vs[i] = v
			}
			if !yield(vs) {
				return
			}
		}
	}
}

// Zipped is a single step of a ZipLongest sequence.
// The OK flags report whether the corresponding side still had a value.
type Zipped[V1, V2 any] struct {
	V1  V1
	OK1 bool
	V2  V2
	OK2 bool
}

// ZipLongest advances two sequences in lockstep, but unlike Zip,
// it continues until the longer input is exhausted.
// The missing values of the shorter side are reported as zero values with a false OK flag.
func ZipLongest[V1, V2 any](s1 iter.Seq[V1], s2 iter.Seq[V2]) iter.Seq[Zipped[V1, V2]] {
	return func(yield func(Zipped[V1, V2]) bool) {
		next1, stop1 := iter.Pull(s1)
		defer stop1()
		next2, stop2 := iter.Pull(s2)
		defer stop2()
		for {
			v1, ok1 := next1()
			v2, ok2 := next2()
			if !ok1 && !ok2 {
				return
			}
			if !yield(Zipped[V1, V2]{V1: v1, OK1: ok1, V2: v2, OK2: ok2}) {
				return
			}
		}
	}
}
