// Package genkitcontract defines the behavioral expectations
// towards the lazy sequences and generators of the genkit package.
package genkitcontract

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/port/contract"

	"go.llib.dev/genkit"
)

// IterSeq asserts the lazy sequence expectations on a push style sequence.
// The maker function is expected to return a non-empty, finite sequence.
func IterSeq[T any](mk func(testing.TB) iter.Seq[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the sequence", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("the iteration can be broken early", func(t *testcase.T) {
		var count int
		for range subject.Get(t) {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	return s.AsSuite("lazy sequence")
}

// Generator asserts the pull protocol expectations on a generator.
// The maker function is expected to return a non-empty, finite generator.
func Generator[T any](mk func(testing.TB) genkit.Generator[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) genkit.Generator[T] {
		return mk(t)
	})

	s.Then("values can be taken until exhaustion", func(t *testcase.T) {
		var vs []T
		for subject.Get(t).Next() {
			vs = append(vs, subject.Get(t).Value())
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("the current value is repeatable", func(t *testcase.T) {
		g := subject.Get(t)
		assert.True(t, g.Next())
		assert.Equal(t, g.Value(), g.Value())
	})

	s.Then("exhaustion is sticky", func(t *testcase.T) {
		g := subject.Get(t)
		for g.Next() {
		}
		assert.False(t, g.Next())
		assert.False(t, g.Next())
	})

	s.Then("stop can be called multiple times", func(t *testcase.T) {
		g := subject.Get(t)
		g.Stop()
		g.Stop()
	})

	s.Then("no values are taken after stop", func(t *testcase.T) {
		g := subject.Get(t)
		g.Stop()
		assert.False(t, g.Next())
	})

	return s.AsSuite("Generator")
}
