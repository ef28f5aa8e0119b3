package genkit_test

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/genkit"
	"go.llib.dev/genkit/genkitcontract"
)

func ExampleRange() {
	for n := range genkit.Range(5) {
		_ = n // 0, 1, 2, 3, 4
	}
}

func ExampleRange_withBegin() {
	for n := range genkit.Range(7, genkit.RangeFrom(3)) {
		_ = n // 3, 4, 5, 6
	}
}

func ExampleRange_withBeginAndStep() {
	for n := range genkit.Range(11, genkit.RangeFrom(2), genkit.RangeStep(3)) {
		_ = n // 2, 5, 8
	}
}

func ExampleRange_descending() {
	for n := range genkit.Range(0, genkit.RangeFrom(10), genkit.RangeStep(-2)) {
		_ = n // 10, 8, 6, 4, 2
	}
}

func TestRange_smoke(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, genkit.Collect(genkit.Range(5)))
	assert.Equal(t, []int{3, 4, 5, 6}, genkit.Collect(genkit.Range(7, genkit.RangeFrom(3))))
	assert.Equal(t, []int{2, 5, 8}, genkit.Collect(genkit.Range(11, genkit.RangeFrom(2), genkit.RangeStep(3))))
	assert.Equal(t, []int{10, 8, 6, 4, 2}, genkit.Collect(genkit.Range(0, genkit.RangeFrom(10), genkit.RangeStep(-2))))
}

func TestRange(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("ascending progression", func(s *testcase.Spec) {
		var (
			begin = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntB(3, 7)
			})
			end = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntB(8, 13)
			})
			step = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntB(1, 3)
			})
		)
		act := let.Act(func(t *testcase.T) []int {
			return genkit.Collect(genkit.Range(end.Get(t),
				genkit.RangeFrom(begin.Get(t)),
				genkit.RangeStep(step.Get(t))))
		})

		s.Then("it yields the values of the half-open interval", func(t *testcase.T) {
			var expected []int
			for i := begin.Get(t); i < end.Get(t); i += step.Get(t) {
				expected = append(expected, i)
			}

			t.Must.NotEmpty(expected)
			t.Must.Equal(expected, act(t))
		})

		s.Then("its length is the stride count of the interval", func(t *testcase.T) {
			interval := end.Get(t) - begin.Get(t)
			expLen := (interval + step.Get(t) - 1) / step.Get(t)

			t.Must.Equal(expLen, len(act(t)))
		})
	})

	s.Context("descending progression", func(s *testcase.Spec) {
		var (
			begin = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntB(8, 13)
			})
			end = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntB(3, 7)
			})
			step = let.Var(s, func(t *testcase.T) int {
				return -t.Random.IntB(1, 3)
			})
		)
		act := let.Act(func(t *testcase.T) []int {
			return genkit.Collect(genkit.Range(end.Get(t),
				genkit.RangeFrom(begin.Get(t)),
				genkit.RangeStep(step.Get(t))))
		})

		s.Then("it yields a strictly descending progression while above the end", func(t *testcase.T) {
			var expected []int
			for i := begin.Get(t); end.Get(t) < i; i += step.Get(t) {
				expected = append(expected, i)
			}

			t.Must.NotEmpty(expected)
			t.Must.Equal(expected, act(t))
		})
	})

	s.Context("empty progression", func(s *testcase.Spec) {
		s.Test("when the end is zero", func(t *testcase.T) {
			assert.Empty(t, genkit.Collect(genkit.Range(0)))
		})

		s.Test("when the end is negative", func(t *testcase.T) {
			assert.Empty(t, genkit.Collect(genkit.Range(-t.Random.IntB(1, 42))))
		})

		s.Test("when begin equals the end, regardless of the step's sign", func(t *testcase.T) {
			n := t.Random.IntB(1, 42)
			assert.Empty(t, genkit.Collect(genkit.Range(n, genkit.RangeFrom(n))))
			assert.Empty(t, genkit.Collect(genkit.Range(n, genkit.RangeFrom(n), genkit.RangeStep(-1))))
		})
	})

	s.Test("the progression is computed lazily and supports early break", func(t *testcase.T) {
		var got []int
		for n := range genkit.Range(1_000_000) {
			got = append(got, n)
			if 2 < len(got) {
				break
			}
		}
		assert.Equal(t, []int{0, 1, 2}, got)
	})
}

func TestRange_supportsAnyIntegerType(t *testing.T) {
	assert.Equal(t, []int64{0, 1, 2}, genkit.Collect(genkit.Range[int64](3)))
	assert.Equal(t, []uint{0, 1, 2}, genkit.Collect(genkit.Range[uint](3)))
	assert.Equal(t, []int32{-3, -2, -1}, genkit.Collect(genkit.Range[int32](0, genkit.RangeFrom[int32](-3))))
	assert.Equal(t, []int64{3, 2, 1}, genkit.Collect(genkit.Range[int64](0, genkit.RangeFrom[int64](3), genkit.RangeStep[int64](-1))))
}

func TestRangeStep_zeroStep(t *testing.T) {
	assert.Panic(t, func() {
		genkit.RangeStep(0)
	})
}

func TestRange_implementsLazySequence(t *testing.T) {
	genkitcontract.IterSeq[int](func(tb testing.TB) iter.Seq[int] {
		t := testcase.ToT(&tb)
		begin := t.Random.IntB(3, 7)
		end := t.Random.IntB(8, 13)
		return genkit.Range(end, genkit.RangeFrom(begin))
	}).Test(t)
}
