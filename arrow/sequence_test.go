package arrow_test

import (
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/fparrow/arrow"
	"github.com/stretchr/testify/assert"
)

var primes = []int{2, 3, 5, 7, 11}

func TestMap(t *testing.T) {
	m := arrow.Then(arrow.Then(arrow.Values[int](), arrow.Map(inc)), arrow.Collect[int]())
	assert.Equal(t, []int{3, 4, 6, 8, 12}, m.Apply(primes))
}

func TestMapIsLazy(t *testing.T) {
	var applied []int
	probe := func(n int) int {
		applied = append(applied, n)
		return n
	}
	seq := arrow.Map(probe).Apply(slices.Values(primes))
	assert.Empty(t, applied, "map must not apply f before iteration")
	for n := range seq {
		if n == 5 {
			break
		}
	}
	assert.Equal(t, []int{2, 3, 5}, applied)
}

func TestMapIsRestartable(t *testing.T) {
	seq := arrow.Map(double).Apply(slices.Values(primes))
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
}

func TestReduce(t *testing.T) {
	sum := arrow.Reduce(func(acc, n int) int { return acc + n }, 0)
	assert.Equal(t, 28, sum.Apply(slices.Values(primes)))
	cat := arrow.Reduce(func(acc string, n int) string { return acc + strconv.Itoa(n) }, "")
	assert.Equal(t, "235711", cat.Apply(slices.Values(primes)))
	sub := arrow.Reduce(func(acc, n int) int { return acc - n }, 0)
	assert.Equal(t, -28, sub.Apply(slices.Values(primes)), "reduce folds from the left")
	assert.Equal(t, 0, sum.Apply(slices.Values([]int{})))
}

func TestReduceAfterMap(t *testing.T) {
	var pipeline arrow.Arrow[iter.Seq[int], int] = arrow.Then(arrow.Map(square),
		arrow.Reduce(func(acc, n int) int { return acc + n }, 0))
	assert.Equal(t, 4+9+25+49+121, pipeline.Apply(slices.Values(primes)))
}
