package result_test

import (
	"testing"

	"github.com/npillmayer/fparrow"
	"github.com/npillmayer/fparrow/result"
	"github.com/stretchr/testify/assert"
)

var samples = []string{"", "a", "hello", "ünïcödé"}

func appendS(suffix string) func(string) string {
	return func(s string) string { return s + suffix }
}

func appendM(suffix string) func(string) result.Result[string, string] {
	return func(s string) result.Result[string, string] { return result.Ok[string, string](s + suffix) }
}

func failEmpty(s string) result.Result[string, string] {
	if s == "" {
		return result.Err[string]("empty")
	}
	return result.Ok[string, string](s)
}

func TestFunctorLaws(t *testing.T) {
	a1, a2 := appendS("1"), appendS("2")
	for _, v := range samples {
		for _, r := range []result.Result[string, string]{result.Ok[string, string](v), result.Err[string](v)} {
			assert.Equal(t, r, result.Map(fparrow.Identity[string], r), "identity for %v", r)
			assert.Equal(t, result.Map(a2, result.Map(a1, r)), result.Map(fparrow.Compose(a1, a2), r),
				"composition for %v", r)
		}
	}
}

func TestMapOnlyTouchesOk(t *testing.T) {
	assert.Equal(t, result.Ok[string, string]("ab"), result.Map(appendS("b"), result.Ok[string, string]("a")))
	assert.Equal(t, result.Err[string]("e"), result.Map(appendS("b"), result.Err[string]("e")))
}

func TestBimap(t *testing.T) {
	r := result.Bimap(appendS("b"), appendS("c"), result.Ok[string, string]("a"))
	assert.Equal(t, result.Ok[string, string]("ab"), r)
	r = result.Bimap(appendS("b"), appendS("c"), result.Err[string]("e"))
	assert.Equal(t, result.Err[string]("ec"), r)
}

func TestMonadLaws(t *testing.T) {
	g, h := appendM("s"), failEmpty
	for _, v := range samples {
		// left identity
		assert.Equal(t, g(v), result.Bind(g, result.Ok[string, string](v)))
		assert.Equal(t, h(v), result.Bind(h, result.Ok[string, string](v)))
		for _, m := range []result.Result[string, string]{result.Ok[string, string](v), result.Err[string](v)} {
			// right identity
			assert.Equal(t, m, result.Bind(result.Ok[string, string], m))
			// associativity
			gh := func(s string) result.Result[string, string] { return result.Bind(h, g(s)) }
			assert.Equal(t, result.Bind(h, result.Bind(g, m)), result.Bind(gh, m))
			hg := func(s string) result.Result[string, string] { return result.Bind(g, h(s)) }
			assert.Equal(t, result.Bind(g, result.Bind(h, m)), result.Bind(hg, m))
		}
	}
}

func TestBindChain(t *testing.T) {
	m := result.Ok[string, string]("a")
	assert.Equal(t, result.Ok[string, string]("as"), result.Bind(appendM("s"), m))
	assert.Equal(t, result.Ok[string, string]("ast"), result.Bind(appendM("t"), result.Bind(appendM("s"), m)))
}

func TestErrShortCircuits(t *testing.T) {
	for _, e := range samples {
		called := false
		f := func(s string) result.Result[int, string] {
			called = true
			return result.Ok[int, string](len(s))
		}
		r := result.Bind(f, result.Err[string](e))
		assert.Equal(t, result.Err[int](e), r)
		assert.False(t, called, "bind must not call f for Err(%q)", e)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, result.Equal(result.Ok[int, string](1), result.Ok[int, string](1)))
	assert.False(t, result.Equal(result.Ok[int, string](1), result.Ok[int, string](2)))
	assert.False(t, result.Equal(result.Ok[int, int](1), result.Err[int](1)))
	assert.True(t, result.Equal(result.Err[int]("x"), result.Err[int]("x")))
}
