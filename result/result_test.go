package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/fparrow/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok[int, error](7)
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultPredicates(t *testing.T) {
	if !Ok[int, string](1).IsOk() || Ok[int, string](1).IsErr() {
		t.Error("expected Ok(1) to be ok")
	}
	if Err[int]("e").IsOk() || !Err[int]("e").IsErr() {
		t.Error("expected Err(e) to be an error")
	}
	if s := Ok[int, string](1).String(); s != "Ok(1)" {
		t.Errorf("expected Ok(1), is %q", s)
	}
	if s := Err[int]("e").String(); s != "Err(e)" {
		t.Errorf("expected Err(e), is %q", s)
	}
}

func TestResultEither(t *testing.T) {
	onOk := func(n int) string { return strconv.Itoa(n) }
	onErr := func(e string) string { return "failed: " + e }
	if s := Either(onOk, onErr, Ok[int, string](21)); s != "21" {
		t.Errorf("expected either of Ok(21) to be \"21\", is %q", s)
	}
	if s := Either(onOk, onErr, Err[int]("boom")); s != "failed: boom" {
		t.Errorf("expected either of Err(boom) to be \"failed: boom\", is %q", s)
	}
}

func TestResultTry(t *testing.T) {
	r := Try(strconv.Atoi("42"))
	if !Equal(r, Ok[int, error](42)) {
		t.Errorf("expected Try(Atoi(42)) to be Ok(42), is %v", r)
	}
	r = Try(strconv.Atoi("x"))
	var n int
	var e error
	switch m := r.Match(); m {
	case m.Ok(&n):
		t.Error("expected Try(Atoi(x)) to fail")
	case m.Err(&e):
	}
	var numErr *strconv.NumError
	if !errors.As(e, &numErr) {
		t.Errorf("expected error to be a *strconv.NumError, is %T", e)
	}
}

func TestResultMapErr(t *testing.T) {
	r := MapErr(func(e string) int { return len(e) }, Err[bool]("four"))
	if !Equal(r, Err[bool](4)) {
		t.Errorf("expected MapErr(len) of Err(four) to be Err(4), is %v", r)
	}
	r = MapErr(func(e string) int { return len(e) }, Ok[bool, string](true))
	if !Equal(r, Ok[bool, int](true)) {
		t.Errorf("expected MapErr to leave Ok(true) unchanged, is %v", r)
	}
}

func TestResultUninitialized(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected mapping a nil Result to panic")
		}
	}()
	var r Result[int, string]
	Map(func(n int) int { return n }, r)
}
