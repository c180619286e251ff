package result

// unpack returns the payload of either branch. A nil Result is a programming
// error and panics.
func unpack[S, F any](r Result[S, F]) (S, F, bool) {
	switch x := r.(type) {
	case ok[S, F]:
		var f F
		return x.value, f, true
	case err[S, F]:
		var s S
		return s, x.failure, false
	}
	panic("result: use of uninitialized Result")
}

// Map transforms the success value. An Err passes through unchanged.
func Map[S, T, F any](f func(S) T, r Result[S, F]) Result[T, F] {
	v, e, isOk := unpack(r)
	if isOk {
		return Ok[T, F](f(v))
	}
	return Err[T](e)
}

// MapErr transforms the failure value. An Ok passes through unchanged.
func MapErr[S, F, G any](g func(F) G, r Result[S, F]) Result[S, G] {
	v, e, isOk := unpack(r)
	if isOk {
		return Ok[S, G](v)
	}
	return Err[S](g(e))
}

// Bimap transforms the success value with f and the failure value with g.
func Bimap[S, T, F, G any](f func(S) T, g func(F) G, r Result[S, F]) Result[T, G] {
	v, e, isOk := unpack(r)
	if isOk {
		return Ok[T, G](f(v))
	}
	return Err[T](g(e))
}

// Bind chains a Result-producing function on Ok. An Err short-circuits and is
// propagated unchanged; f is not called.
func Bind[S, T, F any](f func(S) Result[T, F], r Result[S, F]) Result[T, F] {
	v, e, isOk := unpack(r)
	if isOk {
		return f(v)
	}
	return Err[T](e)
}

// Either eliminates a Result by calling onOk or onErr, depending on the
// variant, and returning its result.
func Either[S, F, R any](onOk func(S) R, onErr func(F) R, r Result[S, F]) R {
	v, e, isOk := unpack(r)
	if isOk {
		return onOk(v)
	}
	return onErr(e)
}

// Equal compares two Results structurally.
func Equal[S, F comparable](a, b Result[S, F]) bool {
	va, ea, oka := unpack(a)
	vb, eb, okb := unpack(b)
	if oka != okb {
		return false
	}
	if oka {
		return va == vb
	}
	return ea == eb
}
