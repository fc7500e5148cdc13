// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspect

// Argument tuples and arity adapters.
// An adapter packs the arguments of an ordinary Go function into a tuple and
// runs the same engine as the single-argument entry points; hooks receive the
// tuple.

// Pair holds a two-argument list.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Triple holds a three-argument list.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Thd C
}

// Invoke2 calls fn(a, b) wrapped by chain.
func Invoke2[A, B, R any](fn func(A, B) (R, error), a A, b B, chain ...Factory[Pair[A, B], R]) (R, error) {
	return Invoke(func(p Pair[A, B]) (R, error) {
		return fn(p.Fst, p.Snd)
	}, Pair[A, B]{Fst: a, Snd: b}, chain...)
}

// Invoke3 calls fn(a, b, c) wrapped by chain.
func Invoke3[A, B, C, R any](fn func(A, B, C) (R, error), a A, b B, c C, chain ...Factory[Triple[A, B, C], R]) (R, error) {
	return Invoke(func(t Triple[A, B, C]) (R, error) {
		return fn(t.Fst, t.Snd, t.Thd)
	}, Triple[A, B, C]{Fst: a, Snd: b, Thd: c}, chain...)
}

// VoidInvoke2 calls fn(a, b) wrapped by chain.
func VoidInvoke2[A, B any](fn func(A, B) error, a A, b B, chain ...VoidFactory[Pair[A, B]]) error {
	return VoidInvoke(func(p Pair[A, B]) error {
		return fn(p.Fst, p.Snd)
	}, Pair[A, B]{Fst: a, Snd: b}, chain...)
}

// VoidInvoke3 calls fn(a, b, c) wrapped by chain.
func VoidInvoke3[A, B, C any](fn func(A, B, C) error, a A, b B, c C, chain ...VoidFactory[Triple[A, B, C]]) error {
	return VoidInvoke(func(t Triple[A, B, C]) error {
		return fn(t.Fst, t.Snd, t.Thd)
	}, Triple[A, B, C]{Fst: a, Snd: b, Thd: c}, chain...)
}

// MemberInvoke2 calls method(obj, a, b) wrapped by chain.
// method is a two-argument method expression such as (*Calc).Add.
func MemberInvoke2[T, A, B, R any](obj *T, method func(*T, A, B) (R, error), a A, b B, chain ...Factory[Pair[A, B], R]) (R, error) {
	return MemberInvoke(obj, func(recv *T, p Pair[A, B]) (R, error) {
		return method(recv, p.Fst, p.Snd)
	}, Pair[A, B]{Fst: a, Snd: b}, chain...)
}

// MemberVoidInvoke2 calls method(obj, a, b) wrapped by chain.
func MemberVoidInvoke2[T, A, B any](obj *T, method func(*T, A, B) error, a A, b B, chain ...VoidFactory[Pair[A, B]]) error {
	return MemberVoidInvoke(obj, func(recv *T, p Pair[A, B]) error {
		return method(recv, p.Fst, p.Snd)
	}, Pair[A, B]{Fst: a, Snd: b}, chain...)
}
