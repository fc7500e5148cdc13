// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspect

import "slices"

// Invoke calls fn with args wrapped by chain.
//
// Before hooks run in chain order, then fn, then After hooks in reverse
// order. With an empty chain Invoke is the raw call fn(args).
func Invoke[A, R any](fn Func[A, R], args A, chain ...Factory[A, R]) (R, error) {
	e := engine[funcCallee[A, R], Factory[A, R], A, R]{target: funcCallee[A, R]{fn: fn}}
	return e.invoke(args, chain)
}

// VoidInvoke calls fn with args wrapped by chain.
// After hooks receive no result argument.
func VoidInvoke[A any](fn VoidFunc[A], args A, chain ...VoidFactory[A]) error {
	e := engine[voidCallee[A], VoidFactory[A], A, Unit]{target: voidCallee[A]{fn: fn}}
	_, err := e.invoke(args, chain)
	return err
}

// MemberInvoke calls method on obj with args wrapped by chain.
//
// obj must stay valid for the duration of the call; it is not checked for
// nil and its lifetime is not managed.
func MemberInvoke[T, A, R any](obj *T, method Method[T, A, R], args A, chain ...Factory[A, R]) (R, error) {
	e := engine[methodCallee[T, A, R], Factory[A, R], A, R]{
		target: methodCallee[T, A, R]{recv: obj, method: method},
	}
	return e.invoke(args, chain)
}

// MemberVoidInvoke calls method on obj with args wrapped by chain.
func MemberVoidInvoke[T, A any](obj *T, method VoidMethod[T, A], args A, chain ...VoidFactory[A]) error {
	e := engine[voidMethodCallee[T, A], VoidFactory[A], A, Unit]{
		target: voidMethodCallee[T, A]{recv: obj, method: method},
	}
	_, err := e.invoke(args, chain)
	return err
}

// Wrap returns a callable that runs fn through chain on every call.
// The chain is copied; later changes to the caller's slice have no effect.
func Wrap[A, R any](fn Func[A, R], chain ...Factory[A, R]) Func[A, R] {
	chain = slices.Clone(chain)
	return func(args A) (R, error) {
		return Invoke(fn, args, chain...)
	}
}

// VoidWrap returns a void callable that runs fn through chain on every call.
func VoidWrap[A any](fn VoidFunc[A], chain ...VoidFactory[A]) VoidFunc[A] {
	chain = slices.Clone(chain)
	return func(args A) error {
		return VoidInvoke(fn, args, chain...)
	}
}

// Bind returns a free callable that calls method on obj.
// Invoke(Bind(obj, m), ...) behaves exactly as MemberInvoke(obj, m, ...).
func Bind[T, A, R any](obj *T, method Method[T, A, R]) Func[A, R] {
	return func(args A) (R, error) {
		return method(obj, args)
	}
}

// VoidBind returns a free void callable that calls method on obj.
func VoidBind[T, A any](obj *T, method VoidMethod[T, A]) VoidFunc[A] {
	return func(args A) error {
		return method(obj, args)
	}
}

// Lift adapts a function that cannot fail into a [Func].
func Lift[A, R any](f func(A) R) Func[A, R] {
	return func(args A) (R, error) {
		return f(args), nil
	}
}
