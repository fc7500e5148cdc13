// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspect

// Unit is the result type of the void path.
type Unit = struct{}

// Func is a callable taking argument list A and producing R.
type Func[A, R any] func(A) (R, error)

// VoidFunc is a callable taking argument list A and producing no result.
type VoidFunc[A any] func(A) error

// Method is a method expression on *T, such as (*Calc).Add.
type Method[T, A, R any] func(*T, A) (R, error)

// VoidMethod is a method expression on *T producing no result.
type VoidMethod[T, A any] func(*T, A) error

// Aspect wraps a result-producing call.
//
// Before runs ahead of the call with the argument list. After runs once the
// call returned without error, with the argument list and the call's result.
// A non-nil error from either hook aborts the invocation.
type Aspect[A, R any] interface {
	Before(args A) error
	After(args A, ret R) error
}

// VoidAspect wraps a call that produces no result.
type VoidAspect[A any] interface {
	Before(args A) error
	After(args A) error
}

// Factory produces the aspect instance for one invocation.
// A factory is called exactly once per invocation it takes part in.
type Factory[A, R any] func() Aspect[A, R]

// VoidFactory produces the void aspect instance for one invocation.
type VoidFactory[A any] func() VoidAspect[A]

// Of returns a factory that default-constructs T for every invocation.
// *T must implement [Aspect]; the pointer type is inferred:
//
//	aspect.Of[int, string, Audit]()
func Of[A, R, T any, PT interface {
	*T
	Aspect[A, R]
}]() Factory[A, R] {
	return func() Aspect[A, R] {
		return PT(new(T))
	}
}

// VoidOf returns a factory that default-constructs T for every invocation.
// *T must implement [VoidAspect].
func VoidOf[A, T any, PT interface {
	*T
	VoidAspect[A]
}]() VoidFactory[A] {
	return func() VoidAspect[A] {
		return PT(new(T))
	}
}

// hooks is an aspect built from two functions. Nil functions are no-ops.
type hooks[A, R any] struct {
	before func(A) error
	after  func(A, R) error
}

func (h hooks[A, R]) Before(args A) error {
	if h.before == nil {
		return nil
	}
	return h.before(args)
}

func (h hooks[A, R]) After(args A, ret R) error {
	if h.after == nil {
		return nil
	}
	return h.after(args, ret)
}

// Funcs returns a factory for an aspect whose hooks are before and after.
// Either may be nil. Each invocation gets its own instance.
func Funcs[A, R any](before func(A) error, after func(A, R) error) Factory[A, R] {
	return func() Aspect[A, R] {
		return &hooks[A, R]{before: before, after: after}
	}
}

// voidHooks is the void counterpart of hooks.
type voidHooks[A any] struct {
	before func(A) error
	after  func(A) error
}

func (h voidHooks[A]) Before(args A) error {
	if h.before == nil {
		return nil
	}
	return h.before(args)
}

func (h voidHooks[A]) After(args A) error {
	if h.after == nil {
		return nil
	}
	return h.after(args)
}

// VoidFuncs returns a factory for a void aspect whose hooks are before and
// after. Either may be nil.
func VoidFuncs[A any](before func(A) error, after func(A) error) VoidFactory[A] {
	return func() VoidAspect[A] {
		return &voidHooks[A]{before: before, after: after}
	}
}

// Nop returns a factory for an aspect with empty hooks.
// Wrapping a call with Nop is observably the same as calling it directly.
func Nop[A, R any]() Factory[A, R] {
	return Funcs[A, R](nil, nil)
}

// VoidNop returns a factory for a void aspect with empty hooks.
func VoidNop[A any]() VoidFactory[A] {
	return VoidFuncs[A](nil, nil)
}
