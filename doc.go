// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package aspect provides around-advice call interception for Go.
//
// A callable is invoked wrapped by an ordered chain of aspects. Each aspect
// exposes a Before hook and an After hook; the chain nests strictly, so the
// first listed aspect's scope wraps all the others:
//
//	P1.Before(a); P2.Before(a); ...; r := fn(a); ...; P2.After(a, r); P1.After(a, r)
//
// The engine introduces no reflection, registry, or code generation. The
// chain is a plain slice of factories fixed at the call site, and every
// invocation gets fresh aspect instances.
//
// # Core Contract
//
//   - [Func]: the wrapped callable, func(A) (R, error)
//   - [VoidFunc]: the void callable, func(A) error
//   - [Aspect]: Before(A) error, After(A, R) error
//   - [VoidAspect]: Before(A) error, After(A) error
//   - [Factory], [VoidFactory]: produce one aspect instance per invocation
//
// A single type parameter A carries the whole argument list. Calls with more
// than one argument pack it into [Pair] or [Triple]; the arity adapters
// ([Invoke2], [Invoke3], ...) do the packing for ordinary Go functions.
//
// # Entry Points
//
//   - [Invoke]: free callable with a result
//   - [VoidInvoke]: free callable without a result
//   - [MemberInvoke]: method expression plus receiver, with a result
//   - [MemberVoidInvoke]: method expression plus receiver, without a result
//
// Bound methods are written as Go method expressions, (*T).M, which is the
// direct counterpart of a member-function pointer:
//
//	aspect.MemberInvoke(calc, (*Calc).Add, aspect.Pair[int, int]{Fst: 1, Snd: 2}, chain...)
//
// [Bind] turns the same pair into a free [Func].
//
// # Building Chains
//
//   - [Of], [VoidOf]: default-construct an aspect type per invocation
//   - [Funcs], [VoidFuncs]: build an aspect from hook functions
//   - [Nop], [VoidNop]: empty-effect aspects
//   - [Chain], [VoidChain]: reusable chain values
//   - [Wrap], [VoidWrap]: compose a chain into a new callable
//
// Of resolves the aspect type at compile time; only the type is named:
//
//	type Audit struct{}
//	func (*Audit) Before(a int) error         { ...; return nil }
//	func (*Audit) After(a int, r string) error { ...; return nil }
//
//	s, err := aspect.Invoke(format, 7, aspect.Of[int, string, Audit]())
//
// # Failure
//
// Failures are fail-fast and pass-through. The first error from a Before
// hook, the callable, or an After hook is returned to the caller at once:
//
//   - Before error: nothing downstream runs; the result is the zero value.
//   - Callable error: no After hook runs; the callable's own result and
//     error are returned unchanged.
//   - After error: outer After hooks do not run; the result is the zero value.
//
// Hooks that already ran are not rolled back. Panics are never recovered.
//
// # Void Path
//
// The void entry points share the result-returning engine with [Unit] as the
// result type. [VoidAspect] values are adapted so their After receives no
// result argument.
package aspect
