// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspect

// The engine is generic over the call target C and the chain element F.
// Both are type parameters rather than interface values, so each entry point
// instantiates its own engine and the target call is resolved at compile time.

// callee is the innermost operation of an invocation.
type callee[A, R any] interface {
	call(args A) (R, error)
}

// advisor yields the aspect instance for one level of the chain.
type advisor[A, R any] interface {
	advise() Aspect[A, R]
}

func (f Factory[A, R]) advise() Aspect[A, R] { return f() }

func (f VoidFactory[A]) advise() Aspect[A, Unit] { return voidAdapter[A]{v: f()} }

// voidAdapter presents a VoidAspect as an Aspect with result Unit.
// The Unit result is dropped before reaching the wrapped After.
type voidAdapter[A any] struct {
	v VoidAspect[A]
}

func (a voidAdapter[A]) Before(args A) error { return a.v.Before(args) }

func (a voidAdapter[A]) After(args A, _ Unit) error { return a.v.After(args) }

// funcCallee holds an owned copy of a free callable.
type funcCallee[A, R any] struct {
	fn Func[A, R]
}

func (c funcCallee[A, R]) call(args A) (R, error) { return c.fn(args) }

// voidCallee holds an owned copy of a void callable.
type voidCallee[A any] struct {
	fn VoidFunc[A]
}

func (c voidCallee[A]) call(args A) (Unit, error) { return Unit{}, c.fn(args) }

// methodCallee holds a non-owning receiver and a copy of the method.
// The receiver is not checked for nil.
type methodCallee[T, A, R any] struct {
	recv   *T
	method Method[T, A, R]
}

func (c methodCallee[T, A, R]) call(args A) (R, error) { return c.method(c.recv, args) }

// voidMethodCallee is the void counterpart of methodCallee.
type voidMethodCallee[T, A any] struct {
	recv   *T
	method VoidMethod[T, A]
}

func (c voidMethodCallee[T, A]) call(args A) (Unit, error) { return Unit{}, c.method(c.recv, args) }

// engine runs one invocation of target through a chain.
// It lives for the duration of that invocation only.
type engine[C callee[A, R], F advisor[A, R], A, R any] struct {
	target C
}

// invoke constructs one aspect per chain element, all before the first
// Before hook runs, then runs the nested sequence over them.
// The empty chain is the raw call.
func (e *engine[C, F, A, R]) invoke(args A, chain []F) (R, error) {
	if len(chain) == 0 {
		return e.target.call(args)
	}
	aspects := make([]Aspect[A, R], len(chain))
	for i, f := range chain {
		aspects[i] = f.advise()
	}
	return e.nest(args, aspects)
}

// nest recurses once per aspect. The result travels outward by value and
// every After observes the value the target returned.
func (e *engine[C, F, A, R]) nest(args A, aspects []Aspect[A, R]) (R, error) {
	if len(aspects) == 0 {
		return e.target.call(args)
	}
	p := aspects[0]
	if err := p.Before(args); err != nil {
		var zero R
		return zero, err
	}
	ret, err := e.nest(args, aspects[1:])
	if err != nil {
		return ret, err
	}
	if err := p.After(args, ret); err != nil {
		var zero R
		return zero, err
	}
	return ret, nil
}
