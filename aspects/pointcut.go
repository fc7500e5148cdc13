// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspects

import (
	"errors"
	"fmt"

	"code.hybscloud.com/aspect"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrRejected is returned by a guard whose expression does not hold.
var ErrRejected = errors.New("aspects: call rejected")

// pointcut is a compiled boolean expression over the argument list.
// The expression sees the argument list as the variable args.
type pointcut struct {
	src     string
	program *vm.Program
}

func compilePointcut(src string) (*pointcut, error) {
	program, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("aspects: compile %q: %w", src, err)
	}
	return &pointcut{src: src, program: program}, nil
}

func (p *pointcut) match(args any) (bool, error) {
	out, err := expr.Run(p.program, map[string]any{"args": args})
	if err != nil {
		return false, fmt.Errorf("aspects: evaluate %q: %w", p.src, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

var (
	_ aspect.Aspect[int, int] = (*when[int, int])(nil)
	_ aspect.VoidAspect[int]  = (*voidWhen[int])(nil)
)

// when applies inner for one invocation if the pointcut matched in Before.
type when[A, R any] struct {
	pc     *pointcut
	inner  aspect.Factory[A, R]
	active aspect.Aspect[A, R]
}

func (w *when[A, R]) Before(args A) error {
	ok, err := w.pc.match(args)
	if err != nil || !ok {
		return err
	}
	w.active = w.inner()
	return w.active.Before(args)
}

func (w *when[A, R]) After(args A, ret R) error {
	if w.active == nil {
		return nil
	}
	return w.active.After(args, ret)
}

// When returns a factory for an aspect that applies inner only to calls
// whose arguments satisfy src. src is an expr-lang boolean expression
// evaluated once per invocation, in Before, with the argument list bound
// to args; the decision holds for that invocation's After as well.
//
//	f, err := aspects.When("args.Fst > 100", aspects.Logging[aspect.Pair[int, int], int](logger, "add"))
//
// inner is constructed only for matching invocations. An evaluation error
// fails the call from Before.
func When[A, R any](src string, inner aspect.Factory[A, R]) (aspect.Factory[A, R], error) {
	pc, err := compilePointcut(src)
	if err != nil {
		return nil, err
	}
	return func() aspect.Aspect[A, R] {
		return &when[A, R]{pc: pc, inner: inner}
	}, nil
}

type voidWhen[A any] struct {
	pc     *pointcut
	inner  aspect.VoidFactory[A]
	active aspect.VoidAspect[A]
}

func (w *voidWhen[A]) Before(args A) error {
	ok, err := w.pc.match(args)
	if err != nil || !ok {
		return err
	}
	w.active = w.inner()
	return w.active.Before(args)
}

func (w *voidWhen[A]) After(args A) error {
	if w.active == nil {
		return nil
	}
	return w.active.After(args)
}

// VoidWhen is [When] for void calls.
func VoidWhen[A any](src string, inner aspect.VoidFactory[A]) (aspect.VoidFactory[A], error) {
	pc, err := compilePointcut(src)
	if err != nil {
		return nil, err
	}
	return func() aspect.VoidAspect[A] {
		return &voidWhen[A]{pc: pc, inner: inner}
	}, nil
}

func (p *pointcut) guard(args any) error {
	ok, err := p.match(args)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrRejected, p.src)
	}
	return nil
}

// Guard returns a factory for an aspect whose Before fails with
// [ErrRejected] unless the arguments satisfy src.
func Guard[A, R any](src string) (aspect.Factory[A, R], error) {
	pc, err := compilePointcut(src)
	if err != nil {
		return nil, err
	}
	return aspect.Funcs[A, R](func(args A) error { return pc.guard(args) }, nil), nil
}

// VoidGuard is [Guard] for void calls.
func VoidGuard[A any](src string) (aspect.VoidFactory[A], error) {
	pc, err := compilePointcut(src)
	if err != nil {
		return nil, err
	}
	return aspect.VoidFuncs[A](func(args A) error { return pc.guard(args) }, nil), nil
}
