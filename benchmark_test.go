// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspect_test

import (
	"testing"

	"code.hybscloud.com/aspect"
)

type empty struct{}

func (*empty) Before(int) error     { return nil }
func (*empty) After(int, int) error { return nil }

func (*empty) Inc(x int) (int, error) { return x + 1, nil }

func inc(x int) (int, error) { return x + 1, nil }

// BenchmarkDirect is the baseline: the callable without the engine.
func BenchmarkDirect(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = inc(1)
	}
}

// BenchmarkInvokeZero measures the engine with an empty chain.
func BenchmarkInvokeZero(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = aspect.Invoke(inc, 1)
	}
}

// BenchmarkInvokeOf measures a chain of default-constructed aspects.
func BenchmarkInvokeOf(b *testing.B) {
	chain := aspect.Chain[int, int]{
		aspect.Of[int, int, empty](),
		aspect.Of[int, int, empty](),
		aspect.Of[int, int, empty](),
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = chain.Invoke(inc, 1)
	}
}

// BenchmarkInvokeFuncs measures a chain of function-built aspects.
func BenchmarkInvokeFuncs(b *testing.B) {
	chain := aspect.Chain[int, int]{aspect.Nop[int, int](), aspect.Nop[int, int](), aspect.Nop[int, int]()}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = chain.Invoke(inc, 1)
	}
}

// BenchmarkMemberInvoke measures the bound-method engine.
func BenchmarkMemberInvoke(b *testing.B) {
	recv := &empty{}
	chain := aspect.Chain[int, int]{aspect.Of[int, int, empty]()}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = aspect.MemberInvoke(recv, (*empty).Inc, 1, chain...)
	}
}

// BenchmarkWrapped measures a precomposed callable.
func BenchmarkWrapped(b *testing.B) {
	fn := aspect.Wrap(inc, aspect.Of[int, int, empty](), aspect.Of[int, int, empty]())
	b.ReportAllocs()
	for b.Loop() {
		_, _ = fn(1)
	}
}
