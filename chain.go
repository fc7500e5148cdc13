// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspect

// Chain is an ordered list of aspect factories.
// The first element's scope wraps all the others.
type Chain[A, R any] []Factory[A, R]

// Invoke calls fn with args wrapped by c. See [Invoke].
func (c Chain[A, R]) Invoke(fn Func[A, R], args A) (R, error) {
	return Invoke(fn, args, c...)
}

// Wrap composes c around fn. See [Wrap].
func (c Chain[A, R]) Wrap(fn Func[A, R]) Func[A, R] {
	return Wrap(fn, c...)
}

// Append returns a chain with more placed innermost.
// The receiver's backing array is never written.
func (c Chain[A, R]) Append(more ...Factory[A, R]) Chain[A, R] {
	return append(c[:len(c):len(c)], more...)
}

// VoidChain is an ordered list of void aspect factories.
type VoidChain[A any] []VoidFactory[A]

// Invoke calls fn with args wrapped by c. See [VoidInvoke].
func (c VoidChain[A]) Invoke(fn VoidFunc[A], args A) error {
	return VoidInvoke(fn, args, c...)
}

// Wrap composes c around fn. See [VoidWrap].
func (c VoidChain[A]) Wrap(fn VoidFunc[A]) VoidFunc[A] {
	return VoidWrap(fn, c...)
}

// Append returns a chain with more placed innermost.
func (c VoidChain[A]) Append(more ...VoidFactory[A]) VoidChain[A] {
	return append(c[:len(c):len(c)], more...)
}
