// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspects

import (
	"slices"
	"sync"

	"code.hybscloud.com/aspect"
)

// Recorder is an append-only event log safe for concurrent use.
// The zero value is ready to use.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *Recorder) add(event string) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events in order.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// Record returns a factory for an aspect that records "name.Before" and
// "name.After" in r.
func Record[A, R any](r *Recorder, name string) aspect.Factory[A, R] {
	return aspect.Funcs(
		func(A) error {
			r.add(name + ".Before")
			return nil
		},
		func(A, R) error {
			r.add(name + ".After")
			return nil
		},
	)
}

// VoidRecord is [Record] for void calls.
func VoidRecord[A any](r *Recorder, name string) aspect.VoidFactory[A] {
	return aspect.VoidFuncs(
		func(A) error {
			r.add(name + ".Before")
			return nil
		},
		func(A) error {
			r.add(name + ".After")
			return nil
		},
	)
}
