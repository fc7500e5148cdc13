// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package aspects provides ready-made aspects for the aspect engine.
//
// Every constructor returns a factory, so each invocation gets its own
// instance. Instances may keep per-invocation state, such as a start time
// or a call id, between their Before and After hooks.
//
//   - [Logging], [VoidLogging]: structured log records through log/slog
//   - [Measure], [VoidMeasure]: Prometheus call counters and durations
//   - [When], [VoidWhen]: apply an inner aspect only when an expression holds
//   - [Guard], [VoidGuard]: reject calls whose arguments fail an expression
//   - [Record], [VoidRecord]: append hook events to a [Recorder]
//
// Because After hooks do not run for a failed call, a failure shows up as a
// begin record without a matching end record, and as a started counter
// without a completed counter.
package aspects
