// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspects

import (
	"context"
	"io"
	"log/slog"
	"time"

	"code.hybscloud.com/aspect"
	"github.com/google/uuid"
)

// LogOption configures a logging aspect.
type LogOption func(*logConfig)

type logConfig struct {
	level   slog.Level
	args    bool
	ret     bool
	elapsed bool
}

// WithLevel sets the level of both records. The default is slog.LevelDebug.
func WithLevel(level slog.Level) LogOption {
	return func(c *logConfig) {
		c.level = level
	}
}

// WithArgs controls whether the argument list is logged. Default true.
func WithArgs(enabled bool) LogOption {
	return func(c *logConfig) {
		c.args = enabled
	}
}

// WithResult controls whether the result is logged. Default true.
func WithResult(enabled bool) LogOption {
	return func(c *logConfig) {
		c.ret = enabled
	}
}

// WithElapsed controls whether the call duration is logged. Default true.
func WithElapsed(enabled bool) LogOption {
	return func(c *logConfig) {
		c.elapsed = enabled
	}
}

func newLogConfig(opts []LogOption) logConfig {
	c := logConfig{level: slog.LevelDebug, args: true, ret: true, elapsed: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// nopLogger discards everything.
func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCallID returns a time-ordered id for one invocation.
func newCallID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// callLog holds the state of one logged invocation.
type callLog struct {
	logger *slog.Logger
	op     string
	cfg    logConfig
	id     string
	start  time.Time
}

func (l *callLog) begin(args any) {
	l.id = newCallID()
	l.start = time.Now()
	attrs := []slog.Attr{slog.String("op", l.op), slog.String("call_id", l.id)}
	if l.cfg.args {
		attrs = append(attrs, slog.Any("args", args))
	}
	l.logger.LogAttrs(context.Background(), l.cfg.level, "call begin", attrs...)
}

func (l *callLog) end(ret any, hasRet bool) {
	attrs := []slog.Attr{slog.String("op", l.op), slog.String("call_id", l.id)}
	if hasRet && l.cfg.ret {
		attrs = append(attrs, slog.Any("ret", ret))
	}
	if l.cfg.elapsed {
		attrs = append(attrs, slog.Duration("elapsed", time.Since(l.start)))
	}
	l.logger.LogAttrs(context.Background(), l.cfg.level, "call end", attrs...)
}

var (
	_ aspect.Aspect[int, int] = (*logging[int, int])(nil)
	_ aspect.VoidAspect[int]  = (*voidLogging[int])(nil)
)

type logging[A, R any] struct {
	callLog
}

func (l *logging[A, R]) Before(args A) error {
	l.begin(args)
	return nil
}

func (l *logging[A, R]) After(_ A, ret R) error {
	l.end(ret, true)
	return nil
}

type voidLogging[A any] struct {
	callLog
}

func (l *voidLogging[A]) Before(args A) error {
	l.begin(args)
	return nil
}

func (l *voidLogging[A]) After(A) error {
	l.end(nil, false)
	return nil
}

// Logging returns a factory for an aspect that logs "call begin" from
// Before and "call end" from After. Both records carry op and a call id
// shared by the pair. A nil logger discards all records.
func Logging[A, R any](logger *slog.Logger, op string, opts ...LogOption) aspect.Factory[A, R] {
	if logger == nil {
		logger = nopLogger()
	}
	cfg := newLogConfig(opts)
	return func() aspect.Aspect[A, R] {
		return &logging[A, R]{callLog{logger: logger, op: op, cfg: cfg}}
	}
}

// VoidLogging is [Logging] for void calls. The end record has no result.
func VoidLogging[A any](logger *slog.Logger, op string, opts ...LogOption) aspect.VoidFactory[A] {
	if logger == nil {
		logger = nopLogger()
	}
	cfg := newLogConfig(opts)
	return func() aspect.VoidAspect[A] {
		return &voidLogging[A]{callLog{logger: logger, op: op, cfg: cfg}}
	}
}
