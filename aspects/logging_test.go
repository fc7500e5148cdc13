// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aspects_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"code.hybscloud.com/aspect"
	"code.hybscloud.com/aspect/aspects"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonLogger returns a logger writing JSON lines at level and above.
func jsonLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for line := range strings.Lines(buf.String()) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLoggingRecords(t *testing.T) {
	logger, buf := jsonLogger(slog.LevelDebug)
	add := func(a, b int) (int, error) { return a + b, nil }

	got, err := aspect.Invoke2(add, 1, 2, aspects.Logging[aspect.Pair[int, int], int](logger, "add"))
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	recs := records(t, buf)
	require.Len(t, recs, 2)

	begin, end := recs[0], recs[1]
	assert.Equal(t, "call begin", begin["msg"])
	assert.Equal(t, "DEBUG", begin["level"])
	assert.Equal(t, "add", begin["op"])
	assert.Equal(t, map[string]any{"Fst": 1.0, "Snd": 2.0}, begin["args"])

	assert.Equal(t, "call end", end["msg"])
	assert.Equal(t, "add", end["op"])
	assert.Equal(t, 3.0, end["ret"])
	assert.Contains(t, end, "elapsed")

	id, ok := begin["call_id"].(string)
	require.True(t, ok)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, id, end["call_id"])
}

func TestLoggingCallIDPerInvocation(t *testing.T) {
	logger, buf := jsonLogger(slog.LevelDebug)
	fn := aspect.Wrap(aspect.Lift(func(x int) int { return x }), aspects.Logging[int, int](logger, "id"))

	_, _ = fn(1)
	_, _ = fn(2)

	recs := records(t, buf)
	require.Len(t, recs, 4)
	assert.Equal(t, recs[0]["call_id"], recs[1]["call_id"])
	assert.Equal(t, recs[2]["call_id"], recs[3]["call_id"])
	assert.NotEqual(t, recs[0]["call_id"], recs[2]["call_id"])
}

func TestLoggingOptions(t *testing.T) {
	logger, buf := jsonLogger(slog.LevelInfo)
	factory := aspects.Logging[int, int](logger, "quiet",
		aspects.WithLevel(slog.LevelInfo),
		aspects.WithArgs(false),
		aspects.WithResult(false),
		aspects.WithElapsed(false),
	)

	_, err := aspect.Invoke(aspect.Lift(func(x int) int { return x + 1 }), 1, factory)
	require.NoError(t, err)

	recs := records(t, buf)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, "INFO", rec["level"])
		assert.NotContains(t, rec, "args")
		assert.NotContains(t, rec, "ret")
		assert.NotContains(t, rec, "elapsed")
	}
}

func TestLoggingBelowHandlerLevel(t *testing.T) {
	logger, buf := jsonLogger(slog.LevelInfo)
	_, err := aspect.Invoke(aspect.Lift(func(x int) int { return x }), 1, aspects.Logging[int, int](logger, "debug"))
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}

func TestLoggingFailureHasNoEnd(t *testing.T) {
	logger, buf := jsonLogger(slog.LevelDebug)
	boom := errors.New("boom")

	_, err := aspect.Invoke(func(int) (int, error) { return 0, boom }, 1, aspects.Logging[int, int](logger, "fail"))
	require.ErrorIs(t, err, boom)

	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "call begin", recs[0]["msg"])
}

func TestLoggingNilLogger(t *testing.T) {
	got, err := aspect.Invoke(aspect.Lift(func(x int) int { return -x }), 4, aspects.Logging[int, int](nil, "nil"))
	require.NoError(t, err)
	assert.Equal(t, -4, got)

	err = aspect.VoidInvoke(func(int) error { return nil }, 4, aspects.VoidLogging[int](nil, "nil"))
	require.NoError(t, err)
}

func TestVoidLogging(t *testing.T) {
	logger, buf := jsonLogger(slog.LevelDebug)
	err := aspect.VoidInvoke(func(string) error { return nil }, "hi", aspects.VoidLogging[string](logger, "greet"))
	require.NoError(t, err)

	recs := records(t, buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "hi", recs[0]["args"])
	assert.Equal(t, "call end", recs[1]["msg"])
	assert.NotContains(t, recs[1], "ret")
	assert.Contains(t, recs[1], "elapsed")
}
