package callbacks

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := newOptions(nil)

	assert.Equal(t, "", o.name)
	assert.Nil(t, o.panicHandler)
	assert.Equal(t, zerolog.Disabled, o.logger.GetLevel())
}

func TestWithName(t *testing.T) {
	r := NewRegistry[int](WithName("lifecycle"))
	assert.Equal(t, "lifecycle", r.Stats().Name)
}

func TestWithLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	r := NewBoolRegistry[int](WithLogger(logger))
	r.Register(func(int) bool { return true })
	r.Register(func(int) bool { return true })
	r.DispatchUntilTrue(0)

	out := buf.String()
	assert.Contains(t, out, `"message":"dispatch started"`)
	assert.Contains(t, out, `"message":"dispatch short-circuited"`)
	assert.Contains(t, out, `"skipped":1`)
}

func TestWithLoggerRecordsPanics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)

	r := NewRegistry[int](WithLogger(logger), WithPanicHandler(func(Handle, any) {}))
	r.Register(func(int) { panic("bad callback") })
	r.Dispatch(0)

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"panic":"bad callback"`)
	assert.NotContains(t, out, "callback registered")
}

func TestWithPanicHandler(t *testing.T) {
	calls := 0
	o := newOptions([]Option{WithPanicHandler(func(Handle, any) { calls++ })})

	if assert.NotNil(t, o.panicHandler) {
		o.panicHandler(1, "x")
	}
	assert.Equal(t, 1, calls)
}

func TestLaterOptionsOverrideEarlier(t *testing.T) {
	r := NewRegistry[int](WithName("first"), WithName("second"))
	assert.Equal(t, "second", r.Stats().Name)
}
