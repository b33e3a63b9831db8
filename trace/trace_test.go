package trace

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sink := NewSlogSink(logger, NewFixedGenerator("run-001"))
	require.Equal(t, "run-001", sink.Token())

	sink.Step(2, "accept")

	out := buf.String()
	assert.Contains(t, out, "run=run-001")
	assert.Contains(t, out, "depth=2")
	assert.Contains(t, out, "msg=accept")
}

func TestWriterSinkIndents(t *testing.T) {
	var buf bytes.Buffer
	sink := WriterSink{W: &buf}

	sink.Step(0, "enter")
	sink.Step(2, "reject")

	assert.Equal(t, "enter\n    reject\n", buf.String())
}

func TestNopSink(t *testing.T) {
	assert.NotPanics(t, func() { Nop{}.Step(0, "ignored") })
}
