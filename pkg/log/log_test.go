package log

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrorWithTraceID(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	NewLogger().SetOutput(io.Discard)

	t.Run("reuses the request id as the trace id", func(t *testing.T) {
		traceID := ErrorWithTraceID(Fields{RequestIDKey: "req-1"}, "boom")
		assert.Equal(t, "req-1", traceID)
	})

	t.Run("generates a trace id when no request id is present", func(t *testing.T) {
		traceID := ErrorWithTraceID(Fields{}, "boom")

		_, err := uuid.Parse(traceID)
		assert.NoError(t, err)
	})

	t.Run("nil fields", func(t *testing.T) {
		traceID := ErrorWithTraceID(nil, "boom")
		assert.NotEmpty(t, traceID)
	})
}
