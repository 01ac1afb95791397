package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := Log
	Log = slog.New(slog.NewTextHandler(&buf, nil))
	defer func() { Log = prev }()

	ctx := WithRequestID(context.Background(), "req-123")
	FromContext(ctx).Info("payment executed")

	assert.Contains(t, buf.String(), "request_id=req-123")
	assert.Equal(t, "req-123", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}
