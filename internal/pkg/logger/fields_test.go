package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeGlobal(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := GetGlobalLogger()
	SetGlobalLogger(&ZapLogger{Logger: zap.New(core)})
	t.Cleanup(func() { SetGlobalLogger(previous) })
	return logs
}

func TestDispatchIdentifierFields(t *testing.T) {
	logs := observeGlobal(t)

	ctx := WithContextFields(context.Background(), PassID("pass-1"))
	InfoCtx(ctx, "Driver assigned",
		TaskGroupID("tg-1"),
		DriverID("driver-1"),
		OrderID("order-1"),
		Err(errors.New("publish failed")),
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "pass-1", fields["pass_id"])
	assert.Equal(t, "tg-1", fields["task_group_id"])
	assert.Equal(t, "driver-1", fields["driver_id"])
	assert.Equal(t, "order-1", fields["order_id"])
	assert.Equal(t, "publish failed", fields["error"])
}

func TestErrNilIsSkipped(t *testing.T) {
	logs := observeGlobal(t)

	Info("Pass finished", Err(nil), Int("groups", 2))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "error")
	assert.Equal(t, int64(2), fields["groups"])
}
