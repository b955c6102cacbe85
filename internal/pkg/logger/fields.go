package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field aliases zap.Field so callers only import this package
type Field = zap.Field

// Dispatch identifiers share one key each so a pass can be followed across components.
const (
	keyPassID      = "pass_id"
	keyOrderID     = "order_id"
	keyTaskGroupID = "task_group_id"
	keyDriverID    = "driver_id"
)

func PassID(id string) Field      { return zap.String(keyPassID, id) }
func OrderID(id string) Field     { return zap.String(keyOrderID, id) }
func TaskGroupID(id string) Field { return zap.String(keyTaskGroupID, id) }
func DriverID(id string) Field    { return zap.String(keyDriverID, id) }

func String(key, val string) Field {
	return zap.String(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Err logs under the "error" key; a nil error yields a field zap skips
func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}
