package utils

import (
	"context"
	"errors"
)

// IsContextCanceledErr reports whether err was caused by a cancelled or expired context
func IsContextCanceledErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
