// Package timestamp converts the date-time strings sent by the payment provider into instants.
//
// Upstream senders are not consistent: fractional seconds come with 0 to 9+ digits,
// zones as "Z", "+03:00" or "+0300", and some payloads carry no zone at all.
// Zone-less values are read as UTC. Fractional digits beyond microseconds are
// truncated, never rounded.
package timestamp

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
)

// ErrInvalidTimestamp is returned by Parse for strings no known layout accepts
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Layouts tried in order. Go accepts a fractional second after the seconds field
// even when the layout omits it, so every layout covers 0 to 9 digits.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

var extraFraction = regexp.MustCompile(`(:\d{2})\.(\d{6})\d+`)

// Parse converts raw into a UTC instant with at most microsecond precision.
func Parse(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	value = extraFraction.ReplaceAllString(value, "$1.$2")

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
}

// Normalize returns nil for empty input and for strings Parse rejects; rejections are logged.
func Normalize(ctx context.Context, raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	t, err := Parse(raw)
	if err != nil {
		logger.Warn(ctx, "Unparseable timestamp stored as null",
			zap.String("value", raw),
			zap.Error(err))
		return nil
	}

	return &t
}
