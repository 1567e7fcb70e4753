package codec

import (
	"time"

	"github.com/shelfhq/shelf-go/wire"
)

// TimeFormat is the wire form of timestamps: UTC, whole seconds.
const TimeFormat = "2006-01-02T15:04:05Z"

// FromTime encodes t as a wire string, truncated to whole seconds in UTC.
func FromTime(t time.Time) *wire.Node {
	return wire.FromString(t.UTC().Format(TimeFormat))
}

// ParseTime decodes a wire timestamp string.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeFormat, s, time.UTC)
}
