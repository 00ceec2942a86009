package codec

import (
	"context"
	"time"

	goform "github.com/reoring/goform"
)

// Layouts used by the date and time form controls.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Date returns a Codec between "YYYY-MM-DD" strings and time.Time (UTC midnight).
func Date() goform.Codec[string, time.Time] {
	return &layoutCodec{format: "date", layouts: []string{DateLayout}}
}

// Clock returns a Codec between "HH:MM" (optionally "HH:MM:SS") strings and
// time.Time on the zero date. Encode always emits "HH:MM" unless seconds are set.
func Clock() goform.Codec[string, time.Time] {
	return &layoutCodec{format: "time", layouts: []string{ClockLayout, time.TimeOnly}}
}

// TimeRFC3339 returns a Codec that converts between RFC3339 strings and time.Time.
func TimeRFC3339() goform.Codec[string, time.Time] {
	return &layoutCodec{format: "date-time", layouts: []string{time.RFC3339Nano, time.RFC3339}, utc: true}
}

type layoutCodec struct {
	format  string
	layouts []string
	utc     bool
}

func (c *layoutCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	var err error
	for _, l := range c.layouts {
		var t time.Time
		if t, err = time.Parse(l, a); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goform.Issues{{
		Path: "/", Code: goform.CodeInvalidFormat, Message: "invalid " + c.format,
		Params: map[string]any{"format": c.format, "cause": err.Error()},
	}}
}

func (c *layoutCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	if c.utc {
		b = b.UTC()
	}
	switch c.format {
	case "time":
		if b.Second() != 0 {
			return b.Format(time.TimeOnly), nil
		}
		return b.Format(ClockLayout), nil
	case "date-time":
		// RFC3339Nano trims trailing zeros.
		return b.Format(time.RFC3339Nano), nil
	default:
		return b.Format(c.layouts[0]), nil
	}
}

// Check adapts a codec into a parse check usable by goform.Format.
func Check(c goform.Codec[string, time.Time]) func(string) error {
	return func(s string) error {
		_, err := c.Decode(context.Background(), s)
		return err
	}
}

// FormatName returns the JSON Schema format name handled by c, or "" when c
// is not one of this package's codecs.
func FormatName(c goform.Codec[string, time.Time]) string {
	if lc, ok := c.(*layoutCodec); ok {
		return lc.format
	}
	return ""
}
