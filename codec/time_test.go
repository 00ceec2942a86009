package codec_test

import (
	"context"
	"testing"
	"time"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/codec"
)

func TestDate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	d, err := codec.Date().Decode(ctx, "2024-02-29")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Fatalf("unexpected date %v", d)
	}
	s, err := codec.Date().Encode(ctx, d)
	if err != nil || s != "2024-02-29" {
		t.Fatalf("encode: %q %v", s, err)
	}
}

func TestDate_InvalidIsIssue(t *testing.T) {
	_, err := codec.Date().Decode(context.Background(), "2023-02-29")
	iss, ok := goform.AsIssues(err)
	if !ok || iss[0].Code != goform.CodeInvalidFormat {
		t.Fatalf("expected invalid_format issue, got %v", err)
	}
}

func TestClock(t *testing.T) {
	ctx := context.Background()
	for in, want := range map[string]string{"09:30": "09:30", "23:59:58": "23:59:58"} {
		v, err := codec.Clock().Decode(ctx, in)
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		got, _ := codec.Clock().Encode(ctx, v)
		if got != want {
			t.Errorf("encode(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := codec.Clock().Decode(ctx, "25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
}

func TestTimeRFC3339_EncodesUTC(t *testing.T) {
	ctx := context.Background()
	v, err := codec.TimeRFC3339().Decode(ctx, "2024-01-02T03:04:05+09:00")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := codec.TimeRFC3339().Encode(ctx, v)
	if got != "2024-01-01T18:04:05Z" {
		t.Fatalf("got %q", got)
	}
}

func TestCheckAndFormatName(t *testing.T) {
	if err := codec.Check(codec.Date())("2024-13-01"); err == nil {
		t.Fatalf("expected month 13 to fail")
	}
	if codec.FormatName(codec.Clock()) != "time" {
		t.Fatalf("format name")
	}
}
