package goform_test

import (
	"encoding/json"
	"math"
	"testing"

	goform "github.com/reoring/goform"
)

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		in   any
		want goform.Coerced
	}{
		{nil, goform.Coerced{Presence: goform.Absent}},
		{42, goform.Coerced{Value: float64(42), Presence: goform.Present}},
		{int64(7), goform.Coerced{Value: float64(7), Presence: goform.Present}},
		{float32(1.5), goform.Coerced{Value: float64(1.5), Presence: goform.Present}},
		{" 19 ", goform.Coerced{Value: float64(19), Presence: goform.Present}},
		{json.Number("149"), goform.Coerced{Value: float64(149), Presence: goform.Present}},
		{"", goform.Coerced{Presence: goform.InvalidType}},
		{"12abc", goform.Coerced{Presence: goform.InvalidType}},
		{math.NaN(), goform.Coerced{Presence: goform.InvalidType}},
		{math.Inf(1), goform.Coerced{Presence: goform.InvalidType}},
		{false, goform.Coerced{Presence: goform.InvalidType}},
	}
	for _, tc := range cases {
		if got := goform.CoerceNumber(tc.in); got != tc.want {
			t.Errorf("CoerceNumber(%#v) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestCoerceBool(t *testing.T) {
	cases := []struct {
		in   any
		want goform.Coerced
	}{
		{true, goform.Coerced{Value: true, Presence: goform.Present}},
		{"on", goform.Coerced{Value: true, Presence: goform.Present}},
		{"false", goform.Coerced{Value: false, Presence: goform.Present}},
		{nil, goform.Coerced{Presence: goform.Absent}},
		{"maybe", goform.Coerced{Presence: goform.InvalidType}},
		{1, goform.Coerced{Presence: goform.InvalidType}},
	}
	for _, tc := range cases {
		if got := goform.CoerceBool(tc.in); got != tc.want {
			t.Errorf("CoerceBool(%#v) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestCoerceEnum(t *testing.T) {
	cases := []struct {
		in   any
		want goform.Coerced
	}{
		{"", goform.Coerced{Presence: goform.Absent}},
		{goform.Option{Value: "", Label: "Select"}, goform.Coerced{Presence: goform.Absent}},
		{&goform.Option{Value: "male"}, goform.Coerced{Value: "male", Presence: goform.Present}},
		{"female", goform.Coerced{Value: "female", Presence: goform.Present}},
		{map[string]any{"label": "x"}, goform.Coerced{Presence: goform.InvalidType}},
	}
	for _, tc := range cases {
		if got := goform.CoerceEnum(tc.in); got != tc.want {
			t.Errorf("CoerceEnum(%#v) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestChain_StopsOnNonPresent(t *testing.T) {
	calls := 0
	count := func(v any) goform.Coerced {
		calls++
		return goform.Coerced{Value: v, Presence: goform.Present}
	}
	c := goform.Chain(goform.CoerceString, count)
	if got := c(5); got.Presence != goform.InvalidType {
		t.Fatalf("expected invalid type, got %#v", got)
	}
	if calls != 0 {
		t.Fatalf("stage after failure ran %d times", calls)
	}
	if got := c("x"); got.Value != "x" || calls != 1 {
		t.Fatalf("got %#v calls=%d", got, calls)
	}
}
