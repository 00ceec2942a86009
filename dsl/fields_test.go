package dsl_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/dsl"
)

func TestForm_BuildsFieldsInOrder(t *testing.T) {
	s := dsl.Form("signup").
		Field(dsl.String("name").NonEmpty("name required")).
		Field(dsl.Number("score").Optional().Gte(0, "negative")).
		Field(dsl.Bool("agree")).
		Field(dsl.Enum("plan", "free", "pro")).
		Field(dsl.Date("start").Valid("bad date")).
		Field(dsl.Time("at").Valid("bad time")).
		MustBuild()

	var names []string
	for _, f := range s.Fields() {
		names = append(names, f.Name+":"+f.Kind.String())
	}
	want := []string{"name:string", "score:number", "agree:boolean", "plan:enum", "start:date", "at:time"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("fields (-want +got):\n%s", diff)
	}

	_, errs := s.Validate(context.Background(), goform.RawInput{
		"name": "", "score": -1, "agree": "on", "plan": "gold", "start": "2024-99-01", "at": "7pm",
	})
	wantErrs := goform.FieldErrors{
		"name":  "name required",
		"score": "negative",
		"plan":  "must be one of free, pro",
		"start": "bad date",
		"at":    "bad time",
	}
	if diff := cmp.Diff(wantErrs, errs); diff != "" {
		t.Fatalf("errors (-want +got):\n%s", diff)
	}
}

func TestForm_DuplicateFieldFails(t *testing.T) {
	_, err := dsl.Form("x").Field(dsl.String("a")).Field(dsl.Number("a")).Build()
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestEnum_MessagesAndOptions(t *testing.T) {
	f := dsl.Enum("gender").
		Option("male", "Male").Option("female", "Female").
		Required("Please select gender").
		NotOneOf("Pick a listed gender").
		Spec()
	if diff := cmp.Diff([]string{"male", "female"}, f.OptionValues()); diff != "" {
		t.Fatalf("options (-want +got):\n%s", diff)
	}
	s := dsl.Form("g").Field(dsl.FieldOf(f)).MustBuild()
	_, errs := s.Validate(context.Background(), goform.RawInput{"gender": "x"})
	if errs["gender"] != "Pick a listed gender" {
		t.Fatalf("got %q", errs["gender"])
	}
}

func TestNumber_IntAndInvalid(t *testing.T) {
	s := dsl.Form("n").Field(dsl.Number("qty").Invalid("numbers only").Int("whole numbers only")).MustBuild()
	cases := map[any]string{"2.5": "whole numbers only", "x": "numbers only", "3": ""}
	for in, want := range cases {
		_, errs := s.Validate(context.Background(), goform.RawInput{"qty": in})
		if errs["qty"] != want {
			t.Errorf("qty=%v: got %q want %q", in, errs["qty"], want)
		}
	}
}

func TestString_SecretRegexRefine(t *testing.T) {
	f := dsl.String("pin").Secret().Regex(`^\d+$`, "digits").
		Refine("notZero", func(v any) bool { return v.(string) != "0000" }, "too easy").Spec()
	if !f.Secret || len(f.Rules) != 2 {
		t.Fatalf("unexpected spec %+v", f)
	}
	s := dsl.Form("p").Field(dsl.FieldOf(f)).MustBuild()
	for in, want := range map[string]string{"12a": "digits", "0000": "too easy", "1234": ""} {
		_, errs := s.Validate(context.Background(), goform.RawInput{"pin": in})
		if errs["pin"] != want {
			t.Errorf("pin=%q: got %q want %q", in, errs["pin"], want)
		}
	}
	sch, _ := s.JSONSchema()
	if !sch.Properties["pin"].WriteOnly || sch.Properties["pin"].Pattern != `^\d+$` {
		t.Fatalf("projection: %+v", sch.Properties["pin"])
	}
}
