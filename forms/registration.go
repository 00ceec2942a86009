package forms

import (
	"context"
	"fmt"
	"time"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/codec"
	"github.com/reoring/goform/dsl"
)

// RegistrationName is the schema name of the primary form.
const RegistrationName = "registration"

// Gender values accepted by both forms.
var Genders = []goform.Option{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
	{Value: "others", Label: "Others"},
}

func gender() *dsl.EnumBuilder {
	b := dsl.Enum("gender").Label("Gender").Required("Please select gender")
	for _, o := range Genders {
		b.Option(o.Value, o.Label)
	}
	return b
}

// Registration returns the primary form schema.
func Registration() *goform.Schema {
	return dsl.Form(RegistrationName).
		Field(dsl.String("username").Label("Username").
			NonEmpty("Username is required").
			Min(3, "Username must be atleast 3 characters long").
			Max(15, "username can't be more than 15 characters")).
		Field(dsl.String("password").Label("Password").Secret().
			NonEmpty("Password is required").
			Min(6, "password must contain atleast 6 characters").
			Max(25, "password must not exceed 25 characters")).
		Field(dsl.Number("age").Label("Age").
			Required("Age is required").
			Invalid("Age is required").
			Gt(18, "Must be adult").
			Lt(150, "Give a realistic age")).
		Field(dsl.String("email").Label("Email").
			NonEmpty("Email is required").
			Email("invalid email")).
		Field(dsl.Bool("isStudent").Label("Student")).
		Field(gender()).
		Field(dsl.Date("date").Label("Date").NonEmpty("Please provide a date")).
		Field(dsl.Time("time").Label("Time").NonEmpty("Please provide a time")).
		MustBuild()
}

// RegistrationData is the typed view of a validated registration record.
type RegistrationData struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Age       float64   `json:"age"`
	Email     string    `json:"email"`
	IsStudent bool      `json:"isStudent"`
	Gender    string    `json:"gender"`
	Date      time.Time `json:"-"`
	Time      time.Time `json:"-"`
}

// RegistrationOf decodes a validated registration record. Date and time are
// decoded with the form control codecs.
func RegistrationOf(ctx context.Context, rec goform.Record) (RegistrationData, error) {
	out, err := goform.Bind[RegistrationData](rec)
	if err != nil {
		return RegistrationData{}, err
	}
	if out.Date, err = codec.Date().Decode(ctx, rec.String("date")); err != nil {
		return RegistrationData{}, fmt.Errorf("forms: registration date: %w", err)
	}
	if out.Time, err = codec.Clock().Decode(ctx, rec.String("time")); err != nil {
		return RegistrationData{}, fmt.Errorf("forms: registration time: %w", err)
	}
	return out, nil
}
