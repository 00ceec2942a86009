package forms

import (
	goform "github.com/reoring/goform"
	"github.com/reoring/goform/dsl"
)

// PersonName is the schema name of the add-person form.
const PersonName = "person"

// Person returns the add-person form schema.
func Person() *goform.Schema {
	return dsl.Form(PersonName).
		Field(dsl.String("username").Label("Username").
			NonEmpty("Username is required").
			Min(3, "must be at least 3 characters").
			Max(15, "username can't be more than 15 characters")).
		Field(dsl.Number("age").Label("Age").
			Required("Age is required").
			Invalid("Age is required").
			Gt(18, "Must be adult").
			Lt(150, "Give a realistic age")).
		Field(dsl.String("email").Label("Email").
			NonEmpty("Email is required").
			Email("invalid email")).
		Field(gender()).
		MustBuild()
}

// Builtin returns the schemas shipped with the module keyed by name.
func Builtin() map[string]*goform.Schema {
	return map[string]*goform.Schema{
		RegistrationName: Registration(),
		PersonName:       Person(),
	}
}
