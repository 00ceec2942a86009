// Package forms defines the two concrete schemas of the demo: the primary
// registration form and the add-person form, plus their typed records.
package forms
