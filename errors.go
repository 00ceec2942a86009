package goform

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeCustom        = "custom"
)

// Issue represents a single validation entry.
type Issue struct {
	Field   string // Schema field name (for example: username).
	Path    string // JSON Pointer (for example: /username).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"min":3}) for i18n and
	// observability.
	Params map[string]any
	// Rule optionally records the rule name that produced this issue.
	Rule string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_short at /username
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// FieldErrors collapses the issues into field -> message, keeping the first
// message reported for each field.
func (iss Issues) FieldErrors() FieldErrors {
	if len(iss) == 0 {
		return nil
	}
	out := make(FieldErrors, len(iss))
	for _, it := range iss {
		if _, seen := out[it.Field]; seen {
			continue
		}
		out[it.Field] = it.Message
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// FieldErrors maps a field name to the single message of its first failing
// check. A missing key means the field is currently valid.
type FieldErrors map[string]string

// FieldErrorsOf returns the FieldErrors carried by err, or nil when err does
// not wrap Issues.
func FieldErrorsOf(err error) FieldErrors {
	iss, ok := AsIssues(err)
	if !ok {
		return nil
	}
	return iss.FieldErrors()
}

// Has reports whether the field currently has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Clone returns an independent copy.
func (fe FieldErrors) Clone() FieldErrors {
	if fe == nil {
		return nil
	}
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}
