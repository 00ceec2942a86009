package session

import (
	"context"
	"log/slog"

	goform "github.com/reoring/goform"
)

// Renderer is the presentation collaborator. It only displays what the
// session hands it; raw edits flow back through Form.
type Renderer interface {
	RenderErrors(form string, errs goform.FieldErrors)
	RenderRecord(form string, rec goform.Record)
	RenderPersons(persons []Person)
}

// NopRenderer discards every render.
type NopRenderer struct{}

func (NopRenderer) RenderErrors(string, goform.FieldErrors) {}
func (NopRenderer) RenderRecord(string, goform.Record)      {}
func (NopRenderer) RenderPersons([]Person)                  {}

// LogRenderer renders through structured logs.
type LogRenderer struct {
	Logger *slog.Logger
}

func (r LogRenderer) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func (r LogRenderer) RenderErrors(form string, errs goform.FieldErrors) {
	attrs := make([]slog.Attr, 0, len(errs))
	for field, msg := range errs {
		attrs = append(attrs, slog.String(field, msg))
	}
	r.logger().LogAttrs(context.Background(), slog.LevelInfo, "form invalid",
		slog.String("form", form), slog.Any("errors", slog.GroupValue(attrs...)))
}

func (r LogRenderer) RenderRecord(form string, rec goform.Record) {
	r.logger().Info("form submitted", "form", form, "record", rec.Map())
}

func (r LogRenderer) RenderPersons(persons []Person) {
	r.logger().Info("persons", "count", len(persons))
}
