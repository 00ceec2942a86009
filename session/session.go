// Package session owns the mutable side of the form demo: the two logical
// forms, the person collection and its id counter. A Session is driven from a
// single UI event loop and is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	nanoid "github.com/matoous/go-nanoid/v2"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/forms"
)

// ErrEditUnsupported is returned by EditPerson. The UI offers the action but
// no edit semantics are defined.
var ErrEditUnsupported = errors.New("session: edit person is not supported")

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Session holds the state of one running form session.
type Session struct {
	id       string
	primary  goform.Parser
	person   goform.Parser
	persons  collection
	renderer Renderer
	logger   *slog.Logger
	mode     Mode

	primaryForm *Form
	personForm  *Form
}

// Option configures a Session.
type Option func(*Session)

// WithPrimary replaces the primary (registration) schema.
func WithPrimary(p goform.Parser) Option { return func(s *Session) { s.primary = p } }

// WithPersonSchema replaces the add-person schema.
func WithPersonSchema(p goform.Parser) Option { return func(s *Session) { s.person = p } }

// WithRenderer sets the rendering collaborator.
func WithRenderer(r Renderer) Option { return func(s *Session) { s.renderer = r } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.logger = l } }

// WithMode sets the validation mode of both forms.
func WithMode(m Mode) Option { return func(s *Session) { s.mode = m } }

// New creates a session. Defaults: forms.Registration, forms.Person,
// NopRenderer, slog.Default and OnBlur.
func New(opts ...Option) (*Session, error) {
	s := &Session{mode: OnBlur}
	for _, o := range opts {
		o(s)
	}
	if s.primary == nil {
		s.primary = forms.Registration()
	}
	if s.person == nil {
		s.person = forms.Person()
	}
	if s.renderer == nil {
		s.renderer = NopRenderer{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	id, err := nanoid.Generate(idAlphabet, 10)
	if err != nil {
		return nil, fmt.Errorf("session: id: %w", err)
	}
	s.id = id
	s.logger = s.logger.With("session", id)
	s.primaryForm = NewForm(s.primary, s.mode, s.renderer, func(ctx context.Context, rec goform.Record) error {
		s.commitPrimary(rec)
		return nil
	})
	s.personForm = NewForm(s.person, s.mode, s.renderer, func(ctx context.Context, rec goform.Record) error {
		_, err := s.commitPerson(rec)
		return err
	})
	return s, nil
}

// ID returns the session id used in logs.
func (s *Session) ID() string { return s.id }

// PrimaryForm returns the registration form.
func (s *Session) PrimaryForm() *Form { return s.primaryForm }

// PersonForm returns the add-person form.
func (s *Session) PersonForm() *Form { return s.personForm }

// SubmitPrimary validates raw against the primary schema. A valid record is
// only handed to the renderer; the person collection is untouched.
func (s *Session) SubmitPrimary(ctx context.Context, raw goform.RawInput) (goform.Record, error) {
	rec, err := s.primary.Parse(ctx, raw)
	if err != nil {
		s.rejected(s.primary.Name(), err)
		return goform.Record{}, err
	}
	s.commitPrimary(rec)
	return rec, nil
}

// SubmitAddPerson validates raw against the add-person schema and appends
// the resulting Person with the next id.
func (s *Session) SubmitAddPerson(ctx context.Context, raw goform.RawInput) (Person, error) {
	rec, err := s.person.Parse(ctx, raw)
	if err != nil {
		s.rejected(s.person.Name(), err)
		return Person{}, err
	}
	return s.commitPerson(rec)
}

// DeletePerson removes the person with id. Unknown ids are ignored.
func (s *Session) DeletePerson(id int) {
	if !s.persons.remove(id) {
		s.logger.Debug("delete person: not found", "id", id)
		return
	}
	s.logger.Debug("person deleted", "id", id, "count", len(s.persons.items))
	s.renderer.RenderPersons(s.persons.snapshot())
}

// ListPersons returns a snapshot of the collection in insertion order.
func (s *Session) ListPersons() []Person { return s.persons.snapshot() }

// EditPerson always fails with ErrEditUnsupported and leaves state untouched.
func (s *Session) EditPerson(id int, raw goform.RawInput) error {
	return fmt.Errorf("%w (id %d)", ErrEditUnsupported, id)
}

func (s *Session) commitPrimary(rec goform.Record) {
	s.logger.Debug("primary form submitted", "form", s.primary.Name(), "fields", rec.Len())
	s.renderer.RenderRecord(s.primary.Name(), rec)
}

func (s *Session) commitPerson(rec goform.Record) (Person, error) {
	p, err := goform.Bind[Person](rec)
	if err != nil {
		return Person{}, fmt.Errorf("session: person: %w", err)
	}
	p.ID = s.persons.nextID()
	s.persons.add(p)
	s.logger.Debug("person added", "id", p.ID, "count", len(s.persons.items))
	s.renderer.RenderPersons(s.persons.snapshot())
	return p, nil
}

func (s *Session) rejected(form string, err error) {
	errs := goform.FieldErrorsOf(err)
	s.logger.Debug("form rejected", "form", form, "fields", len(errs))
	s.renderer.RenderErrors(form, errs)
}
