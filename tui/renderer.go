package tui

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/session"
)

// Renderer prints session output as plain text.
type Renderer struct {
	Out io.Writer
}

// NewRenderer returns a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer { return &Renderer{Out: out} }

var _ session.Renderer = (*Renderer)(nil)

func (r *Renderer) RenderErrors(form string, errs goform.FieldErrors) {
	if len(errs) == 0 {
		return
	}
	names := make([]string, 0, len(errs))
	for k := range errs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(r.Out, "%s: %s: %s\n", form, n, errs[n])
	}
}

func (r *Renderer) RenderRecord(form string, rec goform.Record) {
	fmt.Fprintf(r.Out, "%s submitted\n", form)
	for _, k := range rec.Keys() {
		v, _ := rec.Get(k)
		fmt.Fprintf(r.Out, "  %s: %v\n", k, v)
	}
}

func (r *Renderer) RenderPersons(persons []session.Person) {
	if len(persons) == 0 {
		fmt.Fprintln(r.Out, "no persons")
		return
	}
	tw := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tAGE\tEMAIL\tGENDER")
	for _, p := range persons {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Username,
			strconv.FormatFloat(p.Age, 'f', -1, 64), p.Email, p.Gender)
	}
	tw.Flush()
}
