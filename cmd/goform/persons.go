package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reoring/goform/forms"
	"github.com/reoring/goform/session"
	"github.com/reoring/goform/source"
	"github.com/reoring/goform/tui"
)

const personsHelp = `commands:
  add <json>      validate and append a person
  submit <json>   validate the registration form
  delete <id>     remove a person
  edit <id>       (not supported)
  list            print the person list
  quit`

var personsCmd = &cobra.Command{
	Use:   "persons",
	Short: "Run a line-oriented person list session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := mode()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		sess, err := session.New(
			session.WithPrimary(schemas[forms.RegistrationName]),
			session.WithPersonSchema(schemas[forms.PersonName]),
			session.WithRenderer(tui.NewRenderer(out)),
			session.WithLogger(logger),
			session.WithMode(m),
		)
		if err != nil {
			return err
		}
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		if interactive {
			fmt.Fprintln(out, personsHelp)
		}
		return runPersons(context.Background(), sess, cmd.InOrStdin(), out, interactive)
	},
}

func runPersons(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		switch verb {
		case "add":
			raw, err := source.JSON([]byte(rest))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if p, err := sess.SubmitAddPerson(ctx, raw); err == nil {
				fmt.Fprintf(out, "added %s\n", p)
			}
		case "submit":
			raw, err := source.JSON([]byte(rest))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			_, _ = sess.SubmitPrimary(ctx, raw)
		case "delete", "edit":
			id, err := strconv.Atoi(rest)
			if err != nil {
				fmt.Fprintf(out, "%s: invalid id %q\n", verb, rest)
				continue
			}
			if verb == "delete" {
				sess.DeletePerson(id)
				continue
			}
			if err := sess.EditPerson(id, nil); errors.Is(err, session.ErrEditUnsupported) {
				fmt.Fprintln(out, err)
			}
		case "list":
			tui.NewRenderer(out).RenderPersons(sess.ListPersons())
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, personsHelp)
		}
	}
}
