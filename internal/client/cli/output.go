package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/todokeeper/internal/todo"
)

// deleted is the --json shape of rm.
type deleted struct {
	Seq    uint64 `json:"seq"`
	Refund uint64 `json:"refund"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func mark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func printTodo(w io.Writer, asJSON bool, t *todo.Record) error {
	if asJSON {
		return writeJSON(w, t)
	}
	_, err := fmt.Fprintf(w, "#%d %s %s\n  address: %s (bump %d)\n  rent:    %d\n",
		t.Seq, mark(t.Completed), t.Title, t.Address, t.Bump, t.Rent)
	return err
}

func printTodos(w io.Writer, asJSON bool, todos []*todo.Record) error {
	if asJSON {
		if todos == nil {
			todos = []*todo.Record{}
		}
		return writeJSON(w, todos)
	}
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, "no todos")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tDONE\tTITLE")
	for _, t := range todos {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.Seq, mark(t.Completed), t.Title)
	}
	return tw.Flush()
}

func printCounter(w io.Writer, asJSON bool, c *todo.Counter) error {
	if asJSON {
		return writeJSON(w, c)
	}
	_, err := fmt.Fprintf(w, "owner:      %s\naddress:    %s (bump %d)\nnext index: %d\nrent:       %d\n",
		c.Owner, c.Address, c.Bump, c.NextIndex, c.Rent)
	return err
}
