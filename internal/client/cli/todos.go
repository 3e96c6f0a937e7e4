package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/todokeeper/internal/client/client"
)

func newPingCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, false, func(ctx context.Context, c client.Client) error {
				if err := c.Ping(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			})
		},
	}
}

func newInitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create your counter; required once before adding todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, true, func(ctx context.Context, c client.Client) error {
				counter, err := c.Initialize(ctx)
				if err != nil {
					return err
				}
				return printCounter(cmd.OutOrStdout(), opts.jsonOutput(), counter)
			})
		},
	}
}

func newCounterCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "counter",
		Short: "Show your counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, true, func(ctx context.Context, c client.Client) error {
				counter, err := c.Counter(ctx)
				if err != nil {
					return err
				}
				return printCounter(cmd.OutOrStdout(), opts.jsonOutput(), counter)
			})
		},
	}
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add [title...]",
		Short: "Add a todo",
		Long: `Add a todo with the given title. Without arguments the title is read
from standard input, with a prompt when it is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if len(args) == 0 {
				t, err := opts.readTitle(cmd)
				if err != nil {
					return err
				}
				title = t
			}
			return opts.withClient(cmd, true, func(ctx context.Context, c client.Client) error {
				todo, err := c.Create(ctx, title)
				if err != nil {
					return err
				}
				return printTodo(cmd.OutOrStdout(), opts.jsonOutput(), todo)
			})
		},
	}
}

func newDoneCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <seq>",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSeq(args[0])
			if err != nil {
				return err
			}
			return opts.withClient(cmd, true, func(ctx context.Context, c client.Client) error {
				todo, err := c.MarkComplete(ctx, seq)
				if err != nil {
					return err
				}
				return printTodo(cmd.OutOrStdout(), opts.jsonOutput(), todo)
			})
		},
	}
}

func newEditCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <seq> <title...>",
		Short: "Replace the title of a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSeq(args[0])
			if err != nil {
				return err
			}
			title := strings.Join(args[1:], " ")
			return opts.withClient(cmd, true, func(ctx context.Context, c client.Client) error {
				todo, err := c.Update(ctx, seq, title)
				if err != nil {
					return err
				}
				return printTodo(cmd.OutOrStdout(), opts.jsonOutput(), todo)
			})
		},
	}
}

func newRmCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <seq>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo and reclaim its rent",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSeq(args[0])
			if err != nil {
				return err
			}
			return opts.withClient(cmd, true, func(ctx context.Context, c client.Client) error {
				refund, err := c.Delete(ctx, seq)
				if err != nil {
					return err
				}
				if opts.jsonOutput() {
					return writeJSON(cmd.OutOrStdout(), deleted{Seq: seq, Refund: refund})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted #%d, refunded %d\n", seq, refund)
				return nil
			})
		},
	}
}

func newShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <seq>",
		Short: "Show one todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSeq(args[0])
			if err != nil {
				return err
			}
			return opts.withClient(cmd, true, func(ctx context.Context, c client.Client) error {
				todo, err := c.Get(ctx, seq)
				if err != nil {
					return err
				}
				return printTodo(cmd.OutOrStdout(), opts.jsonOutput(), todo)
			})
		},
	}
}

func newLsCommand(opts *RootOptions) *cobra.Command {
	var pending, completed bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your todos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pending && completed {
				return errors.New("--pending and --completed are mutually exclusive")
			}
			return opts.withClient(cmd, true, func(ctx context.Context, c client.Client) error {
				todos, err := c.List(ctx)
				if err != nil {
					return err
				}
				if pending || completed {
					filtered := todos[:0]
					for _, t := range todos {
						if t.Completed == completed {
							filtered = append(filtered, t)
						}
					}
					todos = filtered
				}
				return printTodos(cmd.OutOrStdout(), opts.jsonOutput(), todos)
			})
		},
	}

	cmd.Flags().BoolVar(&pending, "pending", false, "only todos not yet completed")
	cmd.Flags().BoolVar(&completed, "completed", false, "only completed todos")
	return cmd
}

// readTitle reads one line from stdin, prompting when it is a terminal.
func (o *RootOptions) readTitle(cmd *cobra.Command) (string, error) {
	if o.IsTerminal(o.StdinFd) {
		fmt.Fprint(cmd.ErrOrStderr(), "Title: ")
	}
	line, err := bufio.NewReader(o.Stdin).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.New("no title given")
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

