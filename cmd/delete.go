package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id  int64
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a logged catch" }
func (*deleteCmd) Usage() string {
	return `alc delete -id <id> [-y]

  Deletes a catch permanently. Without -y the command asks for
  confirmation first.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the catch to delete.")
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation.")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	confirmed := c.yes
	if !confirmed {
		fmt.Fprintf(os.Stderr, "Delete catch #%d? [y/N] ", c.id)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading confirmation: %v\n", err)
			return subcommands.ExitFailure
		}
		confirmed = strings.EqualFold(strings.TrimSpace(line), "y")
	}
	if !confirmed {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	if err := ledger.Delete(ctx, c.id, confirmed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
