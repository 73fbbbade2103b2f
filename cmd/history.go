package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aqualedger/aqualedger"
	"github.com/aqualedger/aqualedger/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	head int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list logged catches, most recent first" }
func (*historyCmd) Usage() string {
	return `alc history [-head <n>]

  Lists all logged catches in the order the server keeps them, most
  recent first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N catches.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records := ledger.Records()
	if c.head > 0 && len(records) > c.head {
		records = records[:c.head]
	}

	printMarkdown(renderer.HistoryMarkdown(aqualedger.NewHistoryReport(records)))
	return subcommands.ExitSuccess
}
