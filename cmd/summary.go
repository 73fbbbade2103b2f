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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	local bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display today's and this week's totals" }
func (*summaryCmd) Usage() string {
	return `alc summary [-local]

  Displays total catch and earnings for today and for the week since
  Monday. By default the figures come from the server; -local computes
  them from the fetched records instead.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.local, "local", false, "Compute the totals locally instead of asking the server.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var report *aqualedger.SummaryReport
	if c.local {
		ledger, err := OpenLedger(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		report = aqualedger.NewSummaryReport(ledger.Records())
	} else {
		session, err := OpenSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		base, err := server()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		s, err := aqualedger.NewClient(base, session).Summary(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		report = &aqualedger.SummaryReport{
			Date:      aqualedger.Today(),
			TodayQty:  s.TodayQty,
			TodayEarn: s.TodayEarn,
			WeekQty:   s.WeekQty,
			WeekEarn:  s.WeekEarn,
		}
	}

	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
