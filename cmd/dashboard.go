package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aqualedger/aqualedger"
	"github.com/aqualedger/aqualedger/renderer"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	period string
	watch  int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the catch dashboard" }
func (*dashboardCmd) Usage() string {
	return `alc dashboard [-p <period>] [-w n]

  Displays the day-by-day catch series for today or the running week,
  plus the species breakdown and the top buyers across all catches.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "daily", "Bucketing window for the series (daily, weekly).")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := aqualedger.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for {
		report := aqualedger.NewDashboardReport(ledger.Records(), window)
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(renderer.DashboardMarkdown(report))

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
			if err := ledger.Refresh(ctx); err != nil {
				return subcommands.ExitFailure
			}
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
