package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/aqualedger/aqualedger"
	"github.com/aqualedger/aqualedger/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	species  string
	quantity string
	price    string
	buyer    string
	mpesa    string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "log a catch sale" }
func (*logCmd) Usage() string {
	return `alc log -species <species> -qty <kg> -price <amount> -buyer <buyer> [-mpesa <code>]

  Records one sale: what was caught, how much it weighed, the total
  amount it sold for and who bought it. The price is the whole sale
  amount, not a per-kg rate. The M-Pesa confirmation code is optional.

Usage Examples:
# 12.5 kg of tilapia sold for 1500 in total.
$ alc log -species Tilapia -qty 12.5 -price 1500 -buyer "Local market"
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.species, "species", "", "Species caught.")
	f.StringVar(&c.quantity, "qty", "", "Weight in kilograms.")
	f.StringVar(&c.price, "price", "", "Total sale amount.")
	f.StringVar(&c.buyer, "buyer", "", "Who bought the catch.")
	f.StringVar(&c.mpesa, "mpesa", "", "M-Pesa confirmation code (optional).")
}

func (c *logCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	created, err := ledger.Create(ctx, aqualedger.RecordFields{
		Species:   c.species,
		Quantity:  c.quantity,
		Price:     c.price,
		Buyer:     c.buyer,
		MpesaCode: c.mpesa,
	})
	if err != nil {
		var verr *aqualedger.ValidationError
		if errors.As(err, &verr) {
			printMarkdown(renderer.ValidityMarkdown(verr.Validity))
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.EntryMarkdown(created))
	return subcommands.ExitSuccess
}
