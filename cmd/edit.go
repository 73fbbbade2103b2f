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

type editCmd struct {
	id       int64
	species  string
	quantity string
	price    string
	buyer    string
	mpesa    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a logged catch" }
func (*editCmd) Usage() string {
	return `alc edit -id <id> [-species <species>] [-qty <kg>] [-price <amount>] [-buyer <buyer>] [-mpesa <code>]

  Updates a catch. Fields left out keep their current value; pass
  -mpesa "" to clear the M-Pesa code. The server-assigned id and date
  never change.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the catch to edit.")
	f.StringVar(&c.species, "species", "", "New species.")
	f.StringVar(&c.quantity, "qty", "", "New weight in kilograms.")
	f.StringVar(&c.price, "price", "", "New total sale amount.")
	f.StringVar(&c.buyer, "buyer", "", "New buyer.")
	f.StringVar(&c.mpesa, "mpesa", "", "New M-Pesa confirmation code.")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	draft, err := ledger.BeginEdit(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// only flags the user actually set override the current values
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "species":
			draft.Species = c.species
		case "qty":
			draft.Quantity = c.quantity
		case "price":
			draft.Price = c.price
		case "buyer":
			draft.Buyer = c.buyer
		case "mpesa":
			draft.MpesaCode = c.mpesa
		}
	})

	if err := ledger.Update(ctx, c.id, draft); err != nil {
		var verr *aqualedger.ValidationError
		if errors.As(err, &verr) {
			printMarkdown(renderer.ValidityMarkdown(verr.Validity))
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	for _, r := range ledger.Records() {
		if r.ID == c.id {
			printMarkdown(renderer.EntryMarkdown(r))
			break
		}
	}
	return subcommands.ExitSuccess
}
