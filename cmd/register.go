package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aqualedger/aqualedger"
	"github.com/google/subcommands"
)

type registerCmd struct {
	name     string
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `alc register -name <name> -email <email> -password <password>

  Creates an account on the AquaLedger service. Registering does not log
  in; run 'alc login' afterwards.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name.")
	f.StringVar(&c.email, "email", "", "Account email.")
	f.StringVar(&c.password, "password", "", "Account password.")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -email and -password are required")
		return subcommands.ExitUsageError
	}
	base, err := server()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	msg, err := aqualedger.Register(ctx, base, c.name, c.email, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Registration failed: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
