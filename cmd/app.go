// Package cmd implements the CLI application to log and review catches.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aqualedger/aqualedger"
	"github.com/google/subcommands"
)

// Commands lists every subcommand.
// A main package will call Register on each, and Execute the user-selected one.
var Commands = []subcommands.Command{
	&loginCmd{},
	&logoutCmd{},
	&registerCmd{},
	&logCmd{},
	&historyCmd{},
	&editCmd{},
	&deleteCmd{},
	&dashboardCmd{},
	&summaryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const (
	serverEnv      = "AQUALEDGER_URL"
	sessionFileEnv = "AQUALEDGER_SESSION_FILE"
)

var serverFlag = flag.String("server", "", "Base URL of the AquaLedger service. Defaults to $"+serverEnv+".")
var sessionFileFlag = flag.String("session-file", "", "Path to the session file. Defaults to $"+sessionFileEnv+" or the user config dir.")

// server resolves the service base URL from the flag or the environment.
func server() (string, error) {
	base := *serverFlag
	if base == "" {
		base = os.Getenv(serverEnv)
	}
	if base == "" {
		return "", fmt.Errorf("no server configured: pass -server or set $%s", serverEnv)
	}
	return base, nil
}

// sessionPath resolves where the session persists between invocations.
func sessionPath() string {
	if *sessionFileFlag != "" {
		return *sessionFileFlag
	}
	if p := os.Getenv(sessionFileEnv); p != "" {
		return p
	}
	return aqualedger.DefaultSessionPath()
}

// OpenSession is the central function to load the persisted session.
func OpenSession() (*aqualedger.Session, error) {
	return aqualedger.LoadSession(sessionPath())
}

// OpenLedger loads the session, connects the client and fills the local
// mirror from the server. Every reading or mutating subcommand starts here.
func OpenLedger(ctx context.Context) (*aqualedger.Ledger, error) {
	session, err := OpenSession()
	if err != nil {
		return nil, err
	}
	if !session.Active() {
		return nil, fmt.Errorf("%w: run 'alc login' first", aqualedger.ErrNoSession)
	}
	base, err := server()
	if err != nil {
		return nil, err
	}
	ledger := aqualedger.NewLedger(session, aqualedger.NewClient(base, session), printNotice)
	if err := ledger.Refresh(ctx); err != nil {
		return nil, err
	}
	return ledger, nil
}

// printNotice surfaces operation outcomes on stderr, keeping stdout for
// reports.
func printNotice(n aqualedger.Notice) {
	switch n.Kind {
	case aqualedger.NoticeSuccess:
		fmt.Fprintf(os.Stderr, "✅ %s\n", n.Msg)
	default:
		fmt.Fprintf(os.Stderr, "❌ %s\n", n.Msg)
	}
}
