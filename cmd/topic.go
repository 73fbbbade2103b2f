package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aqualedger/aqualedger/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show the embedded documentation" }
func (*topicCmd) Usage() string {
	usage := `alc topic [<topic>...]

  Shows one or more documentation topics. Without arguments the readme
  is shown; '*' shows every topic.
`
	if topics, err := docs.GetAllTopics(); err == nil {
		usage += "\n  Topics: " + strings.Join(topics, ", ") + "\n"
	}
	return usage
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
