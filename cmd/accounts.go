package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/omnifolio/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct {
	output
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts" }
func (*accountsCmd) Usage() string {
	return `ofo accounts [-format term|md|html]

  Lists the accounts found under accounts/, with their currency, number of
  transactions and the directory they were read from.
`
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.checkFormat(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := DecodeBundle(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading data root: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.printMarkdown(renderer.RenderAccounts(renderer.NewAccounts(b))); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
