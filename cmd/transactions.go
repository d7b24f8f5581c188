package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/omnifolio/renderer"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	output
	account string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "display the transactions of an account" }
func (*transactionsCmd) Usage() string {
	return `ofo transactions -a <account> [-format term|md|html]

  Displays the transactions of an account, in the order of its
  transactions.json file.

Usage Examples:
$ ofo transactions -a commsec-123
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.account, "a", "", "Account ID (required)")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(stderr, "Error: -a flag is required")
		return subcommands.ExitUsageError
	}
	if err := c.checkFormat(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := DecodeBundle(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading data root: %v\n", err)
		return subcommands.ExitFailure
	}
	acc := b.Account(c.account)
	if acc == nil {
		fmt.Fprintf(stderr, "Error: unknown account %q\n", c.account)
		return subcommands.ExitFailure
	}
	if err := c.printMarkdown(renderer.RenderTransactions(renderer.NewAccountTransactions(acc))); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
