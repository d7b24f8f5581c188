package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "load the data root and report any error" }
func (*checkCmd) Usage() string {
	return `ofo check

  Loads the whole data root: the omnifolio.json marker, every account under
  accounts/ and every asset under market-data/. Prints a one line summary,
  or the first error found.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBundle(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "ok: %d accounts, %d assets\n", len(b.Accounts), len(b.MarketData))
	return subcommands.ExitSuccess
}
