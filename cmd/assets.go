package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/omnifolio/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct {
	output
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list all assets with market data" }
func (*assetsCmd) Usage() string {
	return `ofo assets [-format term|md|html]

  Lists the assets found under market-data/, with the number of prices, the
  first and last day of the timeseries and the number of events.
`
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.checkFormat(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := DecodeBundle(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading data root: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.printMarkdown(renderer.RenderAssets(renderer.NewAssets(b))); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
