package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/omnifolio/renderer"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	output
	asset string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display the prices and events of an asset" }
func (*pricesCmd) Usage() string {
	return `ofo prices -s <asset> [-format term|md|html]

  Displays the timeseries of an asset, sorted by date, followed by its
  market events.

Usage Examples:
$ ofo prices -s IVV.AX -format md
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.asset, "s", "", "Asset ID (required)")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		fmt.Fprintln(stderr, "Error: -s flag is required")
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
	asset := b.Asset(c.asset)
	if asset == nil {
		fmt.Fprintf(stderr, "Error: unknown asset %q\n", c.asset)
		return subcommands.ExitFailure
	}
	if err := c.printMarkdown(renderer.RenderPrices(renderer.NewAssetPrices(asset))); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
