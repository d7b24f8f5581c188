// Command ofo inspects an omnifolio data root.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/omnifolio/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Exits here when invoked by the shell for completion (COMP_LINE is set).
	cmd.Completion().Complete("ofo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
