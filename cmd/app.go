// Package cmd implements the ofo commands to inspect an omnifolio data root.
package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/omnifolio"
	"github.com/etnz/omnifolio/config"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&checkCmd{}, "data")
	c.Register(&accountsCmd{}, "data")
	c.Register(&assetsCmd{}, "data")
	c.Register(&transactionsCmd{}, "data")
	c.Register(&pricesCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rootPath = flag.String("root", "", "Path to the data root. Defaults to the configured root.")
var configFile = flag.String("config", "", "Path to the configuration file. Defaults to ofo.yaml in the working directory or in $HOME/.config/omnifolio.")
var verbose = flag.Bool("v", false, "Log debug messages to stderr.")

// stdout and stderr are replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// DecodeBundle loads the configured data root.
// Logs are written to w, tagged with a new run id.
func DecodeBundle(w io.Writer) (*omnifolio.Bundle, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *rootPath != "" {
		cfg.Root = *rootPath
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := cfg.Logger(w)
	if err != nil {
		return nil, err
	}
	log := logger.WithField("run", uuid.NewString())

	loader, err := cfg.Loader(log)
	if err != nil {
		return nil, err
	}
	log.WithField("root", cfg.Root).Debug("loading data root")
	return loader.Load(cfg.Root)
}

// output holds the -format flag of the commands printing markdown.
type output struct {
	format string
}

func (o *output) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "format", "term", "Output format: 'term' renders markdown for the terminal, 'md' prints raw markdown, 'html' converts it to html.")
}

// checkFormat validates the -format flag.
func (o *output) checkFormat() error {
	switch o.format {
	case "term", "md", "html":
		return nil
	default:
		return fmt.Errorf("invalid format %q want 'term', 'md' or 'html'", o.format)
	}
}

// printMarkdown prints md to stdout in the selected format.
func (o *output) printMarkdown(md string) error {
	switch o.format {
	case "md":
		_, err := io.WriteString(stdout, md)
		return err
	case "html":
		var buf bytes.Buffer
		if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(md), &buf); err != nil {
			return fmt.Errorf("cannot convert markdown to html: %w", err)
		}
		_, err := buf.WriteTo(stdout)
		return err
	default:
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err != nil {
			return fmt.Errorf("cannot create markdown renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("cannot render markdown: %w", err)
		}
		_, err = io.WriteString(stdout, out)
		return err
	}
}
