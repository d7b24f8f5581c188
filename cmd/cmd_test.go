package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/omnifolio/docs"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

// useRoot points the global flags to root and isolates the test from any user configuration.
func useRoot(t *testing.T, root string) {
	t.Helper()
	abs, err := filepath.Abs(root)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, kv := range os.Environ() {
		if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, "OMNIFOLIO_") {
			t.Setenv(key, "")
		}
	}
	cfg := filepath.Join(dir, "ofo.yaml")
	if err := os.WriteFile(cfg, []byte("currencies: [AUD]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*rootPath, *configFile, *verbose = abs, cfg, false
	t.Cleanup(func() { *rootPath, *configFile, *verbose = "", "", false })
}

// run executes c with args and returns its status, stdout and stderr.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = os.Stdout, os.Stderr })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	status := c.Execute(context.Background(), f)
	return status, out.String(), errOut.String()
}

var sample = filepath.Join("..", "testdata", "sample")

func TestCheck(t *testing.T) {
	useRoot(t, sample)
	status, out, errOut := run(t, &checkCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("check = %v, stderr: %s", status, errOut)
	}
	if want := "ok: 3 accounts, 2 assets\n"; out != want {
		t.Errorf("check printed %q want %q", out, want)
	}
}

func TestCheckFailure(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "omnifolio.json"), []byte(`{"omnifolioVersion": 2}`), 0644); err != nil {
		t.Fatal(err)
	}
	useRoot(t, root)

	status, out, errOut := run(t, &checkCmd{})
	if status != subcommands.ExitFailure {
		t.Errorf("check = %v want %v", status, subcommands.ExitFailure)
	}
	if out != "" || !strings.Contains(errOut, "omnifolioVersion") {
		t.Errorf("check printed %q, %q want an error about omnifolioVersion", out, errOut)
	}
}

func TestCheckVerbose(t *testing.T) {
	useRoot(t, sample)
	*verbose = true
	status, _, errOut := run(t, &checkCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("check = %v, stderr: %s", status, errOut)
	}
	if !strings.Contains(errOut, `msg="data root loaded"`) || !strings.Contains(errOut, "run=") {
		t.Errorf("check -v logged %q, want debug entries tagged with a run id", errOut)
	}
}

func TestListings(t *testing.T) {
	testCases := []struct {
		name   string
		cmd    subcommands.Command
		args   []string
		status subcommands.ExitStatus
		want   string // in stdout on success, in stderr otherwise
	}{
		{"accounts md", &accountsCmd{}, []string{"-format", "md"}, subcommands.ExitSuccess,
			"| commsec-123 | CommSec ...123 | AUD | 4 | 2019-09-06..2020-08-25 |"},
		{"accounts html", &accountsCmd{}, []string{"-format", "html"}, subcommands.ExitSuccess, ">commsec-123-kids</td>"},
		{"accounts bad format", &accountsCmd{}, []string{"-format", "pdf"}, subcommands.ExitUsageError, "invalid format"},
		{"assets md", &assetsCmd{}, []string{"-format", "md"}, subcommands.ExitSuccess,
			"| IVV.AX | AUD | 4 | 2019-09-06 | 2020-08-25 | 2 |"},
		{"assets html", &assetsCmd{}, []string{"-format", "html"}, subcommands.ExitSuccess, "<table>"},
		{"transactions md", &transactionsCmd{}, []string{"-a", "commsec-123", "-format", "md"}, subcommands.ExitSuccess,
			"| 2020-08-25 | buy | NDQ.AX | 120 | 26.9 | 19.95 |"},
		{"transactions without account", &transactionsCmd{}, nil, subcommands.ExitUsageError, "-a flag is required"},
		{"transactions unknown account", &transactionsCmd{}, []string{"-a", "nope"}, subcommands.ExitFailure, `unknown account "nope"`},
		{"prices md", &pricesCmd{}, []string{"-s", "IVV.AX", "-format", "md"}, subcommands.ExitSuccess,
			"| 2019-12-20 | ex-distribution | 1.8811 |"},
		{"prices without asset", &pricesCmd{}, nil, subcommands.ExitUsageError, "-s flag is required"},
		{"topic md", &topicCmd{}, []string{"-format", "md", "market-data"}, subcommands.ExitSuccess, "# Market data"},
		{"topic unknown", &topicCmd{}, []string{"nope"}, subcommands.ExitFailure, `topic "nope" not found`},
		{"prices unknown asset", &pricesCmd{}, []string{"-s", "VAS.AX"}, subcommands.ExitFailure, `unknown asset "VAS.AX"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useRoot(t, sample)
			status, out, errOut := run(t, tc.cmd, tc.args...)
			if status != tc.status {
				t.Fatalf("%s %q = %v want %v, stderr: %s", tc.cmd.Name(), tc.args, status, tc.status, errOut)
			}
			got := out
			if status != subcommands.ExitSuccess {
				got = errOut
			}
			if !strings.Contains(got, tc.want) {
				t.Errorf("%s %q printed:\n%s\nwant it to contain %q", tc.cmd.Name(), tc.args, got, tc.want)
			}
		})
	}
}

func TestTermFormat(t *testing.T) {
	useRoot(t, sample)
	status, out, errOut := run(t, &assetsCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("assets = %v, stderr: %s", status, errOut)
	}
	if !strings.Contains(out, "NDQ.AX") {
		t.Errorf("assets printed %q want it to list NDQ.AX", out)
	}
}

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("ofo", flag.ContinueOnError), "ofo")
	Register(commander)

	completion := Completion()
	var names []string
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		names = append(names, c.Name())
		if _, ok := completion.Sub[c.Name()]; !ok {
			t.Errorf("Completion() has no entry for command %q", c.Name())
		}
	})
	if len(names) != len(completion.Sub) {
		t.Errorf("Completion() has %d commands want %d: %v", len(completion.Sub), len(names), names)
	}

	topics, err := docs.GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	if diff := cmp.Diff(append(topics, "*"), predictTopics("")); diff != "" {
		t.Errorf("predictTopics() mismatch (-want +got):\n%s", diff)
	}

	useRoot(t, sample)
	if diff := cmp.Diff([]string{"commsec-123", "commsec-123-kids", "super"}, predictAccounts("")); diff != "" {
		t.Errorf("predictAccounts() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"IVV.AX", "NDQ.AX"}, predictAssets("")); diff != "" {
		t.Errorf("predictAssets() mismatch (-want +got):\n%s", diff)
	}
}
