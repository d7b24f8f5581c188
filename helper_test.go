package omnifolio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/omnifolio/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// writeFiles creates files (relative path to content) under a new temporary directory and returns it.
// A path ending with "/" creates an empty directory.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("cannot create directory %q: %v", path, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("cannot create directory for %q: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("cannot write %q: %v", path, err)
		}
	}
	return root
}

// symlink creates link pointing to target, or skips the test if the platform cannot.
func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("cannot create symbolic link %q: %v", link, err)
	}
}

// validRoot returns the files of a minimal valid data root, that tests can amend.
func validRoot() map[string]string {
	return map[string]string{
		"omnifolio.json":                 `{"omnifolioVersion": -1}`,
		"accounts/main/config.json":      `{"id":"acc1","name":"Main","currency":"AUD"}`,
		"market-data/XYZ/config.json":    `{"id":"XYZ","currency":"AUD"}`,
		"market-data/XYZ/timeseries.csv": "2023-01-05,5.5\n",
	}
}

// newTestLoader returns a default Loader that logs into a hook instead of stderr.
func newTestLoader() (*Loader, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(io.Discard)
	l := NewLoader()
	l.Log = logger
	return l, hook
}

// D is a helper for tests to create a decimal from a const string.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// cmpOpts compares domain values holding decimals and dates.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}
