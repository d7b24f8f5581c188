package omnifolio

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/sirupsen/logrus"
)

// Layout of a data root.
const (
	MarkerFile    = "omnifolio.json" // root marker, holds the format version
	AccountsDir   = "accounts"       // tree of account directories
	MarketDataDir = "market-data"    // one directory per asset

	configFile       = "config.json"
	transactionsFile = "transactions.json"
	timeseriesFile   = "timeseries.csv"
	eventsFile       = "events.json"

	versionField = "omnifolioVersion"
)

// Version is the omnifolioVersion expected in the root marker file.
const Version = -1

// EventsPolicy tells how to handle an events file that exists but cannot be read.
type EventsPolicy int

const (
	// EventsStrict fails the load.
	EventsStrict EventsPolicy = iota
	// EventsLenient logs a warning and loads the asset with no events.
	EventsLenient
)

func (p EventsPolicy) String() string {
	switch p {
	case EventsStrict:
		return "strict"
	case EventsLenient:
		return "lenient"
	default:
		return fmt.Sprintf("EventsPolicy(%d)", int(p))
	}
}

// ParseEventsPolicy parses "strict" or "lenient".
func ParseEventsPolicy(s string) (EventsPolicy, error) {
	switch strings.ToLower(s) {
	case "strict":
		return EventsStrict, nil
	case "lenient":
		return EventsLenient, nil
	default:
		return EventsStrict, fmt.Errorf("invalid events policy %q want %q or %q", s, "strict", "lenient")
	}
}

// Loader loads data roots.
//
// Loading is sequential and aborts on the first error: no partial Bundle is ever returned.
// The zero Loader accepts any currency, is strict about events and expects Version.
type Loader struct {
	Currencies []string           // Currencies supported for accounts and assets. Empty accepts any ISO-4217 code.
	Events     EventsPolicy       // Events is the policy for unreadable events files.
	Version    int64              // Version expected in the root marker file. Zero stands for Version.
	Log        logrus.FieldLogger // Log receives progress. Defaults to the logrus standard logger.
}

// DefaultCurrencies are the currencies supported by a default Loader.
var DefaultCurrencies = []string{"AUD"}

// NewLoader returns a Loader with default settings.
func NewLoader() *Loader {
	return &Loader{
		Currencies: DefaultCurrencies,
		Events:     EventsStrict,
		Version:    Version,
		Log:        logrus.StandardLogger(),
	}
}

// Load loads the data root with default settings.
func Load(root string) (*Bundle, error) { return NewLoader().Load(root) }

// Load reads the root marker file, then the accounts tree, then the market-data tree.
func (l *Loader) Load(root string) (*Bundle, error) {
	if err := l.CheckVersion(filepath.Join(root, MarkerFile)); err != nil {
		return nil, err
	}
	accounts, err := l.LoadAccounts(filepath.Join(root, AccountsDir))
	if err != nil {
		return nil, err
	}
	assets, err := l.LoadMarketData(filepath.Join(root, MarketDataDir))
	if err != nil {
		return nil, err
	}
	l.logger().WithFields(logrus.Fields{
		"root":     root,
		"accounts": len(accounts),
		"assets":   len(assets),
	}).Debug("data root loaded")
	return &Bundle{Accounts: accounts, MarketData: assets}, nil
}

// CheckVersion checks that the marker file is a JSON object whose omnifolioVersion is the expected one.
func (l *Loader) CheckVersion(path string) error {
	obj, err := ReadJSONObject(path)
	if err != nil {
		return err
	}
	jval, err := jsonpath.Get("$."+versionField, obj)
	if err != nil {
		return formatError(path, "missing the property %q", versionField)
	}
	n, ok := jval.(json.Number)
	if !ok {
		return formatError(path, "property %q must be of type 'integer', got %s", versionField, jsonType(jval))
	}
	version, err := n.Int64()
	if err != nil {
		return formatError(path, "property %q must be of type 'integer', got %s", versionField, n)
	}
	want := l.Version
	if want == 0 {
		want = Version
	}
	if version != want {
		return formatError(path, "unsupported %s %d want %d", versionField, version, want)
	}
	return nil
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Log == nil {
		return logrus.StandardLogger()
	}
	return l.Log
}
