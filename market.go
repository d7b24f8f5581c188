package omnifolio

import (
	"slices"

	"github.com/etnz/omnifolio/date"
	"github.com/shopspring/decimal"
)

// EventKind is a typed string for identifying market events.
type EventKind string

// ExDistribution marks a per-unit distribution (e.g. a dividend).
const ExDistribution EventKind = "ex-distribution"

// MarketEvent is something that happened to an asset on a given day.
type MarketEvent struct {
	Date         date.Date
	Kind         EventKind
	ValuePerUnit decimal.Decimal
}

// TimeseriesEntry is one daily price of an asset.
type TimeseriesEntry struct {
	Date  date.Date
	Value decimal.Decimal
}

// DebugInfo holds metadata useful to trace data back to the disk.
type DebugInfo struct {
	SourceDir string
}

// SingleAssetMarketData holds market data for a single asset.
//
// Timeseries is sorted by date with unique dates, Events are sorted by date.
type SingleAssetMarketData struct {
	ID         string
	Currency   string
	Timeseries []TimeseriesEntry
	Events     []MarketEvent
	Debug      *DebugInfo
}

// Span returns the range of dates covered by the timeseries.
// ok is false if the timeseries is empty.
func (m *SingleAssetMarketData) Span() (r date.Range, ok bool) {
	if len(m.Timeseries) == 0 {
		return r, false
	}
	return date.Range{From: m.Timeseries[0].Date, To: m.Timeseries[len(m.Timeseries)-1].Date}, true
}

// PriceOn returns the value recorded on day, if any.
func (m *SingleAssetMarketData) PriceOn(day date.Date) (decimal.Decimal, bool) {
	i, found := slices.BinarySearchFunc(m.Timeseries, day, func(e TimeseriesEntry, d date.Date) int { return e.Date.Compare(d) })
	if !found {
		return decimal.Zero, false
	}
	return m.Timeseries[i].Value, true
}
