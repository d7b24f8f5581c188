package omnifolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
)

// LoadMarketData reads the market data of every asset found in dir.
//
// dir must only contain directories, one per asset, and asset IDs must be unique.
func (l *Loader) LoadMarketData(dir string) (map[string]*SingleAssetMarketData, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ioError(dir, err)
	}

	assets := make(map[string]*SingleAssetMarketData)
	for _, e := range entries {
		sub := filepath.Join(dir, e.Name())
		ok, err := isDir(dir, e)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, formatError(sub, "market data must only contain asset directories")
		}
		asset, err := l.loadAsset(sub)
		if err != nil {
			return nil, err
		}
		if prev, exists := assets[asset.ID]; exists {
			return nil, &DuplicateIDError{Scope: "asset", ID: asset.ID, First: prev.Debug.SourceDir, Second: sub}
		}
		assets[asset.ID] = asset
	}
	return assets, nil
}

// loadAsset reads the market data of the asset defined in dir.
func (l *Loader) loadAsset(dir string) (*SingleAssetMarketData, error) {
	path := filepath.Join(dir, configFile)
	obj, err := ReadJSONObject(path)
	if err != nil {
		return nil, err
	}
	r := Record{obj, path, "asset config"}

	asset := &SingleAssetMarketData{Debug: &DebugInfo{SourceDir: dir}}
	if asset.ID, err = r.Identifier("id"); err != nil {
		return nil, err
	}
	if asset.Currency, err = r.Enum("currency", currencyRule(l.Currencies)); err != nil {
		return nil, err
	}
	if asset.Timeseries, err = decodeTimeseries(filepath.Join(dir, timeseriesFile)); err != nil {
		return nil, err
	}

	log := l.logger().WithFields(logrus.Fields{"dir": dir, "asset": asset.ID})
	asset.Events, err = decodeEvents(filepath.Join(dir, eventsFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		asset.Events = nil
	case err != nil && l.Events == EventsLenient:
		log.WithError(err).Warn("ignoring unreadable events file")
		asset.Events = nil
	case err != nil:
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"prices": len(asset.Timeseries),
		"events": len(asset.Events),
	}).Debug("asset loaded")
	return asset, nil
}

// decodeTimeseries reads a timeseries file.
// Entries are returned sorted by date, a date appearing twice is an error.
func decodeTimeseries(path string) ([]TimeseriesEntry, error) {
	rows, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	entries := make([]TimeseriesEntry, 0, len(rows))
	for _, row := range rows {
		e, err := DecodeTimeseriesEntry(path, row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b TimeseriesEntry) int { return a.Date.Compare(b.Date) })
	for i := 1; i < len(entries); i++ {
		if entries[i].Date == entries[i-1].Date {
			return nil, &FieldError{Kind: ErrValidation, Path: path, Field: "date", Context: "timeseries",
				Err: fmt.Errorf("%s appears more than once", entries[i].Date)}
		}
	}
	return entries, nil
}

// decodeEvents reads an events file.
// Events are returned sorted by date, the same event appearing twice is an error.
func decodeEvents(path string) ([]MarketEvent, error) {
	list, err := ReadJSONArray(path)
	if err != nil {
		return nil, err
	}
	events := make([]MarketEvent, 0, len(list))
	for i, v := range list {
		r, err := AsRecord(v, path, fmt.Sprintf("event #%d", i+1))
		if err != nil {
			return nil, err
		}
		ev, err := DecodeMarketEvent(r)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	slices.SortStableFunc(events, func(a, b MarketEvent) int { return a.Date.Compare(b.Date) })
	for i := 1; i < len(events); i++ {
		if events[i].Date == events[i-1].Date && events[i].Kind == events[i-1].Kind {
			return nil, &FieldError{Kind: ErrValidation, Path: path, Field: "date", Context: "events",
				Err: fmt.Errorf("%s event on %s appears more than once", events[i].Kind, events[i].Date)}
		}
	}
	return events, nil
}
