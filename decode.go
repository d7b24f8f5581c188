package omnifolio

import (
	"errors"
	"fmt"

	"github.com/etnz/omnifolio/date"
	"github.com/shopspring/decimal"
)

// DecodeTransaction decodes a transaction from a JSON object.
//
// All of date, type, asset, qty, pricePerUnit and brokerage are required.
func DecodeTransaction(r Record) (tx Transaction, err error) {
	if tx.Date, err = r.Date("date"); err != nil {
		return tx, err
	}
	kind, err := r.Enum("type", "txkind")
	if err != nil {
		return tx, err
	}
	tx.Kind = TransactionKind(kind)
	if tx.Asset, err = r.String("asset"); err != nil {
		return tx, err
	}
	if tx.Quantity, err = r.Decimal("qty"); err != nil {
		return tx, err
	}
	if tx.PricePerUnit, err = r.Decimal("pricePerUnit"); err != nil {
		return tx, err
	}
	if tx.Brokerage, err = r.Decimal("brokerage"); err != nil {
		return tx, err
	}
	return tx, nil
}

// DecodeMarketEvent decodes a market event from a JSON object.
func DecodeMarketEvent(r Record) (ev MarketEvent, err error) {
	if ev.Date, err = r.Date("date"); err != nil {
		return ev, err
	}
	kind, err := r.Enum("type", "eventkind")
	if err != nil {
		return ev, err
	}
	ev.Kind = EventKind(kind)
	if ev.ValuePerUnit, err = r.Decimal("valuePerUnit"); err != nil {
		return ev, err
	}
	return ev, nil
}

// DecodeTimeseriesEntry decodes a "date,value" CSV row read from path.
// Extra columns are ignored.
func DecodeTimeseriesEntry(path string, row CSVRow) (TimeseriesEntry, error) {
	fail := func(column string, err error) error {
		return &FieldError{Kind: ErrValidation, Path: path, Field: column, Context: fmt.Sprintf("line %d", row.Line), Err: err}
	}
	cell := func(i int) string {
		if i < len(row.Fields) {
			return row.Fields[i]
		}
		return ""
	}

	var e TimeseriesEntry
	txt := cell(0)
	if txt == "" {
		return e, fail("date", errors.New("blank date"))
	}
	on, err := date.Parse(txt)
	if err != nil {
		return e, fail("date", err)
	}
	e.Date = on

	txt = cell(1)
	if txt == "" {
		return e, fail("value", errors.New("blank value"))
	}
	value, err := decimal.NewFromString(txt)
	if err != nil {
		return e, fail("value", fmt.Errorf("%q is not a number", txt))
	}
	e.Value = value
	return e, nil
}
