package renderer

import (
	"strings"

	"github.com/etnz/omnifolio"
	"github.com/etnz/omnifolio/date"
)

// none is displayed in place of a missing value.
const none = "-"

// cell escapes s for a markdown table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// Accounts is the listing of all accounts of a bundle.
type Accounts struct {
	Accounts []AccountLine `json:"accounts"`
}

// AccountLine summarizes one account.
type AccountLine struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	Transactions int    `json:"transactions"`
	// Span is the range of transaction dates, or "-" if there are none.
	Span string `json:"span"`
	Dir  string `json:"dir"`
}

// NewAccounts lists the accounts of b in ID order.
func NewAccounts(b *omnifolio.Bundle) *Accounts {
	a := &Accounts{Accounts: make([]AccountLine, 0, len(b.Accounts))}
	for _, id := range b.AccountIDs() {
		acc := b.Account(id)
		dates := make([]date.Date, 0, len(acc.Transactions))
		for _, tx := range acc.Transactions {
			dates = append(dates, tx.Date)
		}
		span := none
		if r, ok := date.Span(dates...); ok {
			span = r.String()
		}
		a.Accounts = append(a.Accounts, AccountLine{
			ID:           cell(acc.ID),
			Name:         cell(acc.Name),
			Currency:     acc.Currency,
			Transactions: len(acc.Transactions),
			Span:         span,
			Dir:          cell(acc.Dir),
		})
	}
	return a
}

// Assets is the listing of all assets of a bundle.
type Assets struct {
	Assets []AssetLine `json:"assets"`
}

// AssetLine summarizes the market data of one asset.
type AssetLine struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Prices   int    `json:"prices"`
	First    string `json:"first"`
	Last     string `json:"last"`
	Events   int    `json:"events"`
}

// NewAssets lists the assets of b in ID order.
func NewAssets(b *omnifolio.Bundle) *Assets {
	a := &Assets{Assets: make([]AssetLine, 0, len(b.MarketData))}
	for _, id := range b.AssetIDs() {
		m := b.Asset(id)
		line := AssetLine{
			ID:       cell(m.ID),
			Currency: m.Currency,
			Prices:   len(m.Timeseries),
			First:    none,
			Last:     none,
			Events:   len(m.Events),
		}
		if r, ok := m.Span(); ok {
			line.First, line.Last = r.From.String(), r.To.String()
		}
		a.Assets = append(a.Assets, line)
	}
	return a
}
