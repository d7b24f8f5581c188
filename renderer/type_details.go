package renderer

import (
	"github.com/etnz/omnifolio"
	"github.com/etnz/omnifolio/date"
	"github.com/shopspring/decimal"
)

// AccountTransactions is the detail of one account.
type AccountTransactions struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Currency     string            `json:"currency"`
	Transactions []TransactionLine `json:"transactions"`
}

// TransactionLine is one transaction, in file order.
type TransactionLine struct {
	Date         date.Date       `json:"date"`
	Type         string          `json:"type"`
	Asset        string          `json:"asset"`
	Quantity     decimal.Decimal `json:"qty"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Brokerage    decimal.Decimal `json:"brokerage"`
}

// NewAccountTransactions creates the detail of acc.
func NewAccountTransactions(acc *omnifolio.Account) *AccountTransactions {
	t := &AccountTransactions{
		ID:           cell(acc.ID),
		Name:         cell(acc.Name),
		Currency:     acc.Currency,
		Transactions: make([]TransactionLine, 0, len(acc.Transactions)),
	}
	for _, tx := range acc.Transactions {
		t.Transactions = append(t.Transactions, TransactionLine{
			Date:         tx.Date,
			Type:         string(tx.Kind),
			Asset:        cell(tx.Asset),
			Quantity:     tx.Quantity,
			PricePerUnit: tx.PricePerUnit,
			Brokerage:    tx.Brokerage,
		})
	}
	return t
}

// AssetPrices is the detail of the market data of one asset.
type AssetPrices struct {
	ID       string      `json:"id"`
	Currency string      `json:"currency"`
	Span     string      `json:"span"`
	Prices   []PriceLine `json:"prices"`
	Events   []EventLine `json:"events"`
}

// PriceLine is one entry of the timeseries.
type PriceLine struct {
	Date  date.Date       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// EventLine is one market event.
type EventLine struct {
	Date         date.Date       `json:"date"`
	Type         string          `json:"type"`
	ValuePerUnit decimal.Decimal `json:"valuePerUnit"`
}

// NewAssetPrices creates the detail of m.
func NewAssetPrices(m *omnifolio.SingleAssetMarketData) *AssetPrices {
	p := &AssetPrices{
		ID:       cell(m.ID),
		Currency: m.Currency,
		Span:     none,
		Prices:   make([]PriceLine, 0, len(m.Timeseries)),
		Events:   make([]EventLine, 0, len(m.Events)),
	}
	if r, ok := m.Span(); ok {
		p.Span = r.String()
	}
	for _, e := range m.Timeseries {
		p.Prices = append(p.Prices, PriceLine{Date: e.Date, Value: e.Value})
	}
	for _, e := range m.Events {
		p.Events = append(p.Events, EventLine{Date: e.Date, Type: string(e.Kind), ValuePerUnit: e.ValuePerUnit})
	}
	return p
}
