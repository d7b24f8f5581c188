package omnifolio

import (
	"github.com/etnz/omnifolio/date"
	"github.com/shopspring/decimal"
)

// TransactionKind is a typed string for identifying transactions.
type TransactionKind string

// Transaction kinds accepted in a transactions file.
const (
	Buy  TransactionKind = "buy"
	Sell TransactionKind = "sell"
)

// Transaction represents a buy or sell of an asset in an Account.
type Transaction struct {
	Date         date.Date
	Kind         TransactionKind
	Asset        string          // Asset identifier, as used in market-data.
	Quantity     decimal.Decimal // Quantity is the number of units traded.
	PricePerUnit decimal.Decimal // PricePerUnit is in the account currency.
	Brokerage    decimal.Decimal // Brokerage is the fee paid for the trade.
}

// Equal reports whether t and x have the same content.
func (t Transaction) Equal(x Transaction) bool {
	return t.Date == x.Date &&
		t.Kind == x.Kind &&
		t.Asset == x.Asset &&
		t.Quantity.Equal(x.Quantity) &&
		t.PricePerUnit.Equal(x.PricePerUnit) &&
		t.Brokerage.Equal(x.Brokerage)
}

// Account is a named collection of transactions in a single currency.
//
// Transactions are kept in file order.
type Account struct {
	ID           string
	Name         string
	Currency     string
	Transactions []Transaction

	// Dir is the directory the account was read from.
	Dir string
}
