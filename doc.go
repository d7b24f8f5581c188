// Package omnifolio loads a personal portfolio data root into memory.
//
// A data root is a directory of human-readable, version-controllable files:
//
//	omnifolio.json                     {"omnifolioVersion": -1}
//	accounts/**/config.json            {"id", "name", "currency"}
//	accounts/**/transactions.json      [{"date", "type", "asset", "qty", "pricePerUnit", "brokerage"}, ...]
//	market-data/<asset>/config.json    {"id", "currency"}
//	market-data/<asset>/timeseries.csv date,value
//	market-data/<asset>/events.json    [{"date", "type", "valuePerUnit"}, ...]
//
// Accounts can be nested at any depth, transactions and events files are optional.
//
// [Load] validates everything it reads and returns a [Bundle], or the first
// error found. Errors can be classified with errors.Is against [ErrIO],
// [ErrFormat], [ErrValidation], [ErrInvalidValue] and [ErrDuplicateID].
//
// This package does not compute anything from the data: valuation, gains or
// taxes are left to its users.
package omnifolio
