package omnifolio

import (
	"maps"
	"slices"
)

// Bundle is the result of one successful load of a data root.
// It is read-only once returned.
type Bundle struct {
	Accounts   map[string]*Account               // by account ID
	MarketData map[string]*SingleAssetMarketData // by asset ID
}

// Account returns the account with that ID or nil.
func (b *Bundle) Account(id string) *Account { return b.Accounts[id] }

// Asset returns the market data of the asset with that ID or nil.
func (b *Bundle) Asset(id string) *SingleAssetMarketData { return b.MarketData[id] }

// AccountIDs returns all account IDs in alphabetical order.
func (b *Bundle) AccountIDs() []string { return slices.Sorted(maps.Keys(b.Accounts)) }

// AssetIDs returns all asset IDs in alphabetical order.
func (b *Bundle) AssetIDs() []string { return slices.Sorted(maps.Keys(b.MarketData)) }
