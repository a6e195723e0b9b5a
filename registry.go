package fintypes

import (
	"fmt"
	"sync"
)

// MaxMinorUnitDecimals is the largest minor-unit precision a currency can
// register: 10^18 is the largest power of ten an int64 scale can hold.
const MaxMinorUnitDecimals = 18

// CurrencyMetadata is the runtime-registered precision and display record
// for a currency code the ISO standard does not fully specify.
type CurrencyMetadata struct {
	// Name is the human-readable currency name.
	Name string
	// DecimalPlaces is the minor-unit scale, e.g. 8 for BTC satoshis.
	DecimalPlaces uint32
	// Symbol is the optional display symbol; empty falls back to the code.
	Symbol string
	// SymbolFirst places the symbol before the amount when rendering.
	SymbolFirst bool
	// DefaultLocale is the locale used when formatting without an explicit
	// one; empty falls back to LocaleEnUS.
	DefaultLocale Locale
}

// registry is the process-wide metadata overlay. Reads happen on every
// precision lookup, writes typically once at startup, so a reader-writer
// lock over a plain map keeps lookups cheap while guaranteeing a read never
// observes a partially-written entry.
var registry = struct {
	mu sync.RWMutex
	m  map[string]CurrencyMetadata
}{m: builtinMetadata()}

// builtinMetadata seeds the registry with precision records for common
// non-ISO codes. Hosts may clear or replace any of them at runtime.
func builtinMetadata() map[string]CurrencyMetadata {
	return map[string]CurrencyMetadata{
		"BTC":   {Name: "Bitcoin", DecimalPlaces: 8, Symbol: "₿", SymbolFirst: true},
		"ETH":   {Name: "Ethereum", DecimalPlaces: 18, Symbol: "Ξ", SymbolFirst: true},
		"XMR":   {Name: "Monero", DecimalPlaces: 12},
		"USDT":  {Name: "Tether", DecimalPlaces: 6},
		"USDC":  {Name: "USD Coin", DecimalPlaces: 6},
		"BNB":   {Name: "BNB", DecimalPlaces: 8},
		"ADA":   {Name: "Cardano", DecimalPlaces: 6},
		"SOL":   {Name: "Solana", DecimalPlaces: 9},
		"XRP":   {Name: "XRP", DecimalPlaces: 6},
		"DOT":   {Name: "Polkadot", DecimalPlaces: 10},
		"DOGE":  {Name: "Dogecoin", DecimalPlaces: 8},
		"AVAX":  {Name: "Avalanche", DecimalPlaces: 8},
		"LINK":  {Name: "Chainlink", DecimalPlaces: 8},
		"LTC":   {Name: "Litecoin", DecimalPlaces: 8},
		"MATIC": {Name: "Polygon", DecimalPlaces: 8},
		"UNI":   {Name: "Uniswap", DecimalPlaces: 8},
	}
}

// SetCurrencyMetadata registers or replaces the metadata for a currency
// code. The upsert is idempotent and safe to call concurrently with any
// number of readers. It fails when the code canonicalizes to an empty token
// or the scale exceeds MaxMinorUnitDecimals.
func SetCurrencyMetadata(code string, meta CurrencyMetadata) error {
	token, err := Canonicalize(code)
	if err != nil {
		return err
	}
	if meta.DecimalPlaces > MaxMinorUnitDecimals {
		return fmt.Errorf("%w: metadata scale %d exceeds %d minor-unit digits",
			ErrScaleTooLarge, meta.DecimalPlaces, MaxMinorUnitDecimals)
	}
	registry.mu.Lock()
	registry.m[token] = meta
	registry.mu.Unlock()
	return nil
}

// ClearCurrencyMetadata removes the metadata for a currency code. Clearing
// an absent code is a no-op.
func ClearCurrencyMetadata(code string) {
	token := canon(code)
	if token == "" {
		return
	}
	registry.mu.Lock()
	delete(registry.m, token)
	registry.mu.Unlock()
}

// LookupCurrencyMetadata returns the registered metadata for a currency
// code. Absence is a legitimate state, not an error: precision queries that
// actually need the record report ErrMetadataNotFound themselves.
func LookupCurrencyMetadata(code string) (CurrencyMetadata, bool) {
	token := canon(code)
	registry.mu.RLock()
	meta, ok := registry.m[token]
	registry.mu.RUnlock()
	return meta, ok
}
