// Package fintypes provides provider-agnostic financial value types: exact
// monetary amounts, currency metadata, exchange-rate conversion,
// locale-aware formatting and security identifier validation.
//
// The core principles are:
//   - Exact or explicit: amounts are decimals, arithmetic either returns the
//     exact result or an error. The single deliberate rounding point is
//     exchange-rate conversion, quantized to the quote currency's precision.
//   - Open currency space: ISO 4217 codes carry standard metadata, every
//     other input becomes a canonical provider token. A runtime registry
//     supplies precision and display metadata for codes the standard does
//     not cover.
//   - Checksummed identifiers: ISIN and FIGI values exist only when their
//     published check digit holds.
//   - Display is not identity: localized rendering and parsing never affect
//     the canonical wire form "<amount> <CODE>".
//
// This package serves as the foundational logic for the `fin` command-line
// tool and for host applications ingesting financial data from
// heterogeneous providers.
package fintypes
