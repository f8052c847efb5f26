// Package cryptofolio provides the types and operations to track a personal
// cryptocurrency portfolio. It is designed to be local-first: all state lives
// in two small human-readable JSON documents that the user fully owns.
//
// The core functionalities include:
//   - Ledger Management: one entry per tracked asset, holding the quantity
//     owned, the volume-weighted average purchase cost, and the date of the
//     first acquisition.
//   - Valuation: a stateless report combining the ledger with live quotes to
//     compute per-asset and aggregate value, invested capital, and
//     profit/loss in the active currency.
//   - Goals: a user-defined target portfolio value with optional target date
//     and initial investment, reported as progress, time left, and ROI.
//   - Data Persistence: tolerant loading and plain-JSON saving of the ledger
//     and settings documents.
//
// This package serves as the foundational logic for the `cft` command-line
// tool. Live market data comes from the coingecko subpackage.
package cryptofolio
