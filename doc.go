// Package portdash turns brokerage CSV exports into a single canonical
// position table and derives the figures a dashboard needs from it.
//
// The core functionalities include:
//   - Source Parsers: reading Fidelity and Charles Schwab position exports,
//     each with its own column mapping and header-detection strategy,
//     dispatched through a single Parse entry point.
//   - Value Coercion: a small, explicit grammar for currency-formatted cells
//     ("$1,234.56", "(12.00)" for negatives) backed by exact decimals.
//   - Normalizer: concatenating whichever sources parsed successfully into
//     one ordered table, tagging every row with its provenance.
//   - Metrics: per-position profit and loss, portfolio weights by value and
//     by cost basis, and the cash versus invested split.
//
// Positions are rebuilt from the export files on every run and are immutable
// once built; nothing is persisted. This package is the foundational logic
// for the `pdash` command-line tool.
package portdash
