// Package household is the ledger replay and position valuation engine of a
// personal household ledger and brokerage tracker. It is designed to be
// local-first and auditable: derived state is never stored, it is replayed
// from the full history on every call.
//
// The core functionalities include:
//   - Balance Replay: deriving every account's current cash balance from
//     the full ledger and trade history, as pure, order-independent
//     summation.
//   - Position Valuation: deriving FIFO-lot quantities, average cost and
//     market value per account and instrument from the trade history.
//   - Recurring Expansion: expanding recurring-expense templates into
//     concrete ledger occurrences for a target month, with duplicate
//     suppression against the real ledger.
//   - Monthly History: composing the two replay engines incrementally
//     across the whole recorded month range for trend charts.
//   - Data Persistence: encoding and decoding the household's records to
//     and from human-readable, version-controllable JSONL.
//
// The engine is synchronous and holds no state across invocations. It
// favors silent degradation over errors: unknown account references are
// ignored, a missing FX rate leaves foreign amounts unconverted, and
// malformed history clamps rather than fails, so a caller's screen never
// blanks over one bad record.
//
// This package serves as the foundational logic for the `hhb` command-line
// tool.
package household
