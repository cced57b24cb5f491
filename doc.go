// Package watchdesk provides the analytics engine behind a watch-trading
// desk: it turns raw transaction records (watches bought and sold, and the
// contacts involved) into the financial reports a dealer works from.
//
// The core functionalities include:
//   - Inventory: an ordered, read-only collection of watch records, each
//     carrying its full acquisition/disposition lifecycle.
//   - Per-record metrics: net profit and hold time, recomputed from source
//     fields on every pass and never persisted.
//   - Reports: monthly profit aggregation, annual goal projection, peer
//     leaderboard ranking, and per-contact relationship summaries. Reports
//     are plain data structures built by New*Report constructors.
//   - Snapshot encoding: human-readable JSONL for the inventory and the
//     contact book, plus import of the web dashboard's JSON export.
//
// Every computation is pure and synchronous: it operates on an in-memory
// snapshot, never mutates its inputs, and yields identical output for
// identical input. Missing or malformed optional fields are normalized once
// at the boundary (zero for amounts, "not computable" for dates) and never
// surface as errors.
//
// This package serves as the foundational logic for the `wd` command-line
// tool.
package watchdesk
