// Package investview turns a CSV export of fixed-income investments into
// portfolio metrics.
//
// The package has two stages, always used in that order:
//   - Parsing: [Parse] validates the whole file and either returns every
//     [Record] in file order or a [*ParseError]. It never returns a partial
//     result.
//   - Valuation: [Evaluate] compounds each record from its acquisition day to
//     a reference day and aggregates totals and allocations into an
//     [Aggregate]. [Series] evaluates the same formula on every acquisition
//     day to draw the performance curve.
//
// Both stages are pure functions over in-memory values: they can be called
// concurrently and recomputed at will.
//
// Everything presented to users (reports, JSON, the HTTP API, the narrative
// summary sent to the language model) derives from these two stages and never
// re-implements the valuation formula.
package investview
