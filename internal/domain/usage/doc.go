// Package usage turns a sparse, irregular sequence of meter readings into
// usage intervals, anomaly flags, a continuous daily usage map, calendar
// aggregates and whole-history totals.
//
// Every function is a pure computation over the full record set passed in.
// Inputs are never mutated and nothing is retained between calls.
package usage
