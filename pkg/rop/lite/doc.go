// Package lite lifts the solo combinators over channels for concurrent
// pipelines, and collects channels with the mass aggregators.
//
// Common usage:
// - Run: execute a stage over an input channel with a fixed number of lines
// - Map/MapErr/AndThen/OrElseLazy/Flatten: stages built from solo
// - All/Values/Partition: drain a channel through mass
//
// With more than one line the output order is not the input order.
package lite
