// Package mass implements the list aggregators: All, Values and Partition.
// Each element is classified on its own; output order is input order.
//
// The Seq variants pull from an iter.Seq and stop pulling as soon as the
// result is known, which is what makes All fail-fast on lazy sources.
package mass
