// Package kmer counts fixed-length windows over sequence records. It never imports
// app, cli, output, or report; keep it domain-only.
//
// Counting is partition-then-merge: each worker owns a Table, and Count folds
// them together after the pool drains, so no Table is ever shared between goroutines.
package kmer
