// Package report turns a finished counting run into stderr diagnostics and an
// optional summary file.
package report

import (
	"github.com/sirupsen/logrus"

	"jank/internal/kmer"
)

// Reporter logs run diagnostics.
type Reporter struct {
	log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Reporter {
	return &Reporter{log: log}
}

// Discards logs one warning per record shorter than k.
func (r *Reporter) Discards(ds []kmer.Discard, k int) {
	for _, d := range ds {
		r.log.WithField("record", d.ID).
			Warnf("Discarding short sequence with length: %d (less than k-mer size: %d)", d.Length, k)
	}
}

// Totals logs the scanned length, k-mer total, and pool size.
func (r *Reporter) Totals(res *kmer.Result) {
	r.log.Infof("Total length of input sequences: %d", res.ScannedLength)
	r.log.Infof("Total number of k-mers counted: %d", res.Table.Total())
	if res.Skipped > 0 {
		r.log.Warnf("Skipped %d windows containing bases other than A, C, G, T", res.Skipped)
	}
	r.log.Infof("Using %d CPU cores", res.Workers)
}
