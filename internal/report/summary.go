package report

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"jank/internal/kmer"
)

// Summary is the machine-readable record of one run, written as TOML.
type Summary struct {
	Input             string `toml:"input"`
	Format            string `toml:"format"`
	K                 int    `toml:"k"`
	ReverseComplement bool   `toml:"reverse_complement"`
	Workers           int    `toml:"workers"`
	Records           int    `toml:"records"`
	Discarded         int    `toml:"discarded"`
	ScannedLength     uint64 `toml:"scanned_length"`
	Windows           uint64 `toml:"windows"`
	SkippedWindows    uint64 `toml:"skipped_windows"`
	TotalKmers        uint64 `toml:"total_kmers"`
	DistinctKmers     int    `toml:"distinct_kmers"`
	Elapsed           string `toml:"elapsed"`
}

// NewSummary fills the counting fields of a Summary from res.
func NewSummary(input, format string, k int, rc bool, records int, res *kmer.Result, elapsed time.Duration) Summary {
	return Summary{
		Input:             input,
		Format:            format,
		K:                 k,
		ReverseComplement: rc,
		Workers:           res.Workers,
		Records:           records,
		Discarded:         len(res.Discarded),
		ScannedLength:     res.ScannedLength,
		Windows:           res.Windows,
		SkippedWindows:    res.Skipped,
		TotalKmers:        res.Table.Total(),
		DistinctKmers:     res.Table.Len(),
		Elapsed:           elapsed.Round(time.Millisecond).String(),
	}
}

// WriteSummary encodes s as TOML at path.
func WriteSummary(path string, s Summary) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode summary")
	}
	return errors.Wrap(os.WriteFile(path, b, 0o644), "write summary")
}
