// internal/kmer/counter.go
package kmer

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"jank/internal/seqio"
)

// InvalidPolicy decides what happens when a window cannot be reverse complemented.
type InvalidPolicy int

const (
	Abort InvalidPolicy = iota // fail the whole run
	Skip                       // drop that window and keep going
)

var (
	ErrInvalidK       = errors.New("k-mer size must be at least 1")
	ErrInvalidWorkers = errors.New("worker count must be >= 0")
)

// Options controls Count.
type Options struct {
	K                 int
	Workers           int // 0 = runtime.NumCPU()
	ReverseComplement bool
	OnInvalid         InvalidPolicy

	// Progress, if set, is called once per finished record from worker goroutines.
	Progress func()
}

// Discard describes a record shorter than k.
type Discard struct {
	Index  int // 0-based position in the input
	ID     string
	Length int
}

// Result is the merged outcome of a counting run.
type Result struct {
	Table         *Table
	ScannedLength uint64 // sum of lengths of records with length >= k
	Windows       uint64 // windows counted (reverse complements not included)
	Skipped       uint64 // windows dropped under the Skip policy
	Discarded     []Discard
	Workers       int
}

// EffectiveWorkers resolves the pool size: 0 means all CPUs, and there are never
// more workers than records (minimum 1).
func EffectiveWorkers(requested, records int) int {
	n := requested
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > records {
		n = records
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Count slides a k-wide window over every record and tallies each window.
// Records are spread over a fixed worker pool; each worker fills a private Table
// and the tables are merged once all workers are done.
func Count(ctx context.Context, records []seqio.Record, opt Options) (*Result, error) {
	if opt.K < 1 {
		return nil, errors.Wrapf(ErrInvalidK, "got %d", opt.K)
	}
	if opt.Workers < 0 {
		return nil, errors.Wrapf(ErrInvalidWorkers, "got %d", opt.Workers)
	}
	workers := EffectiveWorkers(opt.Workers, len(records))

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int, workers*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		for i := range records {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	// Workers
	parts := make([]*partial, workers)
	for w := range parts {
		p := &partial{table: NewTable()}
		parts[w] = p
		g.Go(func() error {
			var rc []byte
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				var err error
				if rc, err = p.countRecord(i, records[i], opt, rc); err != nil {
					return err
				}
				if opt.Progress != nil {
					opt.Progress()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A canceled parent can race a clean finish; partial counts never escape.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return merge(parts, workers), nil
}

func merge(parts []*partial, workers int) *Result {
	res := &Result{Table: parts[0].table, Workers: workers}
	for i, p := range parts {
		if i > 0 {
			res.Table.Merge(p.table)
		}
		res.ScannedLength += p.scanned
		res.Windows += p.windows
		res.Skipped += p.skipped
		res.Discarded = append(res.Discarded, p.discarded...)
	}
	slices.SortFunc(res.Discarded, func(a, b Discard) int { return cmp.Compare(a.Index, b.Index) })
	return res
}

// partial is one worker's private accumulator.
type partial struct {
	table     *Table
	scanned   uint64
	windows   uint64
	skipped   uint64
	discarded []Discard
}

// countRecord tallies every window of rec. rc is a scratch buffer for reverse
// complements and is returned for reuse.
func (p *partial) countRecord(idx int, rec seqio.Record, opt Options, rc []byte) ([]byte, error) {
	seq, k := rec.Seq, opt.K
	if len(seq) < k {
		p.discarded = append(p.discarded, Discard{Index: idx, ID: rec.ID, Length: len(seq)})
		return rc, nil
	}
	for i := 0; i+k <= len(seq); i++ {
		win := seq[i : i+k]
		if !opt.ReverseComplement {
			p.table.Add(win)
			p.windows++
			continue
		}
		out, err := ReverseComplement(rc, win)
		if err != nil {
			if opt.OnInvalid == Skip {
				p.skipped++
				continue
			}
			return rc, errors.Wrapf(err, "record %d (%s) offset %d", idx+1, rec.ID, i)
		}
		rc = out
		p.table.Add(win)
		p.table.Add(rc)
		p.windows++
	}
	p.scanned += uint64(len(seq))
	return rc, nil
}
