// internal/seqio/reader.go
package seqio

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Record is one parsed sequence entry. Seq is never empty.
type Record struct {
	ID  string
	Seq []byte
}

// Options controls ReadFile.
type Options struct {
	Format Format             // Unknown = infer from the filename
	Logger logrus.FieldLogger // nil = silent
}

const readBufSize = 64 * 1024

type state int

const (
	outside state = iota
	inSequence
	skipNextLine
)

// ReadFile opens path, decodes it, and returns every record in file order.
func ReadFile(ctx context.Context, path string, opt Options) ([]Record, error) {
	format, err := ResolveFormat(path, opt.Format)
	if err != nil {
		return nil, err
	}
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	log := opt.Logger
	if log == nil {
		log = discardLogger()
	}
	log.WithField("format", format).Info("Reading sequences...")
	recs, err := Read(ctx, rc, format)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.Infof("Finished reading sequences. Sequences count: %d", len(recs))
	return recs, nil
}

// Read parses records of the given format from r.
func Read(ctx context.Context, r io.Reader, format Format) ([]Record, error) {
	var recs []Record
	err := Scan(ctx, r, format, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	return recs, err
}

// Scan parses r and calls emit for each completed record.
// Return a non-nil error from emit to stop early. Lines may be of any length.
func Scan(ctx context.Context, r io.Reader, format Format, emit func(Record) error) error {
	return scan(ctx, bufio.NewReaderSize(r, readBufSize), format, emit)
}

func scan(ctx context.Context, br *bufio.Reader, format Format, emit func(Record) error) error {
	var header byte
	switch format {
	case FASTA:
		header = '>'
	case FASTQ:
		header = '@'
	default:
		return ErrUnknownFormat
	}

	var (
		st  = outside
		id  string
		hdr []byte
		seq = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if len(seq) == 0 {
			return nil
		}
		rec := Record{ID: id, Seq: bytes.Clone(seq)}
		seq = seq[:0]
		return emit(rec)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		// The first byte of the line picks the transition; the rest is streamed.
		lead, err := br.Peek(1)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read")
		}

		switch c := lead[0]; {
		case st == skipNextLine:
			st = outside
			err = skipLine(br)
		case c == header:
			if err = flush(); err != nil {
				return err
			}
			if hdr, err = appendLine(br, hdr[:0]); err == nil {
				id = parseHeaderID(hdr[1:])
				st = inSequence
			}
		case st == inSequence && format == FASTQ && c == '+':
			st = skipNextLine
			err = skipLine(br)
		case st == inSequence:
			seq, err = appendLine(br, seq)
		default:
			err = skipLine(br)
		}
		if err != nil {
			return errors.Wrap(err, "read")
		}
	}
	return flush()
}

// appendLine appends the rest of the current line to dst without its "\n" or
// "\r\n" terminator. A final line without a newline is not an error.
func appendLine(br *bufio.Reader, dst []byte) ([]byte, error) {
	start := len(dst)
	for {
		frag, err := br.ReadSlice('\n')
		dst = append(dst, frag...)
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil && err != io.EOF {
			return dst, err
		}
		if n := len(dst); n > start && dst[n-1] == '\n' {
			dst = dst[:n-1]
		}
		if n := len(dst); n > start && dst[n-1] == '\r' {
			dst = dst[:n-1]
		}
		return dst, nil
	}
}

// skipLine consumes the rest of the current line.
func skipLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF {
			return nil
		}
		return err
	}
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
