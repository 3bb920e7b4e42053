// internal/seqio/open.go
package seqio

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

// Compression is the container encoding of an input stream.
type Compression int

const (
	Raw Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "raw"
	}
}

// DetectCompression infers the compression from the filename suffix (case-insensitive).
func DetectCompression(path string) Compression {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return Gzip
	case strings.HasSuffix(lower, ".zst"):
		return Zstd
	default:
		return Raw
	}
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open returns a decoded stream for path. "-" reads stdin (never decompressed).
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	rc, err := decode(fh, DetectCompression(path))
	if err != nil {
		_ = fh.Close()
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return rc, nil
}

func decode(fh *os.File, c Compression) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		gr, err := gzip.NewReader(fh)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	case Zstd:
		zr, err := zstd.NewReader(fh)
		if err != nil {
			return nil, err
		}
		release := closerFunc(func() error { zr.Close(); return nil })
		return &multiReadCloser{Reader: zr, closers: []io.Closer{release, fh}}, nil
	default:
		return fh, nil
	}
}
