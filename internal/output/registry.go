package output

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"jank/internal/kmer"
)

// Payload is everything a writer needs to render a finished run.
type Payload struct {
	Input  string
	K      int
	Header bool // text only
	Sort   bool // text only; JSON is always key-ordered
	Table  *kmer.Table
}

// Writers maps an output format name to its handler.
var Writers = map[string]func(io.Writer, Payload) error{
	"text": WriteText,
	"json": WriteJSON,
}

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for name := range Writers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := Writers[format]
	if !ok {
		return errors.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}
