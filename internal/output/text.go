// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"
)

// WriteText prints the optional header line, then one "<kmer> <count>" line per entry.
func WriteText(w io.Writer, p Payload) error {
	bw := bufio.NewWriterSize(w, 1<<16)
	if p.Header {
		if _, err := bw.WriteString("# " + CommandLine(p.Input, p.K) + "\n"); err != nil {
			return err
		}
	}

	var (
		line []byte
		err  error
	)
	emit := func(kmer string, count uint64) bool {
		line = append(line[:0], kmer...)
		line = append(line, ' ')
		line = strconv.AppendUint(line, count, 10)
		line = append(line, '\n')
		_, err = bw.Write(line)
		return err == nil
	}
	if p.Sort {
		for _, kmer := range p.Table.SortedKeys() {
			if !emit(kmer, p.Table.Get(kmer)) {
				break
			}
		}
	} else {
		p.Table.Range(emit)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}
