// internal/kmer/rc.go
package kmer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidBase marks a byte outside {A,C,G,T} seen while reverse complementing.
var ErrInvalidBase = errors.New("invalid base")

// InvalidBaseError reports the offending byte and its offset within the k-mer.
type InvalidBaseError struct {
	Base byte
	Pos  int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base in k-mer: %q at offset %d", e.Base, e.Pos)
}

func (e *InvalidBaseError) Is(target error) bool { return target == ErrInvalidBase }

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// ReverseComplement writes the reverse complement of an upper-case ACGT kmer into
// dst, growing it if needed, and returns the filled slice. Pass nil for a fresh one.
func ReverseComplement(dst, kmer []byte) ([]byte, error) {
	n := len(kmer)
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		b := kmer[n-1-i]
		c := complement[b]
		if c == 0 {
			return nil, &InvalidBaseError{Base: b, Pos: n - 1 - i}
		}
		dst[i] = c
	}
	return dst, nil
}
