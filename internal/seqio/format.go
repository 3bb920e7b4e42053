package seqio

import (
	"strings"

	"github.com/pkg/errors"
)

// Format is the record syntax of an input.
type Format int

const (
	Unknown Format = iota
	FASTA
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned when no record syntax can be inferred from a filename.
var ErrUnknownFormat = errors.New("cannot infer FASTA/FASTQ format from filename")

// ParseFormat maps a --format value to a Format. "auto" and "" map to Unknown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Unknown, nil
	case "fasta", "fa":
		return FASTA, nil
	case "fastq", "fq":
		return FASTQ, nil
	}
	return Unknown, errors.Errorf("invalid format %q (want auto, fasta or fastq)", s)
}

// DetectFormat infers the record syntax from substrings of the lower-cased filename.
// ".fastq"/".fq" are checked first since ".fa" is a substring of ".fastq".
func DetectFormat(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.Contains(lower, ".fastq"), strings.Contains(lower, ".fq"):
		return FASTQ
	case strings.Contains(lower, ".fasta"), strings.Contains(lower, ".fa"):
		return FASTA
	default:
		return Unknown
	}
}

// ResolveFormat applies an explicit override, falling back to filename detection.
func ResolveFormat(path string, override Format) (Format, error) {
	if override != Unknown {
		return override, nil
	}
	if f := DetectFormat(path); f != Unknown {
		return f, nil
	}
	return Unknown, errors.Wrapf(ErrUnknownFormat, "%q (use --format)", path)
}
