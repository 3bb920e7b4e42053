package seqio

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
)

const plainFasta = `>seq1 first
ACGT
ACGT
>empty
>seq2
NNnn
`

const plainFastq = `@r1
ACGTAC
+
@@@+II
@r2 desc
GGCC
+r2
+IIII
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return fn
}

func writeZst(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw, err := zstd.NewWriter(fh)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("write zst: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zstd: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return fn
}

func seqs(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = string(r.Seq)
	}
	return out
}

func TestReadFasta(t *testing.T) {
	fn := writeFile(t, "x.fa", plainFasta)
	recs, err := ReadFile(context.Background(), fn, Options{})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := strings.Join(seqs(recs), ",")
	if got != "ACGTACGT,NNnn" {
		t.Fatalf("seqs = %q", got)
	}
	if recs[0].ID != "seq1" || recs[1].ID != "seq2" {
		t.Fatalf("ids = %q %q", recs[0].ID, recs[1].ID)
	}
}

func TestReadFastqSkipsQuality(t *testing.T) {
	fn := writeFile(t, "reads.fastq", plainFastq)
	recs, err := ReadFile(context.Background(), fn, Options{})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := strings.Join(seqs(recs), ",")
	if got != "ACGTAC,GGCC" {
		t.Fatalf("seqs = %q", got)
	}
}

func TestReadFastaKeepsPlusLines(t *testing.T) {
	recs, err := Read(context.Background(), strings.NewReader(">a\nAC\n+GT\n"), FASTA)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || string(recs[0].Seq) != "AC+GT" {
		t.Fatalf("got %q", seqs(recs))
	}
}

func TestReadIgnoresLinesBeforeFirstHeader(t *testing.T) {
	recs, err := Read(context.Background(), strings.NewReader("junk\nTTTT\n>a\r\nAC\r\nGT\r\n"), FASTA)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || string(recs[0].Seq) != "ACGT" {
		t.Fatalf("got %q", seqs(recs))
	}
}

func TestCompressedInputsMatchPlain(t *testing.T) {
	want := strings.Join(seqs(mustRead(t, writeFile(t, "p.fasta", plainFasta))), ",")
	for _, fn := range []string{
		writeGz(t, "p.fasta.gz", plainFasta),
		writeGz(t, "P.FA.GZ", plainFasta),
		writeZst(t, "p.fa.zst", plainFasta),
	} {
		if got := strings.Join(seqs(mustRead(t, fn)), ","); got != want {
			t.Errorf("%s: got %q, want %q", filepath.Base(fn), got, want)
		}
	}
}

func mustRead(t *testing.T, fn string) []Record {
	t.Helper()
	recs, err := ReadFile(context.Background(), fn, Options{})
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", fn, err)
	}
	return recs
}

func TestReadFileUnknownFormat(t *testing.T) {
	fn := writeFile(t, "reads.txt", plainFasta)
	_, err := ReadFile(context.Background(), fn, Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("want ErrUnknownFormat, got %v", err)
	}
	recs, err := ReadFile(context.Background(), fn, Options{Format: FASTA})
	if err != nil || len(recs) != 2 {
		t.Fatalf("override: recs=%d err=%v", len(recs), err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestReadFileCanceled(t *testing.T) {
	fn := writeFile(t, "x.fa", plainFasta)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadFile(ctx, fn, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"a.fa", FASTA},
		{"a.FASTA.gz", FASTA},
		{"a.fna", Unknown},
		{"reads.fastq.gz", FASTQ},
		{"reads.FQ", FASTQ},
		{"dir.fa/reads.txt", FASTA},
		{"reads.txt", Unknown},
	}
	for _, c := range cases {
		if got := DetectFormat(c.path); got != c.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestDetectCompression(t *testing.T) {
	if DetectCompression("x.fa.GZ") != Gzip || DetectCompression("x.fq.zst") != Zstd || DetectCompression("x.fa") != Raw {
		t.Fatal("unexpected compression detection")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("FASTQ"); err != nil || f != FASTQ {
		t.Fatalf("ParseFormat(FASTQ) = %v, %v", f, err)
	}
	if f, err := ParseFormat("auto"); err != nil || f != Unknown {
		t.Fatalf("ParseFormat(auto) = %v, %v", f, err)
	}
	if _, err := ParseFormat("genbank"); err == nil {
		t.Fatal("expected error for genbank")
	}
}

func TestReadLineLongerThanScannerLimit(t *testing.T) {
	long := bytes.Repeat([]byte("ACGT"), (65<<20)/4)
	in := ">chr1 unwrapped\n" + string(long) + "\n>chr2\nGG"
	recs, err := Read(context.Background(), strings.NewReader(in), FASTA)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "chr1" || recs[1].ID != "chr2" {
		t.Fatalf("got %d records", len(recs))
	}
	if !bytes.Equal(recs[0].Seq, long) || string(recs[1].Seq) != "GG" {
		t.Fatalf("chr1 len=%d, chr2=%q", len(recs[0].Seq), recs[1].Seq)
	}
}

func TestScanLinesSpanningReadBuffer(t *testing.T) {
	// 16 bytes is the smallest bufio.Reader; every line below spans several fills,
	// and markers appear only past the first fragment.
	qual := strings.Repeat("I@+>", 10)
	in := "@read/1 " + strings.Repeat("x", 40) + "\r\n" +
		strings.Repeat("ACGT", 12) + "\r\n" +
		"+" + strings.Repeat("y", 30) + "\n" +
		qual + "\n" +
		"@read/2\n" + strings.Repeat("T", 33)
	var got []Record
	err := scan(context.Background(), bufio.NewReaderSize(strings.NewReader(in), 16), FASTQ, func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records: %v", len(got), seqs(got))
	}
	if got[0].ID != "read/1" || string(got[0].Seq) != strings.Repeat("ACGT", 12) {
		t.Fatalf("record 1 = %s %q", got[0].ID, got[0].Seq)
	}
	if got[1].ID != "read/2" || string(got[1].Seq) != strings.Repeat("T", 33) {
		t.Fatalf("record 2 = %s %q", got[1].ID, got[1].Seq)
	}
}
