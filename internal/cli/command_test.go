// internal/cli/command_test.go
package cli

import (
	"io"
	"testing"

	"github.com/spf13/cobra"

	"jank/internal/config"
)

func mustParse(t *testing.T, args ...string) config.Config {
	t.Helper()
	var got config.Config
	cmd := NewCommand(config.New(), func(_ *cobra.Command, cfg config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return got
}

func parseErr(args ...string) error {
	cmd := NewCommand(config.New(), func(*cobra.Command, config.Config) error { return nil })
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestDefaults(t *testing.T) {
	c := mustParse(t, "reads.fq")
	if c.Input != "reads.fq" || c.KmerSize != 9 || c.CPUCount != 0 || c.CountReverseComplement {
		t.Errorf("unexpected defaults %+v", c)
	}
	if c.Output != "text" || c.Format != "auto" || c.NoHeader || c.Sort {
		t.Errorf("unexpected output defaults %+v", c)
	}
}

func TestShortFlags(t *testing.T) {
	c := mustParse(t, "-k", "21", "-c", "4", "-r", "genome.fa.gz")
	if c.KmerSize != 21 || c.CPUCount != 4 || !c.CountReverseComplement || c.Input != "genome.fa.gz" {
		t.Errorf("bad short-flag parse %+v", c)
	}
}

func TestLongFlags(t *testing.T) {
	c := mustParse(t, "x.fa",
		"--kmer-size=5", "--cpu-count", "2", "--count-reverse-complement",
		"--skip-invalid", "--sort", "--no-header", "--output", "json", "--format", "fasta",
	)
	if c.KmerSize != 5 || c.CPUCount != 2 || !c.CountReverseComplement || !c.SkipInvalid {
		t.Errorf("bad counting flags %+v", c)
	}
	if !c.Sort || !c.NoHeader || c.Output != "json" || c.Format != "fasta" {
		t.Errorf("bad output flags %+v", c)
	}
}

func TestFlagBeatsEnv(t *testing.T) {
	t.Setenv("JANK_KMER_SIZE", "7")
	if c := mustParse(t, "x.fa"); c.KmerSize != 7 {
		t.Errorf("env not applied: k=%d", c.KmerSize)
	}
	if c := mustParse(t, "x.fa", "-k", "3"); c.KmerSize != 3 {
		t.Errorf("flag should win over env: k=%d", c.KmerSize)
	}
}

func TestErrorNonNumericK(t *testing.T) {
	if err := parseErr("x.fa", "-k", "nine"); err == nil {
		t.Fatal("expected error for non-numeric k")
	}
}

func TestErrorInvalidK(t *testing.T) {
	if err := parseErr("x.fa", "-k", "0"); err == nil {
		t.Fatal("expected error for k=0")
	}
}

func TestErrorNoInput(t *testing.T) {
	if err := parseErr("-k", "4"); err == nil {
		t.Fatal("expected error when input missing")
	}
}

func TestErrorExtraInput(t *testing.T) {
	if err := parseErr("a.fa", "b.fa"); err == nil {
		t.Fatal("expected error with two inputs")
	}
}
