// internal/cli/command.go
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jank/internal/config"
	"jank/internal/version"
)

// RunFunc receives the validated settings for one invocation.
type RunFunc func(cmd *cobra.Command, cfg config.Config) error

// NewCommand builds the root command. Flags are bound into v, so environment
// variables and the --config file fill anything not given on the command line.
func NewCommand(v *viper.Viper, run RunFunc) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "kmer-counter [flags] <input_file>",
		Short: "Just ANother K-mer counter",
		Long: `Count every k-length substring of the sequences in a FASTA or FASTQ file.

The record syntax is taken from the filename (.fa/.fasta or .fq/.fastq, any case);
a .gz or .zst suffix selects gzip or zstd decompression. Use --format to override
detection, which is required when reading stdin ("-").

Output is one "# Command:" header line followed by "<kmer> <count>" lines.`,
		Example: `  kmer-counter reads.fastq.gz -k 21 -c 8
  kmer-counter genome.fa -k 9 -r --sort > counts.txt
  zcat reads.fq.gz | kmer-counter --format fastq -`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			v.Set("input", args[0])
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	d := config.Defaults()
	f := cmd.Flags()
	f.SortFlags = false

	// Counting
	f.IntP("kmer-size", "k", d.KmerSize, "size of k-mers to count")
	f.IntP("cpu-count", "c", d.CPUCount, "number of CPU cores to use (0 = all)")
	f.BoolP("count-reverse-complement", "r", false, "count reverse complement k-mers as well")
	f.Bool("skip-invalid", false, "skip windows with non-ACGT bases instead of failing (with -r)")

	// Input / output
	f.String("format", d.Format, "input syntax: auto | fasta | fastq")
	f.StringP("output", "o", d.Output, "output format: text | json")
	f.Bool("sort", false, "sort k-mers lexicographically")
	f.Bool("no-header", false, "suppress the '# Command:' header line (text)")

	// Diagnostics
	f.Bool("progress", false, "show a progress bar on stderr while counting")
	f.String("summary", "", "write a TOML run summary to this file")
	f.BoolP("quiet", "q", false, "only log warnings and errors")
	f.BoolP("verbose", "v", false, "log debug details")
	f.StringVar(&configFile, "config", "", "settings file (yaml, toml or json)")

	return cmd
}
