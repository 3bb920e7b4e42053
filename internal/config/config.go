// Package config is for run-wide settings that are unmarshalled from Viper
// (bound cobra flags, JANK_* environment variables, and an optional config file).
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"jank/internal/seqio"
)

// EnvPrefix prefixes environment overrides, e.g. JANK_KMER_SIZE=21.
const EnvPrefix = "JANK"

// ErrInvalid marks a configuration value that fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root-level settings struct.
type Config struct {
	// path to the FASTA/FASTQ input ("-" = stdin)
	Input string `mapstructure:"input"`

	// counting
	KmerSize               int  `mapstructure:"kmer-size"`
	CPUCount               int  `mapstructure:"cpu-count"`
	CountReverseComplement bool `mapstructure:"count-reverse-complement"`
	SkipInvalid            bool `mapstructure:"skip-invalid"`

	// input syntax override: auto | fasta | fastq
	Format string `mapstructure:"format"`

	// output
	Output   string `mapstructure:"output"`
	Sort     bool   `mapstructure:"sort"`
	NoHeader bool   `mapstructure:"no-header"`

	// diagnostics
	Progress bool   `mapstructure:"progress"`
	Summary  string `mapstructure:"summary"`
	Quiet    bool   `mapstructure:"quiet"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		KmerSize: 9,
		CPUCount: 0,
		Format:   "auto",
		Output:   "text",
	}
}

// New returns a Viper instance preloaded with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("input", "")
	v.SetDefault("kmer-size", d.KmerSize)
	v.SetDefault("cpu-count", d.CPUCount)
	v.SetDefault("count-reverse-complement", false)
	v.SetDefault("skip-invalid", false)
	v.SetDefault("format", d.Format)
	v.SetDefault("output", d.Output)
	v.SetDefault("sort", false)
	v.SetDefault("no-header", false)
	v.SetDefault("progress", false)
	v.SetDefault("summary", "")
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes v into a validated Config.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", file)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unable to decode settings")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate applies the invariants every run relies on.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.Wrap(ErrInvalid, "input file is required")
	}
	if c.KmerSize < 1 {
		return errors.Wrapf(ErrInvalid, "--kmer-size must be ≥ 1 (got %d)", c.KmerSize)
	}
	if c.CPUCount < 0 {
		return errors.Wrapf(ErrInvalid, "--cpu-count must be ≥ 0 (got %d)", c.CPUCount)
	}
	if _, err := seqio.ParseFormat(c.Format); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	switch c.Output {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalid, "invalid --output %q", c.Output)
	}
	if c.Quiet && c.Verbose {
		return errors.Wrap(ErrInvalid, "--quiet conflicts with --verbose")
	}
	if c.Input == "-" && c.InputFormat() == seqio.Unknown {
		return errors.Wrap(ErrInvalid, "reading stdin requires --format fasta or --format fastq")
	}
	return nil
}

// InputFormat is the parsed --format override (seqio.Unknown for auto).
func (c Config) InputFormat() seqio.Format {
	f, _ := seqio.ParseFormat(c.Format)
	return f
}
