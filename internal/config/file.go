package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/dialsim/internal/errors"
)

// FileConfig mirrors AppConfig in a YAML document. Absent keys leave the
// corresponding setting untouched.
type FileConfig struct {
	Input       *string `yaml:"input"`
	Count       *string `yaml:"count"`
	Output      *string `yaml:"output"`
	MetricsFile *string `yaml:"metrics_file"`
	LogFormat   *string `yaml:"log_format"`
	Quiet       *bool   `yaml:"quiet"`
	Verbose     *bool   `yaml:"verbose"`
	Trace       *bool   `yaml:"trace"`
	NoColor     *bool   `yaml:"no_color"`
}

// LoadFile reads and decodes a YAML configuration file. Unknown keys are
// rejected so that typos do not go unnoticed.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, apperrors.NewConfigError("reading config file %s: %v", path, err)
	}
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, apperrors.NewConfigError("parsing config file %s: %v", path, err)
	}
	return fc, nil
}

// apply copies every present key into cfg unless the matching flag was set
// on the command line.
func (fc FileConfig) apply(cfg *AppConfig, fs *flag.FlagSet) {
	setString(fs, fc.Input, &cfg.Input, "input", "i")
	setString(fs, fc.Count, &cfg.Count, "count")
	setString(fs, fc.Output, &cfg.OutputFile, "output", "o")
	setString(fs, fc.MetricsFile, &cfg.MetricsFile, "metrics-file")
	setString(fs, fc.LogFormat, &cfg.LogFormat, "log-format")
	setBool(fs, fc.Quiet, &cfg.Quiet, "quiet", "q")
	setBool(fs, fc.Verbose, &cfg.Verbose, "verbose", "v")
	setBool(fs, fc.Trace, &cfg.Trace, "trace")
	setBool(fs, fc.NoColor, &cfg.NoColor, "no-color")
}

func setString(fs *flag.FlagSet, src *string, dst *string, flags ...string) {
	if src != nil && !isFlagSetAny(fs, flags...) {
		*dst = *src
	}
}

func setBool(fs *flag.FlagSet, src *bool, dst *bool, flags ...string) {
	if src != nil && !isFlagSetAny(fs, flags...) {
		*dst = *src
	}
}
