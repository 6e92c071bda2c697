package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juho05/log"
	"github.com/spf13/viper"

	"github.com/simonhull/commontags"
	"github.com/simonhull/commontags/internal/types"
)

// Config is the CLI configuration, read from the config file, COMMONTAGS_*
// environment variables and flags, in increasing precedence.
type Config struct {
	LogLevel       string          `mapstructure:"log_level"`
	Output         string          `mapstructure:"output"`
	TagLib         bool            `mapstructure:"taglib"`
	SkipPictures   bool            `mapstructure:"skip_pictures"`
	MaxPictureSize int             `mapstructure:"max_picture_size"`
	Workers        int             `mapstructure:"workers"`
	Listen         string          `mapstructure:"listen"`
	RateLimit      int             `mapstructure:"rate_limit"`
	MaxUploadSize  int64           `mapstructure:"max_upload_size"`
	Mappings       []MappingConfig `mapstructure:"mappings"`
}

// MappingConfig adds a native key to a vocabulary's tag map, or removes
// one when Key is empty.
type MappingConfig struct {
	Vocabulary string `mapstructure:"vocabulary"`
	Native     string `mapstructure:"native"`
	Key        string `mapstructure:"key"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warning")
	v.SetDefault("output", "json")
	v.SetDefault("taglib", true)
	v.SetDefault("workers", 4)
	v.SetDefault("listen", "localhost:8080")
	v.SetDefault("rate_limit", 120)
	v.SetDefault("max_upload_size", 256<<20)
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Output != "json" && cfg.Output != "yaml" {
		return nil, fmt.Errorf("invalid output %q: must be json or yaml", cfg.Output)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid workers %d: must be at least 1", cfg.Workers)
	}
	return &cfg, nil
}

var severities = map[string]log.Severity{
	"none":    log.NONE,
	"fatal":   log.FATAL,
	"error":   log.ERROR,
	"warning": log.WARNING,
	"warn":    log.WARNING,
	"info":    log.INFO,
	"trace":   log.TRACE,
}

// parseSeverity accepts a level name or its number, 0 (none) to 5 (trace).
func parseSeverity(s string) (log.Severity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if sev, ok := severities[s]; ok {
		return sev, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= int(log.NONE) && n <= int(log.TRACE) {
		return log.Severity(n), nil
	}
	return log.INFO, fmt.Errorf("invalid log level %q: valid values: none, fatal, error, warning, info, trace", s)
}

// mapper builds the tag mapper for the configured mappings, or returns nil
// for the default one.
func (c *Config) mapper() (*commontags.Mapper, error) {
	if len(c.Mappings) == 0 {
		return nil, nil
	}
	opts := make([]commontags.MapperOption, 0, len(c.Mappings))
	for _, m := range c.Mappings {
		vocab, err := types.ParseVocabulary(m.Vocabulary)
		if err != nil {
			return nil, err
		}
		if m.Key == "" {
			opts = append(opts, commontags.UnmapKey(vocab, m.Native))
		} else {
			opts = append(opts, commontags.MapKey(vocab, m.Native, m.Key))
		}
	}
	return commontags.NewMapper(opts...)
}

// parseOptions translates the configuration into library options.
func (c *Config) parseOptions() ([]commontags.Option, error) {
	m, err := c.mapper()
	if err != nil {
		return nil, fmt.Errorf("mappings: %w", err)
	}
	opts := []commontags.Option{commontags.WithTagLib(c.TagLib)}
	if m != nil {
		opts = append(opts, commontags.WithMapper(m))
	}
	if c.SkipPictures {
		opts = append(opts, commontags.WithSkipPictures())
	}
	if c.MaxPictureSize > 0 {
		opts = append(opts, commontags.WithMaxPictureSize(c.MaxPictureSize))
	}
	return opts, nil
}
