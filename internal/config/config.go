package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/secretscan/internal/logger"
	"github.com/harrison/secretscan/internal/models"
	"gopkg.in/yaml.v3"
)

// FileName is the per-repository config file looked up from the scan root
const FileName = ".secretscan.yaml"

// Config represents secretscan configuration options
type Config struct {
	// MaxFileSize is the per-file size cap in bytes; larger files are skipped
	MaxFileSize int64 `yaml:"max_file_size"`

	// EntropyThreshold is the minimum Shannon entropy for a HighEntropy finding
	EntropyThreshold float64 `yaml:"entropy_threshold"`

	// Entropy enables the entropy detector
	Entropy bool `yaml:"entropy"`

	// MaxWorkers is the worker pool size (0 = auto)
	MaxWorkers int `yaml:"max_workers"`

	// MaxFindingsPerFile caps the findings reported for a single file
	MaxFindingsPerFile int `yaml:"max_findings_per_file"`

	// Exclude holds extra gitignore-style patterns
	Exclude []string `yaml:"exclude"`

	// IgnoreFiles lists extra ignore files, read in order after .gitignore.
	// Relative entries in a config file are resolved against its directory.
	IgnoreFiles []string `yaml:"ignore_files"`

	// NoDefaultExcludes drops the built-in excludes (.git/, node_modules/, ...)
	NoDefaultExcludes bool `yaml:"no_default_excludes"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with the engine defaults
func DefaultConfig() *Config {
	scan := models.DefaultScanConfig()
	return &Config{
		MaxFileSize:        scan.MaxFileSizeBytes,
		EntropyThreshold:   scan.EntropyThreshold,
		Entropy:            scan.EntropyEnabled,
		MaxWorkers:         scan.MaxWorkers,
		MaxFindingsPerFile: scan.MaxFindingsPerFile,
		LogLevel:           "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell "absent" apart from an explicit zero or false
	type yamlConfig struct {
		MaxFileSize        *int64   `yaml:"max_file_size"`
		EntropyThreshold   *float64 `yaml:"entropy_threshold"`
		Entropy            *bool    `yaml:"entropy"`
		MaxWorkers         *int     `yaml:"max_workers"`
		MaxFindingsPerFile *int     `yaml:"max_findings_per_file"`
		Exclude            []string `yaml:"exclude"`
		IgnoreFiles        []string `yaml:"ignore_files"`
		NoDefaultExcludes  *bool    `yaml:"no_default_excludes"`
		LogLevel           string   `yaml:"log_level"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if yamlCfg.MaxFileSize != nil {
		cfg.MaxFileSize = *yamlCfg.MaxFileSize
	}
	if yamlCfg.EntropyThreshold != nil {
		cfg.EntropyThreshold = *yamlCfg.EntropyThreshold
	}
	if yamlCfg.Entropy != nil {
		cfg.Entropy = *yamlCfg.Entropy
	}
	if yamlCfg.MaxWorkers != nil {
		cfg.MaxWorkers = *yamlCfg.MaxWorkers
	}
	if yamlCfg.MaxFindingsPerFile != nil {
		cfg.MaxFindingsPerFile = *yamlCfg.MaxFindingsPerFile
	}
	if yamlCfg.NoDefaultExcludes != nil {
		cfg.NoDefaultExcludes = *yamlCfg.NoDefaultExcludes
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	cfg.Exclude = yamlCfg.Exclude
	for _, f := range yamlCfg.IgnoreFiles {
		if !filepath.IsAbs(f) {
			f = filepath.Join(filepath.Dir(path), f)
		}
		cfg.IgnoreFiles = append(cfg.IgnoreFiles, f)
	}

	return cfg, nil
}

// FlagOverrides carries CLI flag values; nil means the flag was not set.
// Slices are appended to the config file's lists rather than replacing them.
type FlagOverrides struct {
	MaxFileSize        *int64
	EntropyThreshold   *float64
	NoEntropy          *bool
	MaxWorkers         *int
	MaxFindingsPerFile *int
	NoDefaultExcludes  *bool
	LogLevel           *string
	Exclude            []string
	IgnoreFiles        []string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f FlagOverrides) {
	if f.MaxFileSize != nil {
		c.MaxFileSize = *f.MaxFileSize
	}
	if f.EntropyThreshold != nil {
		c.EntropyThreshold = *f.EntropyThreshold
	}
	if f.NoEntropy != nil {
		c.Entropy = !*f.NoEntropy
	}
	if f.MaxWorkers != nil {
		c.MaxWorkers = *f.MaxWorkers
	}
	if f.MaxFindingsPerFile != nil {
		c.MaxFindingsPerFile = *f.MaxFindingsPerFile
	}
	if f.NoDefaultExcludes != nil {
		c.NoDefaultExcludes = *f.NoDefaultExcludes
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	c.Exclude = append(c.Exclude, f.Exclude...)
	c.IgnoreFiles = append(c.IgnoreFiles, f.IgnoreFiles...)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must be >= 0, got %d", c.MaxFileSize)
	}
	if c.EntropyThreshold < 0 {
		return fmt.Errorf("entropy_threshold must be >= 0, got %v", c.EntropyThreshold)
	}
	if c.MaxWorkers < 0 {
		return fmt.Errorf("max_workers must be >= 0, got %d", c.MaxWorkers)
	}
	if c.MaxFindingsPerFile < 0 {
		return fmt.Errorf("max_findings_per_file must be >= 0, got %d", c.MaxFindingsPerFile)
	}
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}
	return nil
}

// ScanConfig projects the configuration onto the engine's ScanConfig.
// Zero sizes and caps fall back to the engine defaults.
func (c *Config) ScanConfig() models.ScanConfig {
	return models.ScanConfig{
		MaxFileSizeBytes:   c.MaxFileSize,
		EntropyThreshold:   c.EntropyThreshold,
		EntropyEnabled:     c.Entropy,
		MaxWorkers:         c.MaxWorkers,
		MaxFindingsPerFile: c.MaxFindingsPerFile,
	}.Normalized()
}
