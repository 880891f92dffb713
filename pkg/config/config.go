/*
Package config manages the TOML config of the wordgram CLI.

	[analysis]
	ngram_size = 2
	top_limit = 20
	top_letter_limit = 10
	sibling_size = 1
	strict_symbols = false

	[tree]
	max_word_length = 64

	[output]
	format = "table"

Missing keys keep their defaults. A file that fails strict decoding is parsed
again section by section so that the valid keys still apply.
*/
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordgram/internal/utils"
	"github.com/bastiangx/wordgram/pkg/analyzer"
	"github.com/bastiangx/wordgram/pkg/ngramtree"
	"github.com/bastiangx/wordgram/pkg/report"
)

// Config holds the entire config structure
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Tree     TreeConfig     `toml:"tree"`
	Output   OutputConfig   `toml:"output"`
}

// AnalysisConfig has the n-gram ranking options.
type AnalysisConfig struct {
	NGramSize      int  `toml:"ngram_size"`
	TopLimit       int  `toml:"top_limit"`
	TopLetterLimit int  `toml:"top_letter_limit"`
	SiblingSize    int  `toml:"sibling_size"`
	StrictSymbols  bool `toml:"strict_symbols"`
}

// TreeConfig holds n-gram tree options.
type TreeConfig struct {
	MaxWordLength int `toml:"max_word_length"`
}

// OutputConfig holds output options.
type OutputConfig struct {
	Format string `toml:"format"`
}

// configDirs lists the config directories in priority order:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func configDirs() []string {
	var dirs []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(homeDir, ".config", "wordgram"),
			filepath.Join(homeDir, "Library", "Application Support", "wordgram"),
		)
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	if execDir, err := utils.GetExecutableDir(); err == nil {
		dirs = append(dirs, execDir)
	} else {
		log.Errorf("Failed to get executable directory: %v", err)
	}
	return dirs
}

// GetConfigDir returns the first writable config directory, creating it when
// missing. Use it when a config file is about to be written.
func GetConfigDir() (string, error) {
	dirs := configDirs()
	if len(dirs) == 0 {
		return "", errors.New("no config directory available")
	}
	for _, dir := range dirs[:len(dirs)-1] {
		if result := utils.CheckDirStatus(dir); result.Writable {
			return dir, nil
		}
	}
	return dirs[len(dirs)-1], nil
}

// FindConfigPath returns the first existing config.toml in the config
// directories. Nothing is created on disk.
func FindConfigPath() (string, bool) {
	for _, dir := range configDirs() {
		path := filepath.Join(dir, "config.toml")
		if utils.FileExists(path) {
			return path, true
		}
	}
	return "", false
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordgram/config.toml
// 3. Builtin defaults
//
// The returned path is empty when the builtin defaults are used.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, ok := FindConfigPath()
	if !ok {
		log.Debugf("No config file found, using built-in defaults")
		return DefaultConfig(), "", nil
	}

	config, err := LoadConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			NGramSize:      2,
			TopLimit:       analyzer.DefaultTopLimit,
			TopLetterLimit: analyzer.DefaultTopLetterLimit,
			SiblingSize:    1,
			StrictSymbols:  false,
		},
		Tree: TreeConfig{
			MaxWordLength: ngramtree.DefaultMaxWordLength,
		},
		Output: OutputConfig{
			Format: string(report.FormatTable),
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return nil, err
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse keeps whatever keys still have the expected type
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "analysis"); ok {
		extractAnalysisConfig(section, &config.Analysis)
	}
	if section, ok := utils.ExtractSection(tempConfig, "tree"); ok {
		extractTreeConfig(section, &config.Tree)
	}
	if section, ok := utils.ExtractSection(tempConfig, "output"); ok {
		extractOutputConfig(section, &config.Output)
	}
	config.normalize()
	return config, nil
}

func extractAnalysisConfig(data map[string]any, analysis *AnalysisConfig) {
	if val, ok := utils.ExtractInt(data, "ngram_size"); ok {
		analysis.NGramSize = val
	}
	if val, ok := utils.ExtractInt(data, "top_limit"); ok {
		analysis.TopLimit = val
	}
	if val, ok := utils.ExtractInt(data, "top_letter_limit"); ok {
		analysis.TopLetterLimit = val
	}
	if val, ok := utils.ExtractInt(data, "sibling_size"); ok {
		analysis.SiblingSize = val
	}
	if val, ok := utils.ExtractBool(data, "strict_symbols"); ok {
		analysis.StrictSymbols = val
	}
}

func extractTreeConfig(data map[string]any, tree *TreeConfig) {
	if val, ok := utils.ExtractInt(data, "max_word_length"); ok {
		tree.MaxWordLength = val
	}
}

func extractOutputConfig(data map[string]any, output *OutputConfig) {
	if val, ok := utils.ExtractString(data, "format"); ok {
		output.Format = val
	}
}

// normalize puts out of range values back to their defaults
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.Analysis.NGramSize < 1 {
		log.Warnf("Invalid ngram_size %d, using %d", c.Analysis.NGramSize, defaults.Analysis.NGramSize)
		c.Analysis.NGramSize = defaults.Analysis.NGramSize
	}
	if c.Analysis.TopLimit < 1 {
		log.Warnf("Invalid top_limit %d, using %d", c.Analysis.TopLimit, defaults.Analysis.TopLimit)
		c.Analysis.TopLimit = defaults.Analysis.TopLimit
	}
	if c.Analysis.TopLetterLimit < 1 {
		log.Warnf("Invalid top_letter_limit %d, using %d", c.Analysis.TopLetterLimit, defaults.Analysis.TopLetterLimit)
		c.Analysis.TopLetterLimit = defaults.Analysis.TopLetterLimit
	}
	if c.Analysis.SiblingSize < 1 {
		log.Warnf("Invalid sibling_size %d, using %d", c.Analysis.SiblingSize, defaults.Analysis.SiblingSize)
		c.Analysis.SiblingSize = defaults.Analysis.SiblingSize
	}
	if c.Tree.MaxWordLength < 1 {
		log.Warnf("Invalid max_word_length %d, using %d", c.Tree.MaxWordLength, defaults.Tree.MaxWordLength)
		c.Tree.MaxWordLength = defaults.Tree.MaxWordLength
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		log.Warnf("Invalid output format %q, using %q", c.Output.Format, defaults.Output.Format)
		c.Output.Format = defaults.Output.Format
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "built-in defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Builder returns the tree builder described by the config.
func (c *Config) Builder() ngramtree.Builder {
	return ngramtree.Builder{MaxWordLength: c.Tree.MaxWordLength}
}

// AnalyzerOptions returns the analyzer options described by the config.
func (c *Config) AnalyzerOptions() []analyzer.Option {
	return []analyzer.Option{
		analyzer.WithStrictSymbols(c.Analysis.StrictSymbols),
		analyzer.WithBuilder(c.Builder()),
	}
}

// ReportOptions returns the report options described by the config.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		NGramSize:      c.Analysis.NGramSize,
		TopLimit:       c.Analysis.TopLimit,
		TopLetterLimit: c.Analysis.TopLetterLimit,
		SiblingSize:    c.Analysis.SiblingSize,
	}
}

// OutputFormat returns the configured output format.
func (c *Config) OutputFormat() report.Format {
	format, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.FormatTable
	}
	return format
}
