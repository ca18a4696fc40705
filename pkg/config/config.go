/*
Package config manages the TOML config that tells segdict where its word
lists live and how loading is logged.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/segdict/internal/logger"
	"github.com/bastiangx/segdict/internal/utils"
	"github.com/bastiangx/segdict/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Dict DictConfig `toml:"dict"`
	Log  LogConfig  `toml:"log"`

	// dir is the directory of the file the config was read from.
	dir string
}

// DictConfig holds dictionary locations.
type DictConfig struct {
	BaseDir      string `toml:"base_dir"`
	ExtDir       string `toml:"ext_dir"`
	ExtDict      string `toml:"ext_dict"`
	ExtStopWords string `toml:"ext_stop_words"`
	Snapshot     string `toml:"snapshot"`
}

// LogConfig holds load-phase logging options.
type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	Format    string `toml:"format"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. [UserConfigDir]/segdict
// 2. ~/.config/segdict
// 3. Current executable dir
func GetConfigDir() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "segdict"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(homeDir, ".config", "segdict"), nil
	}
	log.Errorf("Failed to get home directory: %v", err)
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for segdict.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "segdict.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path given by the caller
// 2. Default path: [UserConfigDir]/segdict/segdict.toml
// 3. Builtin defaults
//
// A missing or broken config is never an error; the dictionaries then load
// from the bundled lists with no extensions.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	if !utils.FileExists(defaultPath) {
		log.Debugf("No config at %s, using built-in defaults", defaultPath)
		return DefaultConfig(), "", nil
	}

	config, err := LoadConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config, err = tryPartialParse(configPath)
		if err != nil {
			return nil, err
		}
	}
	config.dir = filepath.Dir(utils.GetAbsolutePath(configPath))
	return config, nil
}

// tryPartialParse keeps every value that still parses with the expected type.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if logSection, ok := utils.ExtractSection(tempConfig, "log"); ok {
		extractLogConfig(logSection, &config.Log)
	}
	return config, nil
}

// extractDictConfig extracts dictionary configuration from a map
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "base_dir"); ok {
		dict.BaseDir = val
	}
	if val, ok := utils.ExtractString(data, "ext_dir"); ok {
		dict.ExtDir = val
	}
	if val, ok := utils.ExtractString(data, dictionary.ExtDictKey); ok {
		dict.ExtDict = val
	}
	if val, ok := utils.ExtractString(data, dictionary.ExtStopWordsKey); ok {
		dict.ExtStopWords = val
	}
	if val, ok := utils.ExtractString(data, "snapshot"); ok {
		dict.Snapshot = val
	}
}

func extractLogConfig(data map[string]any, l *LogConfig) {
	if val, ok := utils.ExtractString(data, "level"); ok {
		l.Level = val
	}
	if val, ok := utils.ExtractBool(data, "timestamp"); ok {
		l.Timestamp = val
	}
	if val, ok := utils.ExtractString(data, "format"); ok {
		l.Format = val
	}
}

// SaveConfig saves into a TOML file, creating its directory if needed.
func SaveConfig(config *Config, configPath string) error {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(config, configPath)
}

// Lookup implements dictionary.Source for the extension keys. Keys with an
// empty value are reported as absent.
func (c *Config) Lookup(key string) (string, bool) {
	var val string
	switch key {
	case dictionary.ExtDictKey:
		val = c.Dict.ExtDict
	case dictionary.ExtStopWordsKey:
		val = c.Dict.ExtStopWords
	}
	return val, strings.TrimSpace(val) != ""
}

// Dir returns the directory of the loaded config file, or "" for defaults.
func (c *Config) Dir() string {
	return c.dir
}

// Options maps the config onto dictionary load options. Relative
// directories are resolved against the config file's directory first.
func (c *Config) Options() dictionary.Options {
	pr := utils.NewPathResolver(c.dir)
	opts := dictionary.Options{
		Source: c,
		Logger: c.Logger(),
	}

	if c.Dict.BaseDir != "" {
		opts.Base = os.DirFS(pr.ResolveDir(c.Dict.BaseDir, dictionary.Main.BaseFile()))
	}

	extDir := c.Dict.ExtDir
	if extDir == "" {
		extDir = c.dir
	}
	if extDir != "" {
		opts.Ext = os.DirFS(pr.ResolveDir(extDir, ""))
	}

	if c.Dict.Snapshot != "" {
		opts.Snapshot = pr.ResolveFile(c.Dict.Snapshot)
	}
	return opts
}

// Logger builds the load-phase logger described by the [log] section.
func (c *Config) Logger() *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", c.Log.Level)
		level = log.InfoLevel
	}
	return logger.NewWithConfig("segdict", level, false, c.Log.Timestamp, c.Log.formatter())
}

func (l LogConfig) formatter() log.Formatter {
	switch strings.ToLower(l.Format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
