package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tunelab/preftune/pkg/constants"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files, and the optional config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Sweep configuration
	TrainerBin     string
	SaveRoot       string
	ConfigDir      string
	ScratchDir     string
	ScratchPattern string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by cobra)
//  2. Environment variables (PREFTUNE_*)
//  3. .env files
//  4. Config file (~/.preftune.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("PREFTUNE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("trainer_bin", constants.DefaultTrainerBin)
	v.SetDefault("save_root", constants.DefaultSaveRoot)
	v.SetDefault("config_dir", constants.DefaultConfigDir)
	v.SetDefault("scratch_dir", constants.DefaultScratchDir)
	v.SetDefault("scratch_pattern", constants.DefaultScratchPattern)
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	// Search for config in standard locations
	if configFile := os.Getenv("PREFTUNE_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".preftune")
	}

	// Config file is optional
	_ = v.ReadInConfig()

	config := &Config{
		TrainerBin:     v.GetString("trainer_bin"),
		SaveRoot:       v.GetString("save_root"),
		ConfigDir:      v.GetString("config_dir"),
		ScratchDir:     v.GetString("scratch_dir"),
		ScratchPattern: v.GetString("scratch_pattern"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		LogOutput:      v.GetString("log_output"),
	}

	// LOG_LEVEL without the prefix is honored too, matching pkg/logging.
	if config.LogLevel == "" {
		config.LogLevel = os.Getenv("LOG_LEVEL")
	}

	return config, nil
}

// LoadFile merges values from an explicitly given config file. Only keys
// present in the file override the current configuration.
func (c *Config) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	set := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	set("trainer_bin", &c.TrainerBin)
	set("save_root", &c.SaveRoot)
	set("config_dir", &c.ConfigDir)
	set("scratch_dir", &c.ScratchDir)
	set("scratch_pattern", &c.ScratchPattern)
	set("log_level", &c.LogLevel)
	set("log_format", &c.LogFormat)
	set("log_output", &c.LogOutput)
	return nil
}

// UpdateFromFlags applies parsed persistent flag values.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads .env files from the working directory, if present.
// Missing files are fine; explicit env always wins over file values.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}
