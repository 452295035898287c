package sqlsegment

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the sqlsegment configuration
type Config struct {
	Dialect Dialect       `yaml:"dialect"`
	Output  OutputConfig  `yaml:"output"`
	Extract ExtractConfig `yaml:"extract"`
}

// OutputConfig represents how extracted segments are printed
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color,omitempty"` // Pointer to distinguish between unset and false
}

// ColorEnabled returns true unless color output is explicitly disabled
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// ExtractConfig represents extraction run settings
type ExtractConfig struct {
	// Parallel is the number of files processed at once. 0 means CPU count.
	Parallel int `yaml:"parallel"`
}

// Output formats accepted by the CLI
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatText = "text"
	FormatCSV  = "csv"
)

var (
	envBracePattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	envPlainPattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration, expands environment variables,
// validates it and fills in defaults.
func ParseConfig(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err := yaml.UnmarshalWithOptions([]byte(expanded), &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

func applyDefaults(config *Config) {
	if config.Dialect == "" {
		config.Dialect = DialectMySQL
	}

	if config.Output.Format == "" {
		config.Output.Format = FormatYAML
	}
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if config.Dialect != "" && !config.Dialect.IsValid() {
		return fmt.Errorf("%w: invalid dialect '%s': must be one of postgres, mysql, mariadb, sqlite", ErrConfigValidation, config.Dialect)
	}

	switch config.Output.Format {
	case "", FormatYAML, FormatJSON, FormatText, FormatCSV:
	default:
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of yaml, json, text, csv", ErrConfigValidation, config.Output.Format)
	}

	if config.Extract.Parallel < 0 {
		return fmt.Errorf("%w: extract.parallel must be non-negative, got %d", ErrConfigValidation, config.Extract.Parallel)
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = envBracePattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return envPlainPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}
