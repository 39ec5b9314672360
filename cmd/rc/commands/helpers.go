package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/frknlkn/revenuecat-go/internal/constants"
	"github.com/frknlkn/revenuecat-go/pkg/rcclient"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyNotConfigured = errors.New("no API key configured (run 'rc configure' or pass --key)")
	ErrProjectNotSpecified = errors.New("no project specified (run 'rc configure' or pass --project)")
	ErrCustomerNotFound    = errors.New("customer not found")
)

// Config is the persisted CLI configuration (~/.revenuecat/config.yml).
type Config struct {
	API     string `yaml:"api,omitempty"`
	Key     string `yaml:"key,omitempty"`
	Project string `yaml:"project,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".revenuecat", "config.yml"), nil
}

func loadConfig() *Config {
	config := &Config{}

	path, err := configFilePath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's own config file
	if err != nil {
		return config
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config file %s: %v\n", path, err)

		return &Config{}
	}

	return config
}

func saveConfigStruct(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// zerologAdapter bridges a zerolog.Logger to the revenuecat.Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (z *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	z.logger.Error().Fields(fields).Msg(msg)
}

// CreateClient builds a revenuecat.Client from flags, environment, and the
// persisted configuration.
func CreateClient() (revenuecat.Client, error) {
	fileConfig := loadConfig()

	apiKey := viper.GetString("key")
	if apiKey == "" {
		apiKey = fileConfig.Key
	}

	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	endpoint := viper.GetString("api")
	if endpoint == "" {
		endpoint = fileConfig.API
	}

	config := &revenuecat.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
	}

	if viper.GetBool("verbose") {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		config.Logger = &zerologAdapter{logger: logger}
		config.Debug = true
	}

	return rcclient.New(config)
}

// ResolveProjectID returns the project ID from flags, environment, or the
// persisted configuration.
func ResolveProjectID() (string, error) {
	if projectID := viper.GetString("project"); projectID != "" {
		return projectID, nil
	}

	if projectID := loadConfig().Project; projectID != "" {
		return projectID, nil
	}

	return "", ErrProjectNotSpecified
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// formatTimestamp renders a millisecond-epoch timestamp for table output.
func formatTimestamp(ts revenuecat.Timestamp) string {
	if ts.IsZero() {
		return NotAvailable
	}

	return ts.Format(time.RFC3339)
}

func formatOptionalTimestamp(ts *revenuecat.Timestamp) string {
	if ts == nil {
		return NotAvailable
	}

	return formatTimestamp(*ts)
}
