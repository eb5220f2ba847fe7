// Package config loads the hub configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileReader defines the interface for reading files
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// DefaultFileReader implements FileReader using os.ReadFile
type DefaultFileReader struct{}

func (d *DefaultFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// HubConfig is the full server configuration.
type HubConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
	RatePerMinute  int      `toml:"rate_per_minute"`
	Burst          int      `toml:"burst"`

	// upstream endpoints, both default to the public swap service
	CatalogURL string `toml:"catalog_url"`
	QuoteURL   string `toml:"quote_url"`

	CatalogTTLHours   int `toml:"catalog_ttl_hours"`
	PendingTTLMinutes int `toml:"pending_ttl_minutes"`

	ServiceName    string `toml:"service_name"`
	ServiceVersion string `toml:"service_version"`
	Environment    string `toml:"environment"`

	EnableTracing  bool   `toml:"enable_tracing"`
	UseOTLPTraces  bool   `toml:"use_otlp_traces"`
	OTLPTracesURL  string `toml:"otlp_traces_url"`
	EnableMetrics  bool   `toml:"enable_metrics"`
	UsePrometheus  bool   `toml:"use_prometheus"`
	UseOTLPMetrics bool   `toml:"use_otlp_metrics"`
	OTLPMetricsURL string `toml:"otlp_metrics_url"`
	EnableLogs     bool   `toml:"enable_logs"`
	UseOTLPLogs    bool   `toml:"use_otlp_logs"`
	OTLPLogsURL    string `toml:"otlp_logs_url"`
	InsecureOTLP   bool   `toml:"insecure_otlp"`
}

// DefaultUpstreamURL is the public swap service endpoint.
const DefaultUpstreamURL = "https://1click.chaindefuser.com"

// HubConfigLoader wraps a FileReader to provide dependency injection
// for config loading functions
type HubConfigLoader struct {
	fileReader FileReader
}

// NewHubConfigLoader creates a new loader with the given FileReader
func NewHubConfigLoader(fileReader FileReader) *HubConfigLoader {
	return &HubConfigLoader{fileReader: fileReader}
}

// NewDefaultHubConfigLoader creates a loader with the default file reader
func NewDefaultHubConfigLoader() *HubConfigLoader {
	return NewHubConfigLoader(&DefaultFileReader{})
}

// LoadHubConfig loads the hub config from the given path and fills in
// defaults for anything omitted.
func (cl *HubConfigLoader) LoadHubConfig(configPath string) (*HubConfig, error) {
	if !strings.HasSuffix(configPath, ".toml") {
		return nil, fmt.Errorf("config file must be a toml file")
	}
	body, err := cl.fileReader.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config HubConfig
	if err := toml.Unmarshal(body, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.applyDefaults()

	return &config, nil
}

func (c *HubConfig) applyDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.CatalogURL == "" {
		c.CatalogURL = DefaultUpstreamURL
	}
	if c.QuoteURL == "" {
		c.QuoteURL = DefaultUpstreamURL
	}
	if c.CatalogTTLHours == 0 {
		c.CatalogTTLHours = 6
	}
	if c.PendingTTLMinutes == 0 {
		c.PendingTTLMinutes = 5
	}
	if c.ServiceName == "" {
		c.ServiceName = "neptune-intents-hub"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "1.0.0"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
}
