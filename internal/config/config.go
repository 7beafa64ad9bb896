package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/little-yangyang/vendordoc"
)

// Config holds the service settings.
type Config struct {
	BindAddr         string        `yaml:"bind_addr"`
	TemplateDir      string        `yaml:"template_dir"`
	TemplateFilename string        `yaml:"template_filename"`
	TemplateMarker   string        `yaml:"template_marker"`
	TemplatePath     string        `yaml:"template_path"`
	OutputDir        string        `yaml:"output_dir"`
	NewsLegacy       bool          `yaml:"news_legacy"`
	Debug            bool          `yaml:"debug"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
}

func defaults() *Config {
	return &Config{
		BindAddr:         "0.0.0.0:5050",
		TemplateDir:      vendordoc.DefaultTemplateDir,
		TemplateFilename: vendordoc.DefaultTemplateFilename,
		TemplateMarker:   vendordoc.DefaultTemplateMarker,
		OutputDir:        os.TempDir(),
		ReadTimeout:      10 * time.Second,
		WriteTimeout:     30 * time.Second,
	}
}

// Load builds a Config from defaults, the YAML file named by CONFIG_FILE (if
// any) and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	c := defaults()

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := c.loadFile(path); err != nil {
			return nil, err
		}
	}

	if port := getEnv("PORT", ""); port != "" {
		c.BindAddr = "0.0.0.0:" + port
	}
	c.BindAddr = getEnv("BIND_ADDR", c.BindAddr)
	c.TemplateDir = getEnv("TEMPLATE_DIR", c.TemplateDir)
	c.TemplateFilename = getEnv("TEMPLATE_FILENAME", c.TemplateFilename)
	c.TemplateMarker = getEnv("TEMPLATE_MARKER", c.TemplateMarker)
	c.TemplatePath = getEnv("TEMPLATE_PATH", c.TemplatePath)
	c.OutputDir = getEnv("OUTPUT_DIR", c.OutputDir)
	c.NewsLegacy = getBool("NEWS_LEGACY", c.NewsLegacy)
	c.Debug = getBool("DEBUG", getBool("FLASK_DEBUG", c.Debug))
	c.ReadTimeout = getDuration("READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = getDuration("WRITE_TIMEOUT", c.WriteTimeout)

	if strings.TrimSpace(c.BindAddr) == "" {
		return nil, fmt.Errorf("BIND_ADDR must not be empty")
	}
	if c.TemplateMarker == "" {
		return nil, fmt.Errorf("TEMPLATE_MARKER must not be empty")
	}
	if c.ReadTimeout <= 0 {
		return nil, fmt.Errorf("READ_TIMEOUT must be positive")
	}
	if c.WriteTimeout <= 0 {
		return nil, fmt.Errorf("WRITE_TIMEOUT must be positive")
	}

	return c, nil
}

// Locator builds the template locator described by c.
func (c *Config) Locator() vendordoc.Locator {
	l := vendordoc.NewLocator(c.TemplateDir)
	l.Filename = c.TemplateFilename
	l.Marker = c.TemplateMarker
	l.Override = c.TemplatePath
	return l
}

// Options builds the populator options described by c.
func (c *Config) Options() vendordoc.Options {
	return vendordoc.Options{LegacyNews: c.NewsLegacy}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
