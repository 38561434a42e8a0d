package wardclerk

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/settings"
)

// Config is the on-disk configuration. Command line flags override it.
type Config struct {
	Locale          string        `yaml:"locale" json:"locale"`
	PageSize        string        `yaml:"pageSize" json:"pageSize"`
	SettingsURL     string        `yaml:"settingsURL,omitempty" json:"settingsURL,omitempty"`
	SettingsTimeout time.Duration `yaml:"settingsTimeout" json:"settingsTimeout"`
	TemplateFile    string        `yaml:"templateFile,omitempty" json:"templateFile,omitempty"`
	OutputDir       string        `yaml:"outputDir,omitempty" json:"outputDir,omitempty"`
	Debug           bool          `yaml:"debug,omitempty" json:"debug,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Locale:          "en",
		PageSize:        string(pdf.A4),
		SettingsTimeout: settings.DefaultTimeout,
		OutputDir:       ".",
	}
}

// LoadConfig reads a YAML config over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return c, nil
}

// Source picks the template source: a template file wins over the settings
// URL; nil when neither is configured.
func (c Config) Source() settings.Source {
	switch {
	case c.TemplateFile != "":
		return settings.FileSource{Path: c.TemplateFile}
	case c.SettingsURL != "":
		return settings.NewHTTPSource(c.SettingsURL, c.SettingsTimeout)
	}
	return nil
}

// Options resolves the branding and returns the render options.
func (c Config) Options(ctx context.Context) Options {
	return Options{
		Locale:   c.Locale,
		PageSize: pdf.ParsePageSize(c.PageSize),
		Template: settings.Load(ctx, c.Source(), c.Locale),
		Debug:    c.Debug,
	}
}
