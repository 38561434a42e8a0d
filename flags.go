package wardclerk

import (
	"github.com/flanksource/commons/logger"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type AllFlags struct {
	Config
	logger.Flags
	ConfigFile string
}

var Flags AllFlags = AllFlags{
	Config: DefaultConfig(),
	Flags: logger.Flags{
		Level:        "info",
		LevelCount:   0,
		JsonLogs:     false,
		ReportCaller: false,
		LogToStderr:  true,
	},
}

// BindAllFlags adds the logging and configuration flags to a pflag set (for Cobra)
func BindAllFlags(flags *pflag.FlagSet) *AllFlags {
	defaults := DefaultConfig()
	flags.CountVarP(&Flags.Flags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&Flags.Flags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&Flags.Flags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")
	flags.BoolVar(&Flags.Flags.ReportCaller, "report-caller", false, "Report log caller info")
	flags.BoolVar(&Flags.Flags.LogToStderr, "log-to-stderr", true, "Log to stderr instead of stdout")

	flags.StringVarP(&Flags.ConfigFile, "config", "c", "", "YAML config file, explicit flags take precedence")
	flags.StringVar(&Flags.Config.Locale, "locale", defaults.Locale, "Document language: en, es")
	flags.StringVar(&Flags.Config.PageSize, "page-size", defaults.PageSize, "Page size: A4, Letter")
	flags.StringVar(&Flags.Config.SettingsURL, "settings-url", "", "Base URL of the settings service (GET {url}/settings)")
	flags.DurationVar(&Flags.Config.SettingsTimeout, "settings-timeout", defaults.SettingsTimeout, "Timeout for the settings request and logo download")
	flags.StringVar(&Flags.Config.TemplateFile, "template", "", "YAML branding template, overrides --settings-url")
	flags.StringVar(&Flags.Config.OutputDir, "output-dir", defaults.OutputDir, "Directory for generated documents")
	flags.BoolVar(&Flags.Config.Debug, "debug", false, "Outline the content area on every page")
	return &Flags
}

func (a AllFlags) String() string {
	s, _ := yaml.Marshal(a.Config)
	return string(s)
}

// UseFlags configures logging and, when a config file is given, loads it
// underneath the flags that were set explicitly.
func (a *AllFlags) UseFlags(flags *pflag.FlagSet) error {
	logger.Configure(a.Flags)
	if a.ConfigFile != "" {
		file, err := LoadConfig(a.ConfigFile)
		if err != nil {
			return err
		}
		a.Config = merge(file, a.Config, flags)
	}
	logger.Debugf("Using config: %s", a)
	return nil
}

// merge returns file with the explicitly set flag values applied on top.
func merge(file, flagged Config, flags *pflag.FlagSet) Config {
	overrides := map[string]func(){
		"locale":           func() { file.Locale = flagged.Locale },
		"page-size":        func() { file.PageSize = flagged.PageSize },
		"settings-url":     func() { file.SettingsURL = flagged.SettingsURL },
		"settings-timeout": func() { file.SettingsTimeout = flagged.SettingsTimeout },
		"template":         func() { file.TemplateFile = flagged.TemplateFile },
		"output-dir":       func() { file.OutputDir = flagged.OutputDir },
		"debug":            func() { file.Debug = flagged.Debug },
	}
	for name, apply := range overrides {
		if flags != nil && flags.Changed(name) {
			apply()
		}
	}
	return file
}
