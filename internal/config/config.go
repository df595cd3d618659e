// Package config loads the oaspublisher settings from .env files, environment
// variables and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/erraggy/oaspublisher/oaserrors"
	"github.com/erraggy/oaspublisher/reconciler"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "OASPUBLISHER"

// DefaultConfigName is the config file searched for in the working directory
// when no explicit file is given.
const DefaultConfigName = ".oaspublisher"

// Configuration keys.
const (
	KeySource                   = "source"
	KeyReleaseFolder            = "release-folder"
	KeyReconciledAPI            = "reconciled-api"
	KeyAlwaysIncludeTags        = "always-include-tags"
	KeyRemoveObjectExtensions   = "remove-object-extensions"
	KeyRemovePropertyExtensions = "remove-property-extensions"
	KeyIllegalExtensions        = "illegal-extensions"
	KeyLogLevel                 = "log-level"
	KeyLogFormat                = "log-format"
)

// EnvFiles are loaded in order before the environment is read.
// Variables already set are never overridden, so .env wins over .env.local
// only for keys it defines first.
var EnvFiles = []string{".env", ".env.local"}

// Config holds the application configuration.
type Config struct {
	// ConfigFile is the config file actually read, if any
	ConfigFile string

	// Source is the path of the OpenAPI document to reconcile
	Source string
	// ReleaseFolder holds releases.json and the version snapshots
	ReleaseFolder string
	// ReconciledAPI is where the reconciled document is exported
	ReconciledAPI string

	AlwaysIncludeTags        []string
	RemoveObjectExtensions   []string
	RemovePropertyExtensions []string
	IllegalExtensions        []string

	LogLevel  string
	LogFormat string
}

// Load reads configuration in order of precedence:
//  1. Environment variables (OASPUBLISHER_RELEASE_FOLDER, ...)
//  2. .env files
//  3. Config file (configFile, or .oaspublisher.yaml in the working directory)
//  4. Defaults
//
// Command-line flags are applied afterwards by the caller.
// An explicit configFile that cannot be read is an error; a missing default
// config file is not.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, &oaserrors.ConfigError{
				Option:  "config",
				Value:   configFile,
				Message: "unable to read config file",
				Cause:   err,
			}
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, &oaserrors.ConfigError{
					Option:  "config",
					Value:   DefaultConfigName + ".yaml",
					Message: "unable to read config file",
					Cause:   err,
				}
			}
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ConfigFile:               v.ConfigFileUsed(),
		Source:                   strings.TrimSpace(v.GetString(KeySource)),
		ReleaseFolder:            strings.TrimSpace(v.GetString(KeyReleaseFolder)),
		ReconciledAPI:            strings.TrimSpace(v.GetString(KeyReconciledAPI)),
		AlwaysIncludeTags:        toList(v.Get(KeyAlwaysIncludeTags)),
		RemoveObjectExtensions:   toList(v.Get(KeyRemoveObjectExtensions)),
		RemovePropertyExtensions: toList(v.Get(KeyRemovePropertyExtensions)),
		IllegalExtensions:        toList(v.Get(KeyIllegalExtensions)),
		LogLevel:                 v.GetString(KeyLogLevel),
		LogFormat:                v.GetString(KeyLogFormat),
	}
}

// ApplyDefaults fills the empty extension lists with the reconciler defaults
// when a release folder is configured. Force-include tags have no default.
func (c *Config) ApplyDefaults() {
	if c.ReleaseFolder == "" {
		return
	}
	if len(c.RemoveObjectExtensions) == 0 {
		c.RemoveObjectExtensions = append([]string(nil), reconciler.DefaultObjectExtensions...)
	}
	if len(c.RemovePropertyExtensions) == 0 {
		c.RemovePropertyExtensions = append([]string(nil), reconciler.DefaultPropertyExtensions...)
	}
	if len(c.IllegalExtensions) == 0 {
		c.IllegalExtensions = append([]string(nil), reconciler.DefaultIllegalExtensions...)
	}
}

// Policy builds the extension policy from the configured lists.
// Call ApplyDefaults first for the release-folder defaults to take effect.
func (c *Config) Policy() reconciler.Policy {
	return reconciler.NewPolicy(
		c.AlwaysIncludeTags,
		c.RemoveObjectExtensions,
		c.RemovePropertyExtensions,
		c.IllegalExtensions,
	)
}

// SplitList splits a comma-separated value, trimming entries and dropping
// empty ones.
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// toList accepts a YAML list or a comma-separated string.
func toList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return SplitList(val)
	case []string:
		return SplitList(strings.Join(val, ","))
	case []any:
		var out []string
		for _, item := range val {
			out = append(out, SplitList(fmt.Sprint(item))...)
		}
		return out
	default:
		return SplitList(fmt.Sprint(val))
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	for _, envFile := range EnvFiles {
		_ = godotenv.Load(envFile)
	}
}
