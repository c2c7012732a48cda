package vconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix is the prefix environment variables are read under, e.g.
// VVSQL_HTTP_ADDR -> http_addr.
const envPrefix = "VVSQL_"

// findConfigFile resolves which config file to load. An explicit path wins;
// otherwise the current directory is checked for vvsql.yaml then vvsql.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config by layering, lowest to highest precedence: built-in
// defaults, an optional YAML config file, VVSQL_-prefixed environment
// variables, then explicitly-set CLI flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := Defaults()
	if err := k.Load(confmap.Provider(map[string]any{
		"reader":      defaults.Reader,
		"writer":      defaults.Writer,
		"http_addr":   defaults.HTTPAddr,
		"cors_origin": defaults.CORSOrigin,
		"verbose":     defaults.Verbose,
		"format":      defaults.OutputFormat,
		"preload":     defaults.Preload,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	resolved := findConfigFile(cfgFile)
	if resolved != "" {
		if err := k.Load(file.Provider(resolved), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", resolved, err)
		}
	} else if cfgFile != "" {
		return nil, fmt.Errorf("config file not found: %s", cfgFile)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
