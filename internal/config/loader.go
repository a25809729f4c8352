package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// LoaderOptions describes how configuration should be discovered.
type LoaderOptions struct {
	ConfigPaths []string
	FileName    string
	EnvPrefix   string
}

// Load returns the merged configuration from files and environment variables.
func Load(opts LoaderOptions) (Config, error) {
	v := viper.New()

	name := opts.FileName
	if name == "" {
		name = "issuesheet"
	}

	configFile := locateConfigFile(name, opts.ConfigPaths)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(name)
	}

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = "ISSUESHEET"
	}
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)

	setDefaults(v)

	if configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// Expand environment variables in config values
	cfg.GitHub.Token = expandEnvString(cfg.GitHub.Token)
	cfg.GitHub.Endpoint = expandEnvString(cfg.GitHub.Endpoint)
	cfg.Output.ReportDir = expandEnvString(cfg.Output.ReportDir)

	return cfg, nil
}

// expandEnvString replaces ${VAR} or $VAR with environment variable values.
func expandEnvString(s string) string {
	if s == "" {
		return s
	}

	re := regexp.MustCompile(`\$\{([A-Z_][A-Z0-9_]*)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

func locateConfigFile(name string, paths []string) string {
	searchPaths := append([]string{}, paths...)
	searchPaths = append(searchPaths, ".")
	for _, dir := range searchPaths {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name+".yaml")
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("github.timeout", "30s")

	v.SetDefault("output.reportDir", "out")

	v.SetDefault("observability.logging.enabled", true)
	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "auto")
	v.SetDefault("observability.logging.redactTokens", true)
}
