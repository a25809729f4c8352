package config

// Config represents the full application configuration.
type Config struct {
	GitHub        GitHubConfig        `yaml:"github"`
	Output        OutputConfig        `yaml:"output"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// GitHubConfig configures the GitHub GraphQL client.
type GitHubConfig struct {
	// Token is the bearer token used on every API call. Supports ${VAR}
	// expansion, e.g. "${GITHUB_TOKEN}".
	Token string `yaml:"token"`

	// Endpoint overrides the GraphQL endpoint URL (GHES installs).
	Endpoint string `yaml:"endpoint"`

	// Timeout is the HTTP timeout as a duration string, e.g. "30s".
	Timeout string `yaml:"timeout"`
}

// OutputConfig configures run artifacts.
type OutputConfig struct {
	// ReportDir is the default directory for --report artifacts.
	ReportDir string `yaml:"reportDir"`
}

// ObservabilityConfig configures logging.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Enabled bool `yaml:"enabled"`

	// Level is one of debug, info, error.
	Level string `yaml:"level"`

	// Format is "json", "human", or "auto" (human on a TTY, JSON otherwise).
	Format string `yaml:"format"`

	// RedactTokens redacts API tokens in log output.
	RedactTokens bool `yaml:"redactTokens"`
}

// Merge combines multiple configuration instances, prioritising the latter ones.
func Merge(configs ...Config) Config {
	result := Config{}
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}

func merge(base, overlay Config) Config {
	result := base
	result.GitHub = chooseGitHub(base.GitHub, overlay.GitHub)
	result.Output = chooseOutput(base.Output, overlay.Output)
	result.Observability = chooseObservability(base.Observability, overlay.Observability)
	return result
}

func chooseGitHub(base, overlay GitHubConfig) GitHubConfig {
	result := base
	if overlay.Token != "" {
		result.Token = overlay.Token
	}
	if overlay.Endpoint != "" {
		result.Endpoint = overlay.Endpoint
	}
	if overlay.Timeout != "" {
		result.Timeout = overlay.Timeout
	}
	return result
}

func chooseOutput(base, overlay OutputConfig) OutputConfig {
	if overlay.ReportDir != "" {
		return overlay
	}
	return base
}

func chooseObservability(base, overlay ObservabilityConfig) ObservabilityConfig {
	result := base
	if overlay.Logging.Enabled || overlay.Logging.Level != "" || overlay.Logging.Format != "" {
		result.Logging = overlay.Logging
	}
	return result
}
