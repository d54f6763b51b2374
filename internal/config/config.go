package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Apollo    ApolloConfig    `yaml:"apollo" mapstructure:"apollo"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Enrich    EnrichConfig    `yaml:"enrich" mapstructure:"enrich"`
	Generate  GenerateConfig  `yaml:"generate" mapstructure:"generate"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ApolloConfig holds lead-data provider settings.
type ApolloConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	PerPage     int    `yaml:"per_page" mapstructure:"per_page"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// AnthropicConfig holds generative message provider settings.
type AnthropicConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	Model       string  `yaml:"model" mapstructure:"model"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// EnrichConfig configures the website enrichment stage.
type EnrichConfig struct {
	TimeoutSecs    int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	DelayMs        int    `yaml:"delay_ms" mapstructure:"delay_ms"`
	HeuristicsFile string `yaml:"heuristics_file" mapstructure:"heuristics_file"`
}

// GenerateConfig configures the message generation stage.
type GenerateConfig struct {
	DelayMs int `yaml:"delay_ms" mapstructure:"delay_ms"`
}

// OutputConfig configures the export sinks. An empty XLSXPath disables the
// spreadsheet export.
type OutputConfig struct {
	CSVPath  string `yaml:"csv_path" mapstructure:"csv_path"`
	JSONPath string `yaml:"json_path" mapstructure:"json_path"`
	XLSXPath string `yaml:"xlsx_path" mapstructure:"xlsx_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("apollo.key", "")
	v.SetDefault("anthropic.key", "")
	v.SetDefault("apollo.base_url", "https://api.apollo.io/v1")
	v.SetDefault("apollo.per_page", 10)
	v.SetDefault("apollo.timeout_secs", 30)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.temperature", 0.7)
	v.SetDefault("anthropic.max_tokens", 300)
	v.SetDefault("enrich.timeout_secs", 10)
	v.SetDefault("enrich.delay_ms", 1000)
	v.SetDefault("generate.delay_ms", 500)
	v.SetDefault("output.csv_path", "lead_generation_results.csv")
	v.SetDefault("output.json_path", "lead_generation_results.json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// WarnMissingKeys logs a warning for each absent provider credential.
// Missing keys never abort the run: the affected stage degrades to its
// deterministic fallback when the provider rejects the request.
func (c *Config) WarnMissingKeys() {
	if c.Apollo.Key == "" {
		zap.L().Warn("config: apollo api key not set, lead search will likely fail")
	}
	if c.Anthropic.Key == "" {
		zap.L().Warn("config: anthropic api key not set, messages will use the fallback template")
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
