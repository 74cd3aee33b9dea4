package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github-bounty-agent/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	GitHub  GitHubConfig
	Backend BackendConfig
	Near    NearConfig
	Ledger  LedgerConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Webhooks
	Webhook WebhookConfig

	// MaintainerSecret authorizes maintainer-only API calls and is sent to
	// the backend as the agent secret.
	MaintainerSecret string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GitHubConfig struct {
	// Token is used only for calls that have no delegated token, such as
	// the payout comment of a manual release.
	Token      string
	APIBaseURL string
	Timeout    string
}

type BackendConfig struct {
	URL     string
	Timeout string
}

type NearConfig struct {
	NetworkID             string
	AgentURL              string
	AgentAccountID        string
	TestContributorWallet string
	ReleaseAttempts       int
	ReleaseRetryDelay     string
	Timeout               string
}

type LedgerConfig struct {
	// DSN selects the Postgres ledger; empty keeps the in-memory ledger.
	DSN string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// envBindings maps config keys to the environment variables the service
// has always recognized.
var envBindings = map[string]string{
	"environment.name":             "ENVIRONMENT",
	"http_server.port":             "PORT",
	"debug":                        "DEBUG",
	"webhook.secret":               "GITHUB_WEBHOOK_SECRET",
	"webhook.rate_limit_per_min":   "WEBHOOK_RATE_LIMIT_PER_MIN",
	"webhook.allowed_ips":          "WEBHOOK_ALLOWED_IPS",
	"github.token":                 "GITHUB_TOKEN",
	"github.api_base_url":          "GITHUB_API_BASE_URL",
	"backend.url":                  "BACKEND_URL",
	"maintainer_secret":            "MAINTAINER_SECRET",
	"near_ai.api_key":              "NEAR_AI_API_KEY",
	"near_ai.base_url":             "NEAR_AI_BASE_URL",
	"near_ai.model":                "NEAR_AI_MODEL",
	"near.network_id":              "NETWORK_ID",
	"near.agent_url":               "NEAR_AGENT_URL",
	"near.agent_account_id":        "AGENT_ACCOUNT_ID",
	"near.test_contributor_wallet": "TEST_CONTRIBUTOR_WALLET",
	"ledger.dsn":                   "LEDGER_DSN",
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	if viper.GetBool("debug") {
		cfg.Logger.Level = "debug"
	}

	cfg.MaintainerSecret = viper.GetString("maintainer_secret")

	cfg.GitHub.Token = viper.GetString("github.token")
	cfg.GitHub.APIBaseURL = viper.GetString("github.api_base_url")
	cfg.GitHub.Timeout = viper.GetString("github.timeout")

	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.Timeout = viper.GetString("backend.timeout")

	cfg.Near.NetworkID = viper.GetString("near.network_id")
	cfg.Near.AgentURL = viper.GetString("near.agent_url")
	cfg.Near.AgentAccountID = viper.GetString("near.agent_account_id")
	cfg.Near.TestContributorWallet = viper.GetString("near.test_contributor_wallet")
	cfg.Near.ReleaseAttempts = viper.GetInt("near.release_attempts")
	cfg.Near.ReleaseRetryDelay = viper.GetString("near.release_retry_delay")
	cfg.Near.Timeout = viper.GetString("near.timeout")

	cfg.Ledger.DSN = viper.GetString("ledger.dsn")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers section, NEAR_AI_API_KEY alone configures NEAR AI Cloud.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("near_ai.api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "nearai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				BaseURL:  viper.GetString("near_ai.base_url"),
				Model:    viper.GetString("near_ai.model"),
				Timeout:  viper.GetString("near_ai.timeout"),
			})
		}
	}

	// Webhooks
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	switch c.Near.NetworkID {
	case "testnet", "mainnet":
	default:
		return fmt.Errorf("NETWORK_ID must be testnet or mainnet, got %q", c.Near.NetworkID)
	}
	if c.Webhook.Secret == "" {
		return fmt.Errorf("GITHUB_WEBHOOK_SECRET is required")
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.Near.AgentURL == "" {
		return fmt.Errorf("NEAR_AGENT_URL is required")
	}
	return validateLLMConfig(&c.LLM)
}

func setDefaults() {
	viper.SetDefault("environment.name", model.EnvironmentDevelopment)
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 60)

	viper.SetDefault("github.timeout", "30s")
	viper.SetDefault("backend.url", "http://localhost:4000")
	viper.SetDefault("backend.timeout", "15s")

	viper.SetDefault("near.network_id", "testnet")
	viper.SetDefault("near.agent_url", "http://localhost:3140")
	viper.SetDefault("near.release_attempts", 3)
	viper.SetDefault("near.release_retry_delay", "1s")
	viper.SetDefault("near.timeout", "60s")

	viper.SetDefault("near_ai.timeout", "90s")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "120s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured: set NEAR_AI_API_KEY or add llm.providers to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
