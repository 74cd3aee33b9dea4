package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Webhook: WebhookConfig{Secret: "hook-secret"},
		Backend: BackendConfig{URL: "http://backend"},
		Near:    NearConfig{NetworkID: "testnet", AgentURL: "http://agent"},
		LLM: LLMConfig{Providers: []ProviderConfig{
			{Name: "nearai", Enabled: true, Priority: 1, APIKey: "k"},
		}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "mainnet", mutate: func(c *Config) { c.Near.NetworkID = "mainnet" }},
		{name: "bad network", mutate: func(c *Config) { c.Near.NetworkID = "betanet" }, wantErr: "NETWORK_ID"},
		{name: "no webhook secret", mutate: func(c *Config) { c.Webhook.Secret = "" }, wantErr: "GITHUB_WEBHOOK_SECRET"},
		{name: "no backend", mutate: func(c *Config) { c.Backend.URL = "" }, wantErr: "BACKEND_URL"},
		{name: "no agent", mutate: func(c *Config) { c.Near.AgentURL = "" }, wantErr: "NEAR_AGENT_URL"},
		{name: "no providers", mutate: func(c *Config) { c.LLM.Providers = nil }, wantErr: "NEAR_AI_API_KEY"},
		{
			name: "duplicate priority",
			mutate: func(c *Config) {
				c.LLM.Providers = append(c.LLM.Providers, ProviderConfig{Name: "openai-compatible", Enabled: true, Priority: 1})
			},
			wantErr: "duplicate priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("NETWORK_ID", "mainnet")
	t.Setenv("NEAR_AI_API_KEY", "sk-test")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "hook-secret")
	t.Setenv("MAINTAINER_SECRET", "lockmeup")
	t.Setenv("DEBUG", "true")
	t.Setenv("TEST_CONTRIBUTOR_WALLET", "bob.near")
	t.Setenv("WEBHOOK_ALLOWED_IPS", "10.0.0.1, 10.0.0.2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Near.NetworkID != "mainnet" {
		t.Errorf("expected mainnet, got %q", cfg.Near.NetworkID)
	}
	if cfg.Webhook.Secret != "hook-secret" || cfg.MaintainerSecret != "lockmeup" {
		t.Errorf("secrets not bound: %+v / %q", cfg.Webhook, cfg.MaintainerSecret)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("DEBUG should force debug level, got %q", cfg.Logger.Level)
	}
	if cfg.Near.TestContributorWallet != "bob.near" {
		t.Errorf("override wallet not bound: %q", cfg.Near.TestContributorWallet)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].APIKey != "sk-test" {
		t.Errorf("expected synthesized nearai provider, got %+v", cfg.LLM.Providers)
	}
	if len(cfg.Webhook.AllowedIPs) != 2 || cfg.Webhook.AllowedIPs[1] != "10.0.0.2" {
		t.Errorf("allowed IPs not split: %v", cfg.Webhook.AllowedIPs)
	}
	if cfg.Near.ReleaseAttempts != 3 {
		t.Errorf("expected default 3 release attempts, got %d", cfg.Near.ReleaseAttempts)
	}
}
