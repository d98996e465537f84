package llm

import (
	"testing"
	"time"
)

// clearProviderEnv blanks every env var the config layer reads so
// keys from the host environment cannot leak into the test.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"PYMASTER_LLM_PROVIDER", "PYMASTER_LLM_RETRIES",
		"PYMASTER_GEMINI_API_KEY", "PYMASTER_GEMINI_MODEL",
		"PYMASTER_OPENAI_API_KEY", "PYMASTER_OPENAI_MODEL", "PYMASTER_OPENAI_BASE_URL",
		"PYMASTER_ANTHROPIC_API_KEY", "PYMASTER_ANTHROPIC_MODEL",
		"PYMASTER_OPENROUTER_API_KEY", "PYMASTER_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("default MaxAttempts = %d, want 1 (no automatic retries)", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("default timeout = %s, want 60s", cfg.Timeout)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PYMASTER_LLM_PROVIDER", "openai")
	t.Setenv("PYMASTER_OPENAI_API_KEY", "sk-test")
	t.Setenv("PYMASTER_OPENAI_MODEL", "gpt-4o")
	t.Setenv("PYMASTER_LLM_RETRIES", "3")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_BadRetriesIgnored(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PYMASTER_LLM_RETRIES", "zero")

	cfg := ConfigFromEnv()
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("unparseable retry count must keep the default, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfig_ProbeOrder(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider to be discovered")
	}
	if cfg.Provider != "openai" {
		t.Errorf("openai precedes anthropic in probe order, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("api key = %q, want sk-openai", cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfig_ExplicitProviderWins(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PYMASTER_LLM_PROVIDER", "anthropic")
	t.Setenv("PYMASTER_ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("GEMINI_API_KEY", "sk-gem")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("explicit PYMASTER_LLM_PROVIDER must win over probing, got %q", cfg.Provider)
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"gemini missing key", func(c *Config) { c.Provider = "gemini" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini.APIKey = "k" }, false},
		{"openai missing key", func(c *Config) { c.Provider = "openai" }, true},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic.APIKey = "k" }, false},
		{"openrouter missing key", func(c *Config) { c.Provider = "openrouter" }, true},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "llama-local" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
