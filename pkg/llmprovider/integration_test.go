package llmprovider

import (
	"errors"
	"strings"
	"testing"

	"vendor-message-analysis/config"
)

func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "test-gemini-key", Model: "gemini-2.5-flash"},
		},
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "1s",
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 1 {
		t.Fatalf("Expected 1 provider, got %d", len(providers))
	}
	if providers[0].Name() != "gemini" {
		t.Errorf("Expected gemini provider, got %s", providers[0].Name())
	}
	if providers[0].Model() != "gemini-2.5-flash" {
		t.Errorf("Expected model gemini-2.5-flash, got %s", providers[0].Model())
	}

	manager := NewManager(providers, &Config{FallbackEnabled: cfg.FallbackEnabled, RetryAttempts: cfg.RetryAttempts}, &mockLogger{})
	if manager == nil {
		t.Fatal("Expected manager to be created")
	}
}

func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr error
		errText string
	}{
		{
			name:    "nil config",
			cfg:     nil,
			errText: "LLM config is nil",
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: false, APIKey: "k", Model: "m"},
			}},
			wantErr: ErrNoProvidersConfigured,
		},
		{
			name: "missing api key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Model: "m"},
			}},
			errText: "API key is required",
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, APIKey: "k", Model: "m"},
			}},
			errText: "unknown provider",
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, APIKey: "k", Model: "m", Timeout: "soon"},
			}},
			errText: "invalid timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitializeProviders(tt.cfg)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Expected error containing %q, got %v", tt.errText, err)
			}
		})
	}
}

func TestIntegration_ProviderPriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "k1", Model: "gemini-2.5-pro"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k2", Model: "gemini-2.5-flash"},
		},
	}

	providers, err := InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Model() != "gemini-2.5-flash" {
		t.Errorf("Expected priority 1 model first, got %s", providers[0].Model())
	}
	if providers[1].Model() != "gemini-2.5-pro" {
		t.Errorf("Expected priority 10 model second, got %s", providers[1].Model())
	}
}
