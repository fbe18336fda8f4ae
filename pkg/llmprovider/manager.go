package llmprovider

import (
	"context"
	"fmt"
	"time"

	"vendor-message-analysis/pkg/log"
)

// Manager walks the providers in priority order, retrying each before falling through to the next.
type Manager struct {
	providers []Provider
	config    Config
	logger    log.Logger
}

// Config tunes the provider chain.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // attempts per provider, at least 1
	RetryDelay      time.Duration // base delay; attempt n waits n*RetryDelay
	MaxTotalTimeout time.Duration // bound on the whole chain, 0 for none
}

// NewManager creates a Manager. cfg is copied.
func NewManager(providers []Provider, cfg *Config, logger log.Logger) *Manager {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    c,
		logger:    logger,
	}
}

// GenerateContent returns the first successful response in the chain.
// Each provider failure is reported as a *ProviderError wrapped in ErrAllProvidersFailed.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	tried := 0
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("llm chain stopped after %d of %d provider(s): %w", tried, len(m.providers), err)
		}
		tried++

		resp, attempts, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp, attempts)
			return resp, nil
		}

		m.logFailure(ctx, provider, attempts, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// backoff is the wait before attempt (0-based): linear in the attempt number.
func (m *Manager) backoff(attempt int) time.Duration {
	return time.Duration(attempt) * m.config.RetryDelay
}

// generateWithRetry calls provider up to RetryAttempts times and reports how many calls were made.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, int, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(m.backoff(attempt))
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, attempts, ctx.Err()
			}
		}

		attempts++
		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, attempts, nil
		}
		lastErr = err

		// The chain deadline covers every attempt; a late failure is not worth retrying.
		if ctx.Err() != nil {
			break
		}
	}

	return nil, attempts, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, attempts int) {
	tokens := 0
	if resp.Usage != nil {
		tokens = resp.Usage.TotalTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s attempts=%d total_tokens=%d",
		provider.Name(), provider.Model(), attempts, tokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, attempts int, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s attempts=%d error=%v",
		provider.Name(), provider.Model(), attempts, err)
}
