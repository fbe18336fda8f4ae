package primary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vendor-message-analysis/internal/analysis"
)

// HTTPConfig configures the analysis service client.
type HTTPConfig struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

// HTTPClient calls the analysis service over its JSON request/response contract.
type HTTPClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a service client. URL is required.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("primary: analysis service URL is required")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPClient{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Analyze posts actx to the service and normalizes the answer.
func (c *HTTPClient) Analyze(ctx context.Context, actx analysis.AnalysisContext) (analysis.MessageAnalysisResult, error) {
	body, err := json.Marshal(NewServiceRequest(actx))
	if err != nil {
		return analysis.MessageAnalysisResult{}, fmt.Errorf("primary: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return analysis.MessageAnalysisResult{}, fmt.Errorf("primary: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return analysis.MessageAnalysisResult{}, &analysis.ServiceError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return analysis.MessageAnalysisResult{}, &analysis.ServiceError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return analysis.MessageAnalysisResult{}, &analysis.ServiceError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return Decode(raw, actx)
}

var _ analysis.PrimaryAnalyzer = (*HTTPClient)(nil)
