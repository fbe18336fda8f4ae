package primary

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/pkg/llmprovider"
)

const (
	llmTemperature = 0.1
	llmMaxTokens   = 2048
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// Generator is the slice of llmprovider.Manager the LLM client needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMClient answers the analysis contract with a language model instead of the hosted service.
type LLMClient struct {
	gen Generator
}

// NewLLMClient wraps gen, usually an *llmprovider.Manager.
func NewLLMClient(gen Generator) *LLMClient {
	return &LLMClient{gen: gen}
}

func (c *LLMClient) Analyze(ctx context.Context, actx analysis.AnalysisContext) (analysis.MessageAnalysisResult, error) {
	prompt, err := buildPrompt(NewServiceRequest(actx), actx.ConversationHistory)
	if err != nil {
		return analysis.MessageAnalysisResult{}, err
	}

	resp, err := c.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: llmTemperature,
		MaxTokens:   llmMaxTokens,
		JSONOutput:  true,
	})
	if err != nil {
		return analysis.MessageAnalysisResult{}, &analysis.ServiceError{Err: fmt.Errorf("llm: %w", err)}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return analysis.MessageAnalysisResult{}, &analysis.ValidationError{Reason: "empty model response"}
	}

	return Decode([]byte(sanitizeJSONResponse(text)), actx)
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that models often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

var _ analysis.PrimaryAnalyzer = (*LLMClient)(nil)
