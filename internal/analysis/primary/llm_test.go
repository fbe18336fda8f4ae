package primary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/pkg/llmprovider"
)

type stubGenerator struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: "model", Parts: []llmprovider.Part{{Text: s.text}}},
	}, nil
}

func TestLLMClient_Analyze_FencedJSON(t *testing.T) {
	gen := &stubGenerator{text: "Here you go:\n```json\n{\"newTodos\":[{\"title\":\"Book call\",\"sourceText\":\"schedule a call\",\"priority\":\"medium\"}],\"confidence\":0.9}\n```"}
	actx := photographerContext()
	actx.ConversationHistory = []string{"Thanks for reaching out!"}

	res, err := NewLLMClient(gen).Analyze(context.Background(), actx)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(res.NewTodos) != 1 || res.NewTodos[0].Title != "Book call" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.NewTodos[0].VendorContext.ContactID != "c1" {
		t.Errorf("VendorContext = %+v", res.NewTodos[0].VendorContext)
	}

	if !gen.lastReq.JSONOutput {
		t.Error("Expected JSON output mode")
	}
	if gen.lastReq.SystemInstruction == nil {
		t.Fatal("Expected system instruction")
	}
	prompt := gen.lastReq.Messages[0].Parts[0].Text
	if !strings.Contains(prompt, "Can we schedule a call for pricing next week?") {
		t.Error("Expected prompt to contain the message")
	}
	if !strings.Contains(prompt, "Thanks for reaching out!") {
		t.Error("Expected prompt to contain the conversation history")
	}
}

func TestLLMClient_Analyze_ProviderFailure(t *testing.T) {
	gen := &stubGenerator{err: llmprovider.ErrAllProvidersFailed}

	_, err := NewLLMClient(gen).Analyze(context.Background(), photographerContext())
	var svcErr *analysis.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected ServiceError, got %T: %v", err, err)
	}
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Error("Expected provider error to stay in the chain")
	}
}

func TestLLMClient_Analyze_EmptyOrProse(t *testing.T) {
	for _, text := range []string{"", "   ", "I could not find anything."} {
		_, err := NewLLMClient(&stubGenerator{text: text}).Analyze(context.Background(), photographerContext())
		var valErr *analysis.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("text %q: expected ValidationError, got %T: %v", text, err, err)
		}
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{in: "Sure! {\"a\":{\"b\":2}} hope it helps", want: `{"a":{"b":2}}`},
		{in: `{"a":1}`, want: `{"a":1}`},
		{in: "no json", want: "no json"},
	}
	for _, tt := range tests {
		if got := sanitizeJSONResponse(tt.in); got != tt.want {
			t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
