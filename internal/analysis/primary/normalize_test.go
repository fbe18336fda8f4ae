package primary

import (
	"errors"
	"testing"

	"vendor-message-analysis/internal/analysis"
)

func TestDecode_Defaults(t *testing.T) {
	actx := photographerContext()

	res, err := Decode([]byte(`{"newTodos":[{"title":"Send shot list","sourceText":"pricing"}]}`), actx)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if res.Confidence != DefaultConfidence {
		t.Errorf("Confidence = %v, want %v", res.Confidence, DefaultConfidence)
	}
	if res.AnalysisType != analysis.TypeNewMessage {
		t.Errorf("AnalysisType = %q, want new_message", res.AnalysisType)
	}
	if res.TodoUpdates == nil || res.CompletedTodos == nil {
		t.Error("Expected missing arrays to decode as empty slices")
	}

	todo := res.NewTodos[0]
	if todo.Priority != analysis.PriorityMedium {
		t.Errorf("Priority = %q, want medium", todo.Priority)
	}
	if todo.Confidence != DefaultConfidence {
		t.Errorf("todo Confidence = %v", todo.Confidence)
	}
	if todo.SuggestedDeadline != nil {
		t.Errorf("SuggestedDeadline = %v, want nil", todo.SuggestedDeadline)
	}
}

func TestDecode_AcceptsRFC3339AndMixedCasePriority(t *testing.T) {
	res, err := Decode([]byte(`{"newTodos":[{"title":"t","priority":"HIGH","suggestedDeadline":"2026-11-01T10:00:00Z"}]}`), photographerContext())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.NewTodos[0].Priority != analysis.PriorityHigh {
		t.Errorf("Priority = %q", res.NewTodos[0].Priority)
	}
	if res.NewTodos[0].SuggestedDeadline.Hour() != 10 {
		t.Errorf("SuggestedDeadline = %v", res.NewTodos[0].SuggestedDeadline)
	}
}

func TestDecode_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "empty body", body: ``},
		{name: "wrong type", body: `{"confidence":"high"}`},
		{name: "missing title", body: `{"newTodos":[{"title":" "}]}`, wantField: "newTodos[0].title"},
		{name: "unknown priority", body: `{"newTodos":[{"title":"a","priority":"urgent"}]}`, wantField: "newTodos[0].priority"},
		{name: "confidence above one", body: `{"newTodos":[{"title":"a","confidence":1.5}]}`, wantField: "newTodos[0].confidence"},
		{name: "negative overall confidence", body: `{"confidence":-0.1}`, wantField: "confidence"},
		{name: "bad deadline", body: `{"newTodos":[{"title":"a","suggestedDeadline":"next week"}]}`, wantField: "newTodos[0].suggestedDeadline"},
		{name: "unknown update type", body: `{"todoUpdates":[{"updateType":"rename","content":"x"}]}`, wantField: "todoUpdates[0].updateType"},
		{name: "empty update content", body: `{"todoUpdates":[{"updateType":"note","content":""}]}`, wantField: "todoUpdates[0].content"},
		{name: "empty completion reason", body: `{"completedTodos":[{"todoId":"t1"}]}`, wantField: "completedTodos[0].completionReason"},
		{name: "unknown analysis type", body: `{"analysisType":"forward"}`, wantField: "analysisType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body), photographerContext())
			var valErr *analysis.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("Expected ValidationError, got %T: %v", err, err)
			}
			if tt.wantField != "" && valErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", valErr.Field, tt.wantField)
			}
		})
	}
}

func TestNewServiceRequest_OmitsEmptyContext(t *testing.T) {
	req := NewServiceRequest(analysis.AnalysisContext{MessageContent: "hi", VendorCategory: "DJ"})
	if req.ExistingTodos != nil {
		t.Errorf("ExistingTodos = %v, want nil", req.ExistingTodos)
	}
	if req.WeddingContext != nil {
		t.Errorf("WeddingContext = %v, want nil", req.WeddingContext)
	}
}
