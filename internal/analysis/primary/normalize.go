package primary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vendor-message-analysis/internal/analysis"
)

// NewServiceRequest serializes actx into the analysis service request contract.
func NewServiceRequest(actx analysis.AnalysisContext) ServiceRequest {
	req := ServiceRequest{
		MessageContent: actx.MessageContent,
		VendorCategory: actx.VendorCategory,
		VendorName:     actx.VendorName,
	}

	if len(actx.ExistingTodos) > 0 {
		req.ExistingTodos = make([]ServiceExistingTodo, len(actx.ExistingTodos))
		for i, t := range actx.ExistingTodos {
			req.ExistingTodos[i] = ServiceExistingTodo{
				ID:          t.ID,
				Title:       t.Title,
				Category:    t.Category,
				IsCompleted: t.IsCompleted,
			}
		}
	}

	if wc := actx.WeddingContext; wc != nil {
		req.WeddingContext = &ServiceWeddingContext{
			PlanningStage:    wc.PlanningStage,
			DaysUntilWedding: wc.DaysUntilWedding,
		}
		if !wc.WeddingDate.IsZero() {
			req.WeddingContext.WeddingDate = wc.WeddingDate.Format(dateLayout)
		}
	}

	return req
}

// Decode validates a raw service response and normalizes it into a result for actx.
// Every shape problem is reported as *analysis.ValidationError.
func Decode(raw []byte, actx analysis.AnalysisContext) (analysis.MessageAnalysisResult, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return analysis.MessageAnalysisResult{}, &analysis.ValidationError{Reason: "response is not a JSON object"}
	}

	var resp ServiceResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return analysis.MessageAnalysisResult{}, &analysis.ValidationError{Reason: "malformed JSON", Err: err}
	}

	return Normalize(resp, actx)
}

// Normalize converts a decoded response into the canonical result shape.
func Normalize(resp ServiceResponse, actx analysis.AnalysisContext) (analysis.MessageAnalysisResult, error) {
	vendorCtx := analysis.VendorContext{
		VendorName:     actx.VendorName,
		VendorCategory: actx.VendorCategory,
		ContactID:      actx.ContactID,
	}

	result := analysis.MessageAnalysisResult{
		NewTodos:       make([]analysis.DetectedTodo, 0, len(resp.NewTodos)),
		TodoUpdates:    make([]analysis.TodoUpdate, 0, len(resp.TodoUpdates)),
		CompletedTodos: make([]analysis.CompletedTodo, 0, len(resp.CompletedTodos)),
	}

	for i, t := range resp.NewTodos {
		field := fmt.Sprintf("newTodos[%d]", i)
		if strings.TrimSpace(t.Title) == "" {
			return analysis.MessageAnalysisResult{}, &analysis.ValidationError{Field: field + ".title", Reason: "required"}
		}
		priority, err := parsePriority(field, t.Priority)
		if err != nil {
			return analysis.MessageAnalysisResult{}, err
		}
		confidence, err := parseConfidence(field, t.Confidence)
		if err != nil {
			return analysis.MessageAnalysisResult{}, err
		}
		deadline, err := parseDeadline(field, t.SuggestedDeadline)
		if err != nil {
			return analysis.MessageAnalysisResult{}, err
		}
		category := t.Category
		if strings.TrimSpace(category) == "" {
			category = actx.VendorCategory
		}

		result.NewTodos = append(result.NewTodos, analysis.DetectedTodo{
			Title:             t.Title,
			Description:       t.Description,
			Category:          category,
			Priority:          priority,
			SuggestedDeadline: deadline,
			VendorContext:     vendorCtx,
			SourceText:        t.SourceText,
			Confidence:        confidence,
		})
	}

	for i, u := range resp.TodoUpdates {
		field := fmt.Sprintf("todoUpdates[%d]", i)
		updateType := analysis.UpdateType(strings.ToLower(strings.TrimSpace(u.UpdateType)))
		if !updateType.Valid() {
			return analysis.MessageAnalysisResult{}, &analysis.ValidationError{Field: field + ".updateType", Reason: fmt.Sprintf("unknown value %q", u.UpdateType)}
		}
		if strings.TrimSpace(u.Content) == "" {
			return analysis.MessageAnalysisResult{}, &analysis.ValidationError{Field: field + ".content", Reason: "required"}
		}
		confidence, err := parseConfidence(field, u.Confidence)
		if err != nil {
			return analysis.MessageAnalysisResult{}, err
		}

		result.TodoUpdates = append(result.TodoUpdates, analysis.TodoUpdate{
			TodoID:     u.TodoID,
			TodoTitle:  u.TodoTitle,
			UpdateType: updateType,
			Content:    u.Content,
			SourceText: u.SourceText,
			Confidence: confidence,
		})
	}

	for i, c := range resp.CompletedTodos {
		field := fmt.Sprintf("completedTodos[%d]", i)
		if strings.TrimSpace(c.CompletionReason) == "" {
			return analysis.MessageAnalysisResult{}, &analysis.ValidationError{Field: field + ".completionReason", Reason: "required"}
		}
		confidence, err := parseConfidence(field, c.Confidence)
		if err != nil {
			return analysis.MessageAnalysisResult{}, err
		}

		result.CompletedTodos = append(result.CompletedTodos, analysis.CompletedTodo{
			TodoID:           c.TodoID,
			TodoTitle:        c.TodoTitle,
			CompletionReason: c.CompletionReason,
			SourceText:       c.SourceText,
			Confidence:       confidence,
		})
	}

	confidence, err := parseConfidence("", resp.Confidence)
	if err != nil {
		return analysis.MessageAnalysisResult{}, err
	}
	result.Confidence = confidence

	result.AnalysisType = analysis.TypeNewMessage
	if resp.AnalysisType != nil {
		t := analysis.AnalysisType(strings.TrimSpace(*resp.AnalysisType))
		if !t.Valid() {
			return analysis.MessageAnalysisResult{}, &analysis.ValidationError{Field: "analysisType", Reason: fmt.Sprintf("unknown value %q", *resp.AnalysisType)}
		}
		result.AnalysisType = t
	}

	return result, nil
}

// parsePriority accepts the three known priorities case-insensitively; an omitted priority means medium.
func parsePriority(field, raw string) (analysis.Priority, error) {
	p := analysis.Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return analysis.PriorityMedium, nil
	}
	if !p.Valid() {
		return "", &analysis.ValidationError{Field: field + ".priority", Reason: fmt.Sprintf("unknown value %q", raw)}
	}
	return p, nil
}

func parseConfidence(field string, raw *float64) (float64, error) {
	if raw == nil {
		return DefaultConfidence, nil
	}
	c := *raw
	if c != c || c < 0 || c > 1 {
		name := "confidence"
		if field != "" {
			name = field + ".confidence"
		}
		return 0, &analysis.ValidationError{Field: name, Reason: fmt.Sprintf("%v is outside [0,1]", c)}
	}
	return c, nil
}

// parseDeadline accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func parseDeadline(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, &analysis.ValidationError{Field: field + ".suggestedDeadline", Reason: fmt.Sprintf("unparseable date %q", s), Err: err}
	}
	return &t, nil
}
