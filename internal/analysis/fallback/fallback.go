package fallback

import (
	"fmt"
	"regexp"
	"strings"

	"vendor-message-analysis/internal/analysis"
)

// ResultConfidence is the overall confidence of every fallback result.
// It is lower than a typical primary result so the UI can flag degraded quality.
const ResultConfidence = 0.6

// intentRule is one keyword group. A matching group contributes exactly one todo.
type intentRule struct {
	Name        string
	Pattern     string
	Priority    analysis.Priority
	Confidence  float64
	Title       string // formatted with the vendor label
	Description string
}

// defaultRules returns the built-in keyword groups in output order.
// Patterns match keyword stems anywhere in a word, so inflections like
// "reschedule", "bookings" or "quotation" count, and SourceText is the whole word.
func defaultRules() []intentRule {
	return []intentRule{
		{
			Name:        "scheduling",
			Pattern:     `(?i)\w*(?:schedul|book|meeting)\w*`,
			Priority:    analysis.PriorityMedium,
			Confidence:  0.7,
			Title:       "Schedule meeting with %s",
			Description: "The vendor mentioned scheduling or booking a meeting.",
		},
		{
			Name:        "pricing",
			Pattern:     `(?i)\w*(?:quot|pric|cost)\w*`,
			Priority:    analysis.PriorityHigh,
			Confidence:  0.8,
			Title:       "Review pricing from %s",
			Description: "The vendor mentioned a quote or pricing details.",
		},
		{
			Name:        "payment",
			Pattern:     `(?i)\w*(?:deposit|invoic|payment)\w*`,
			Priority:    analysis.PriorityHigh,
			Confidence:  0.75,
			Title:       "Handle payment for %s",
			Description: "The vendor mentioned a deposit, invoice or payment.",
		},
	}
}

type compiledRule struct {
	intentRule
	regex *regexp.Regexp
}

// Analyzer is the deterministic keyword analyzer used when the primary service fails.
type Analyzer struct {
	rules []compiledRule
}

// New creates an Analyzer with the default rules.
func New() *Analyzer {
	rules := defaultRules()
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		compiled = append(compiled, compiledRule{intentRule: r, regex: regexp.MustCompile(r.Pattern)})
	}
	return &Analyzer{rules: compiled}
}

// Analyze never fails; a message without keywords yields an empty result.
func (a *Analyzer) Analyze(actx analysis.AnalysisContext) analysis.MessageAnalysisResult {
	vendorCtx := analysis.VendorContext{
		VendorName:     actx.VendorName,
		VendorCategory: actx.VendorCategory,
		ContactID:      actx.ContactID,
	}
	label := vendorLabel(actx)

	todos := make([]analysis.DetectedTodo, 0, len(a.rules))
	for _, r := range a.rules {
		loc := r.regex.FindStringIndex(actx.MessageContent)
		if loc == nil {
			continue
		}
		todos = append(todos, analysis.DetectedTodo{
			Title:         fmt.Sprintf(r.Title, label),
			Description:   r.Description,
			Category:      actx.VendorCategory,
			Priority:      r.Priority,
			VendorContext: vendorCtx,
			SourceText:    actx.MessageContent[loc[0]:loc[1]],
			Confidence:    r.Confidence,
		})
	}

	analysisType := analysis.TypeNewMessage
	if len(actx.ConversationHistory) > 0 {
		analysisType = analysis.TypeOngoingConversation
	}

	return analysis.MessageAnalysisResult{
		NewTodos:       todos,
		TodoUpdates:    []analysis.TodoUpdate{},
		CompletedTodos: []analysis.CompletedTodo{},
		Confidence:     ResultConfidence,
		AnalysisType:   analysisType,
	}
}

func vendorLabel(actx analysis.AnalysisContext) string {
	if name := strings.TrimSpace(actx.VendorName); name != "" {
		return name
	}
	if cat := strings.TrimSpace(actx.VendorCategory); cat != "" {
		return strings.ToLower(cat)
	}
	return "vendor"
}
