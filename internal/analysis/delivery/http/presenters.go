package http

import (
	"strings"
	"time"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/internal/analysis/highlight"
	"vendor-message-analysis/internal/analysis/session"
	"vendor-message-analysis/pkg/response"
)

// --- Request DTOs ---

type existingTodoReq struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	IsCompleted bool   `json:"is_completed"`
}

type weddingContextReq struct {
	WeddingDate      string `json:"wedding_date"` // YYYY-MM-DD
	PlanningStage    string `json:"planning_stage"`
	DaysUntilWedding int    `json:"days_until_wedding"`
}

type analyzeReq struct {
	MessageContent      string             `json:"message_content"`
	VendorCategory      string             `json:"vendor_category"`
	VendorName          string             `json:"vendor_name"`
	ContactID           string             `json:"contact_id"`
	ConversationHistory []string           `json:"conversation_history"`
	ExistingTodos       []existingTodoReq  `json:"existing_todos"`
	WeddingContext      *weddingContextReq `json:"wedding_context"`
}

func (r analyzeReq) validate() error {
	if strings.TrimSpace(r.ContactID) == "" {
		return analysis.ErrEmptyContactID
	}
	if r.WeddingContext != nil && r.WeddingContext.WeddingDate != "" {
		if _, err := time.Parse(response.DateFormat, r.WeddingContext.WeddingDate); err != nil {
			return errInvalidWeddingDate
		}
	}
	return nil
}

func (r analyzeReq) toContext() analysis.AnalysisContext {
	actx := analysis.AnalysisContext{
		MessageContent:      r.MessageContent,
		VendorCategory:      r.VendorCategory,
		VendorName:          r.VendorName,
		ContactID:           r.ContactID,
		ConversationHistory: r.ConversationHistory,
	}
	if len(r.ExistingTodos) > 0 {
		actx.ExistingTodos = make([]analysis.ExistingTodo, len(r.ExistingTodos))
		for i, t := range r.ExistingTodos {
			actx.ExistingTodos[i] = analysis.ExistingTodo{
				ID:          t.ID,
				Title:       t.Title,
				Category:    t.Category,
				IsCompleted: t.IsCompleted,
			}
		}
	}
	if wc := r.WeddingContext; wc != nil {
		actx.WeddingContext = &analysis.WeddingContext{
			PlanningStage:    wc.PlanningStage,
			DaysUntilWedding: wc.DaysUntilWedding,
		}
		if wc.WeddingDate != "" {
			actx.WeddingContext.WeddingDate, _ = time.Parse(response.DateFormat, wc.WeddingDate)
		}
	}
	return actx
}

type highlightsReq struct {
	MessageContent string    `json:"message_content"`
	Analysis       resultDTO `json:"analysis"`
}

type sessionHighlightsReq struct {
	MessageContent string `json:"message_content"`
	Offset         *int   `json:"offset,omitempty"` // only ranges covering this byte offset
}

// --- Shared result DTOs (used in both directions) ---

type vendorContextDTO struct {
	VendorName     string `json:"vendor_name"`
	VendorCategory string `json:"vendor_category"`
	ContactID      string `json:"contact_id"`
}

type detectedTodoDTO struct {
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	Priority          string           `json:"priority"`
	SuggestedDeadline *response.Date   `json:"suggested_deadline,omitempty" swaggertype:"string"`
	VendorContext     vendorContextDTO `json:"vendor_context"`
	SourceText        string           `json:"source_text"`
	Confidence        float64          `json:"confidence"`
}

type todoUpdateDTO struct {
	TodoID     string  `json:"todo_id,omitempty"`
	TodoTitle  string  `json:"todo_title,omitempty"`
	UpdateType string  `json:"update_type"`
	Content    string  `json:"content"`
	SourceText string  `json:"source_text"`
	Confidence float64 `json:"confidence"`
}

type completedTodoDTO struct {
	TodoID           string  `json:"todo_id,omitempty"`
	TodoTitle        string  `json:"todo_title,omitempty"`
	CompletionReason string  `json:"completion_reason"`
	SourceText       string  `json:"source_text"`
	Confidence       float64 `json:"confidence"`
}

type resultDTO struct {
	NewTodos       []detectedTodoDTO  `json:"new_todos"`
	TodoUpdates    []todoUpdateDTO    `json:"todo_updates"`
	CompletedTodos []completedTodoDTO `json:"completed_todos"`
	Confidence     float64            `json:"confidence"`
	AnalysisType   string             `json:"analysis_type"`
}

func newResultDTO(r analysis.MessageAnalysisResult) resultDTO {
	out := resultDTO{
		NewTodos:       make([]detectedTodoDTO, len(r.NewTodos)),
		TodoUpdates:    make([]todoUpdateDTO, len(r.TodoUpdates)),
		CompletedTodos: make([]completedTodoDTO, len(r.CompletedTodos)),
		Confidence:     r.Confidence,
		AnalysisType:   string(r.AnalysisType),
	}
	for i, t := range r.NewTodos {
		dto := detectedTodoDTO{
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Priority:    string(t.Priority),
			VendorContext: vendorContextDTO{
				VendorName:     t.VendorContext.VendorName,
				VendorCategory: t.VendorContext.VendorCategory,
				ContactID:      t.VendorContext.ContactID,
			},
			SourceText: t.SourceText,
			Confidence: t.Confidence,
		}
		if t.SuggestedDeadline != nil {
			d := response.Date(*t.SuggestedDeadline)
			dto.SuggestedDeadline = &d
		}
		out.NewTodos[i] = dto
	}
	for i, u := range r.TodoUpdates {
		out.TodoUpdates[i] = todoUpdateDTO{
			TodoID:     u.TodoID,
			TodoTitle:  u.TodoTitle,
			UpdateType: string(u.UpdateType),
			Content:    u.Content,
			SourceText: u.SourceText,
			Confidence: u.Confidence,
		}
	}
	for i, c := range r.CompletedTodos {
		out.CompletedTodos[i] = completedTodoDTO{
			TodoID:           c.TodoID,
			TodoTitle:        c.TodoTitle,
			CompletionReason: c.CompletionReason,
			SourceText:       c.SourceText,
			Confidence:       c.Confidence,
		}
	}
	return out
}

// toResult keeps only what the highlighter reads.
func (d resultDTO) toResult() analysis.MessageAnalysisResult {
	r := analysis.MessageAnalysisResult{
		NewTodos:       make([]analysis.DetectedTodo, len(d.NewTodos)),
		TodoUpdates:    make([]analysis.TodoUpdate, len(d.TodoUpdates)),
		CompletedTodos: make([]analysis.CompletedTodo, len(d.CompletedTodos)),
		Confidence:     d.Confidence,
		AnalysisType:   analysis.AnalysisType(d.AnalysisType),
	}
	for i, t := range d.NewTodos {
		r.NewTodos[i] = analysis.DetectedTodo{Title: t.Title, SourceText: t.SourceText, Confidence: t.Confidence}
	}
	for i, u := range d.TodoUpdates {
		r.TodoUpdates[i] = analysis.TodoUpdate{TodoID: u.TodoID, Content: u.Content, SourceText: u.SourceText, Confidence: u.Confidence}
	}
	for i, c := range d.CompletedTodos {
		r.CompletedTodos[i] = analysis.CompletedTodo{TodoID: c.TodoID, CompletionReason: c.CompletionReason, SourceText: c.SourceText, Confidence: c.Confidence}
	}
	return r
}

// --- Response DTOs ---

type summaryResp struct {
	HasNewTodos    bool   `json:"has_new_todos"`
	HasUpdates     bool   `json:"has_updates"`
	HasCompletions bool   `json:"has_completions"`
	TotalItems     int    `json:"total_items"`
	AnalysisType   string `json:"analysis_type"`
}

func newSummaryResp(s *analysis.Summary) *summaryResp {
	if s == nil {
		return nil
	}
	return &summaryResp{
		HasNewTodos:    s.HasNewTodos,
		HasUpdates:     s.HasUpdates,
		HasCompletions: s.HasCompletions,
		TotalItems:     s.TotalItems,
		AnalysisType:   string(s.AnalysisType),
	}
}

type rangeResp struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Type    string `json:"type"`
	Index   int    `json:"index"`
	Content string `json:"content"`
}

func newRangesResp(ranges []highlight.Range) []rangeResp {
	out := make([]rangeResp, len(ranges))
	for i, r := range ranges {
		out[i] = rangeResp{
			Start:   r.Start,
			End:     r.End,
			Type:    string(r.Type),
			Index:   r.Index,
			Content: r.Content,
		}
	}
	return out
}

type analyzeResp struct {
	Analysis   resultDTO    `json:"analysis"`
	Summary    *summaryResp `json:"summary"`
	Highlights []rangeResp  `json:"highlights"`
}

func (h *handler) newAnalyzeResp(message string, r analysis.MessageAnalysisResult) analyzeResp {
	sum := analysis.Summarize(r)
	return analyzeResp{
		Analysis:   newResultDTO(r),
		Summary:    newSummaryResp(&sum),
		Highlights: newRangesResp(highlight.Ranges(message, r)),
	}
}

type highlightsResp struct {
	Highlights []rangeResp `json:"highlights"`
}

type clearCacheResp struct {
	ContactID string `json:"contact_id,omitempty"`
	Removed   int    `json:"removed"`
}

type sessionResp struct {
	ID           string            `json:"id"`
	IsAnalyzing  bool              `json:"is_analyzing"`
	LastAnalysis *resultDTO        `json:"last_analysis"`
	Error        string            `json:"error,omitempty"`
	ContactID    string            `json:"contact_id,omitempty"`
	UpdatedAt    response.DateTime `json:"updated_at" swaggertype:"string"`
}

func newSessionResp(st session.State) sessionResp {
	out := sessionResp{
		ID:          st.ID,
		IsAnalyzing: st.IsAnalyzing,
		Error:       st.Error,
		ContactID:   st.ContactID,
		UpdatedAt:   response.DateTime(st.UpdatedAt),
	}
	if st.LastAnalysis != nil {
		dto := newResultDTO(*st.LastAnalysis)
		out.LastAnalysis = &dto
	}
	return out
}

type sessionClearCacheResp struct {
	ContactID string      `json:"contact_id"`
	Removed   int         `json:"removed"`
	Session   sessionResp `json:"session"`
}

type sessionAnalyzeResp struct {
	Session    sessionResp  `json:"session"`
	Summary    *summaryResp `json:"summary"`
	Highlights []rangeResp  `json:"highlights"`
}
