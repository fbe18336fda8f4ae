package analysis

import "time"

// Priority of a detected todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// UpdateType classifies a TodoUpdate.
type UpdateType string

const (
	UpdateNote           UpdateType = "note"
	UpdateStatusChange   UpdateType = "status_change"
	UpdateDeadlineUpdate UpdateType = "deadline_update"
	UpdateCategoryChange UpdateType = "category_change"
)

// Valid reports whether t is one of the known update types.
func (t UpdateType) Valid() bool {
	switch t {
	case UpdateNote, UpdateStatusChange, UpdateDeadlineUpdate, UpdateCategoryChange:
		return true
	}
	return false
}

// AnalysisType describes where the message sits in a conversation.
type AnalysisType string

const (
	TypeNewMessage          AnalysisType = "new_message"
	TypeReply               AnalysisType = "reply"
	TypeOngoingConversation AnalysisType = "ongoing_conversation"
)

// Valid reports whether t is one of the known analysis types.
func (t AnalysisType) Valid() bool {
	switch t {
	case TypeNewMessage, TypeReply, TypeOngoingConversation:
		return true
	}
	return false
}

// AnalysisContext is the input bundle describing a vendor message and its planning context.
type AnalysisContext struct {
	MessageContent      string
	VendorCategory      string
	VendorName          string
	ContactID           string
	ConversationHistory []string
	ExistingTodos       []ExistingTodo
	WeddingContext      *WeddingContext
}

// ExistingTodo is a task the couple already tracks.
type ExistingTodo struct {
	ID          string
	Title       string
	Category    string
	IsCompleted bool
}

// WeddingContext carries planning-stage hints for the analyzer.
type WeddingContext struct {
	WeddingDate      time.Time
	PlanningStage    string
	DaysUntilWedding int
}

// VendorContext identifies the vendor a detection came from.
type VendorContext struct {
	VendorName     string
	VendorCategory string
	ContactID      string
}

// DetectedTodo is a new task suggested by a message.
type DetectedTodo struct {
	Title             string
	Description       string
	Category          string
	Priority          Priority
	SuggestedDeadline *time.Time
	VendorContext     VendorContext
	SourceText        string
	Confidence        float64
}

// TodoUpdate is a change to an existing task suggested by a message.
type TodoUpdate struct {
	TodoID     string
	TodoTitle  string
	UpdateType UpdateType
	Content    string
	SourceText string
	Confidence float64
}

// CompletedTodo is an existing task the message reports as done.
type CompletedTodo struct {
	TodoID           string
	TodoTitle        string
	CompletionReason string
	SourceText       string
	Confidence       float64
}

// MessageAnalysisResult is the outcome of analyzing one message.
type MessageAnalysisResult struct {
	NewTodos       []DetectedTodo
	TodoUpdates    []TodoUpdate
	CompletedTodos []CompletedTodo
	Confidence     float64
	AnalysisType   AnalysisType
}

// TotalItems counts every detected item across the three collections.
func (r MessageAnalysisResult) TotalItems() int {
	return len(r.NewTodos) + len(r.TodoUpdates) + len(r.CompletedTodos)
}

// Clone returns a deep copy so callers can edit suggestions without touching cached values.
func (r MessageAnalysisResult) Clone() MessageAnalysisResult {
	out := MessageAnalysisResult{
		Confidence:   r.Confidence,
		AnalysisType: r.AnalysisType,
	}
	if r.NewTodos != nil {
		out.NewTodos = make([]DetectedTodo, len(r.NewTodos))
		for i, t := range r.NewTodos {
			if t.SuggestedDeadline != nil {
				d := *t.SuggestedDeadline
				t.SuggestedDeadline = &d
			}
			out.NewTodos[i] = t
		}
	}
	if r.TodoUpdates != nil {
		out.TodoUpdates = make([]TodoUpdate, len(r.TodoUpdates))
		copy(out.TodoUpdates, r.TodoUpdates)
	}
	if r.CompletedTodos != nil {
		out.CompletedTodos = make([]CompletedTodo, len(r.CompletedTodos))
		copy(out.CompletedTodos, r.CompletedTodos)
	}
	return out
}

// Summary is a compact description of a result for UI badges.
type Summary struct {
	HasNewTodos    bool
	HasUpdates     bool
	HasCompletions bool
	TotalItems     int
	AnalysisType   AnalysisType
}

// Summarize derives a Summary from r.
func Summarize(r MessageAnalysisResult) Summary {
	return Summary{
		HasNewTodos:    len(r.NewTodos) > 0,
		HasUpdates:     len(r.TodoUpdates) > 0,
		HasCompletions: len(r.CompletedTodos) > 0,
		TotalItems:     r.TotalItems(),
		AnalysisType:   r.AnalysisType,
	}
}

// ClampConfidence bounds c to [0,1].
func ClampConfidence(c float64) float64 {
	if c != c || c < 0 { // NaN or negative
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
