package primary

// ServiceRequest is the JSON body posted to the analysis service.
type ServiceRequest struct {
	MessageContent string                 `json:"messageContent"`
	VendorCategory string                 `json:"vendorCategory"`
	VendorName     string                 `json:"vendorName"`
	ExistingTodos  []ServiceExistingTodo  `json:"existingTodos,omitempty"`
	WeddingContext *ServiceWeddingContext `json:"weddingContext,omitempty"`
}

type ServiceExistingTodo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	IsCompleted bool   `json:"isCompleted"`
}

type ServiceWeddingContext struct {
	WeddingDate      string `json:"weddingDate"` // YYYY-MM-DD
	PlanningStage    string `json:"planningStage"`
	DaysUntilWedding int    `json:"daysUntilWedding"`
}

// ServiceResponse is the JSON body the analysis service answers with.
// Pointers distinguish omitted fields from zero values.
type ServiceResponse struct {
	NewTodos       []ServiceNewTodo       `json:"newTodos"`
	TodoUpdates    []ServiceTodoUpdate    `json:"todoUpdates"`
	CompletedTodos []ServiceCompletedTodo `json:"completedTodos"`
	Confidence     *float64               `json:"confidence"`
	AnalysisType   *string                `json:"analysisType"`
}

type ServiceNewTodo struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Priority          string   `json:"priority"`
	SuggestedDeadline *string  `json:"suggestedDeadline"`
	SourceText        string   `json:"sourceText"`
	Confidence        *float64 `json:"confidence"`
}

type ServiceTodoUpdate struct {
	TodoID     string   `json:"todoId"`
	TodoTitle  string   `json:"todoTitle"`
	UpdateType string   `json:"updateType"`
	Content    string   `json:"content"`
	SourceText string   `json:"sourceText"`
	Confidence *float64 `json:"confidence"`
}

type ServiceCompletedTodo struct {
	TodoID           string   `json:"todoId"`
	TodoTitle        string   `json:"todoTitle"`
	CompletionReason string   `json:"completionReason"`
	SourceText       string   `json:"sourceText"`
	Confidence       *float64 `json:"confidence"`
}
