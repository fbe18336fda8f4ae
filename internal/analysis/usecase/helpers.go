package usecase

import "vendor-message-analysis/internal/analysis"

// normalize makes a result safe to cache: no nil collections, confidences in [0,1], known enums.
func normalize(r analysis.MessageAnalysisResult, actx analysis.AnalysisContext) analysis.MessageAnalysisResult {
	if r.NewTodos == nil {
		r.NewTodos = []analysis.DetectedTodo{}
	}
	if r.TodoUpdates == nil {
		r.TodoUpdates = []analysis.TodoUpdate{}
	}
	if r.CompletedTodos == nil {
		r.CompletedTodos = []analysis.CompletedTodo{}
	}

	r.Confidence = analysis.ClampConfidence(r.Confidence)
	if !r.AnalysisType.Valid() {
		r.AnalysisType = analysis.TypeNewMessage
	}

	for i := range r.NewTodos {
		t := &r.NewTodos[i]
		t.Confidence = analysis.ClampConfidence(t.Confidence)
		if !t.Priority.Valid() {
			t.Priority = analysis.PriorityMedium
		}
		if t.Category == "" {
			t.Category = actx.VendorCategory
		}
	}
	for i := range r.TodoUpdates {
		r.TodoUpdates[i].Confidence = analysis.ClampConfidence(r.TodoUpdates[i].Confidence)
	}
	for i := range r.CompletedTodos {
		r.CompletedTodos[i].Confidence = analysis.ClampConfidence(r.CompletedTodos[i].Confidence)
	}

	return stamp(r, actx)
}

// stamp sets the vendor context of every new todo from the calling context.
func stamp(r analysis.MessageAnalysisResult, actx analysis.AnalysisContext) analysis.MessageAnalysisResult {
	vc := analysis.VendorContext{
		VendorName:     actx.VendorName,
		VendorCategory: actx.VendorCategory,
		ContactID:      actx.ContactID,
	}
	for i := range r.NewTodos {
		r.NewTodos[i].VendorContext = vc
	}
	return r
}
