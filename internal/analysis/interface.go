package analysis

import "context"

// UseCase is the analysis engine consumed by sessions and HTTP delivery.
type UseCase interface {
	// AnalyzeMessage always resolves to a result unless ctx ends first, in which case it returns ErrCanceled.
	AnalyzeMessage(ctx context.Context, actx AnalysisContext) (MessageAnalysisResult, error)

	// ClearContactCache drops every cached result derived from contactID and returns how many were removed.
	ClearContactCache(contactID string) int

	// ClearAllCache empties the result cache.
	ClearAllCache()
}

// PrimaryAnalyzer calls the external text-understanding service.
// It may fail with *ServiceError or *ValidationError.
type PrimaryAnalyzer interface {
	Analyze(ctx context.Context, actx AnalysisContext) (MessageAnalysisResult, error)
}
