package usecase

import (
	"context"
)

// ClearContactCache drops every cached result for contactID. Other contacts are untouched.
func (uc *implUseCase) ClearContactCache(contactID string) int {
	removed := uc.cache.InvalidateContact(contactID)
	uc.metrics.setCacheEntries(uc.cache.Len())
	uc.l.Debugf(context.Background(), "analysis.usecase.ClearContactCache: removed %d entries for contact %q", removed, contactID)
	return removed
}

// ClearAllCache empties the result cache.
func (uc *implUseCase) ClearAllCache() {
	uc.cache.Clear()
	uc.metrics.setCacheEntries(0)
	uc.l.Debug(context.Background(), "analysis.usecase.ClearAllCache: cache cleared")
}
