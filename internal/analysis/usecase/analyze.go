package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/internal/analysis/cache"
)

const (
	causePrimaryFailed = "primary_failed"
	causeBlankMessage  = "blank_message"
	causeNoPrimary     = "no_primary"
)

// AnalyzeMessage returns the cached result for actx or derives a new one.
// The only error is analysis.ErrCanceled, when ctx ends before a result is ready.
func (uc *implUseCase) AnalyzeMessage(ctx context.Context, actx analysis.AnalysisContext) (analysis.MessageAnalysisResult, error) {
	start := time.Now()
	ctx, span := uc.tracer.Start(ctx, "analysis.analyze_message",
		trace.WithAttributes(
			attribute.String("contact_id", actx.ContactID),
			attribute.String("vendor_category", actx.VendorCategory),
		),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		uc.metrics.observe("canceled", start)
		return analysis.MessageAnalysisResult{}, canceled(span, err)
	}

	key := cache.Key(actx)
	if entry, ok := uc.cache.Get(key); ok {
		uc.metrics.recordHit()
		uc.metrics.observe("hit", start)
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return stamp(entry.Result.Clone(), actx), nil
	}
	uc.metrics.recordMiss()
	span.SetAttributes(attribute.Bool("cache_hit", false))

	// The shared call outlives any single caller so coalesced waiters are not starved.
	shared := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(key, func() (interface{}, error) {
		if entry, ok := uc.cache.Get(key); ok {
			return entry.Result, nil
		}
		return uc.derive(shared, key, actx), nil
	})

	select {
	case res := <-ch:
		uc.metrics.observe("miss", start)
		span.SetAttributes(attribute.Bool("coalesced", res.Shared))
		result := res.Val.(analysis.MessageAnalysisResult)
		return stamp(result.Clone(), actx), nil
	case <-ctx.Done():
		uc.metrics.observe("canceled", start)
		return analysis.MessageAnalysisResult{}, canceled(span, ctx.Err())
	}
}

// derive runs primary then fallback, normalizes and caches the outcome.
func (uc *implUseCase) derive(ctx context.Context, key string, actx analysis.AnalysisContext) analysis.MessageAnalysisResult {
	var (
		result analysis.MessageAnalysisResult
		cause  string
	)

	switch {
	case strings.TrimSpace(actx.MessageContent) == "":
		cause = causeBlankMessage
	case uc.primary == nil:
		cause = causeNoPrimary
	default:
		var err error
		result, err = uc.callPrimary(ctx, actx)
		if err != nil {
			reason := analysis.FailureReason(err)
			if _, ok := err.(*panicError); ok {
				reason = "panic"
			}
			uc.l.Warnf(ctx, "analysis.usecase.derive: primary analyzer failed for contact %q (reason=%s), using fallback: %v",
				actx.ContactID, reason, err)
			uc.metrics.recordPrimaryFailure(reason)
			cause = causePrimaryFailed
		}
	}

	if cause != "" {
		result = uc.fallback.Analyze(actx)
		uc.metrics.recordFallback(cause)
	}

	result = normalize(result, actx)
	uc.cache.Set(key, actx.ContactID, result)
	uc.metrics.setCacheEntries(uc.cache.Len())
	return result
}

// callPrimary bounds the primary call by primaryTimeout and turns panics into errors.
func (uc *implUseCase) callPrimary(ctx context.Context, actx analysis.AnalysisContext) (result analysis.MessageAnalysisResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "analysis.primary")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, uc.primaryTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, analysis.FailureReason(err))
		}
	}()

	return uc.primary.Analyze(ctx, actx)
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("primary analyzer panicked: %v", e.value)
}

func canceled(span trace.Span, err error) error {
	span.SetStatus(codes.Error, "canceled")
	return fmt.Errorf("%w: %v", analysis.ErrCanceled, err)
}
