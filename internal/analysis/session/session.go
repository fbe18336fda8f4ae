// Package session keeps per-UI analysis state on top of the analysis engine.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/internal/analysis/highlight"
	pkgLog "vendor-message-analysis/pkg/log"
)

// FailedMessage is shown when an analysis could not produce any result.
const FailedMessage = "Failed to analyze message. Please try again."

// State is a snapshot of a session.
type State struct {
	ID           string
	IsAnalyzing  bool
	LastAnalysis *analysis.MessageAnalysisResult
	Error        string
	ContactID    string
	UpdatedAt    time.Time
}

// Session tracks the analysis of the message currently displayed to one user.
// A new AnalyzeMessage call supersedes any in-flight one, and results arriving after Close are discarded.
type Session struct {
	id string
	uc analysis.UseCase
	l  pkgLog.Logger

	mu        sync.Mutex
	state     State
	gen       uint64
	cancel    context.CancelFunc
	closed    bool
	contactID string
}

// New creates a session bound to uc.
func New(id string, l pkgLog.Logger, uc analysis.UseCase) *Session {
	return &Session{
		id:    id,
		uc:    uc,
		l:     l,
		state: State{ID: id, UpdatedAt: time.Now()},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.ContactID = s.contactID
	if st.LastAnalysis != nil {
		r := st.LastAnalysis.Clone()
		st.LastAnalysis = &r
	}
	return st
}

// AnalyzeMessage runs the engine for actx and stores the result as the last analysis.
// It returns nil when the call failed, was superseded, or the session was closed.
func (s *Session) AnalyzeMessage(ctx context.Context, actx analysis.AnalysisContext) *analysis.MessageAnalysisResult {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state.IsAnalyzing = true
	s.state.Error = ""
	s.touch()
	s.mu.Unlock()
	defer cancel()

	result, err := s.run(ctx, actx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.gen {
		s.l.Debugf(ctx, "analysis.session.AnalyzeMessage: discarding stale result for session %s", s.id)
		return nil
	}

	s.cancel = nil
	s.state.IsAnalyzing = false
	s.touch()

	if err != nil {
		if errors.Is(err, analysis.ErrCanceled) {
			return nil
		}
		s.l.Errorf(ctx, "analysis.session.AnalyzeMessage: session %s: %v", s.id, err)
		s.state.Error = FailedMessage
		return nil
	}

	stored := result
	s.state.LastAnalysis = &stored
	s.contactID = actx.ContactID

	out := result.Clone()
	return &out
}

// run calls the engine and converts a panic into an error.
func (s *Session) run(ctx context.Context, actx analysis.AnalysisContext) (result analysis.MessageAnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis engine panicked: %v", r)
		}
	}()
	return s.uc.AnalyzeMessage(ctx, actx)
}

// ClearAnalysis forgets the last analysis and error.
func (s *Session) ClearAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.LastAnalysis = nil
	s.state.Error = ""
	s.contactID = ""
	s.touch()
}

// Summary describes the last analysis, or nil if none is held.
func (s *Session) Summary() *analysis.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.LastAnalysis == nil {
		return nil
	}
	sum := analysis.Summarize(*s.state.LastAnalysis)
	return &sum
}

// HighlightedRanges maps the last analysis onto message. It is empty when no analysis is held.
func (s *Session) HighlightedRanges(message string) []highlight.Range {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.LastAnalysis == nil {
		return []highlight.Range{}
	}
	return highlight.Ranges(message, *s.state.LastAnalysis)
}

// RangesAt returns the highlighted ranges of the last analysis that cover offset in message.
// UI code uses it to resolve the item under the cursor instead of matching by index.
func (s *Session) RangesAt(message string, offset int) []highlight.Range {
	hits := highlight.At(s.HighlightedRanges(message), offset)
	if hits == nil {
		return []highlight.Range{}
	}
	return hits
}

// ClearContactCache drops the engine's cached results for contactID and,
// if the last analysis came from that contact, the last analysis too.
func (s *Session) ClearContactCache(contactID string) int {
	removed := s.uc.ClearContactCache(contactID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contactID == contactID {
		s.state.LastAnalysis = nil
		s.state.Error = ""
		s.contactID = ""
		s.touch()
	}
	return removed
}

// Close cancels in-flight work. Later calls are no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state.IsAnalyzing = false
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) touch() {
	s.state.UpdatedAt = time.Now()
}
