package highlight

import (
	"testing"

	"vendor-message-analysis/internal/analysis"
)

func TestRanges_PhotographerScenario(t *testing.T) {
	msg := "Can we schedule a call for pricing next week?"
	result := analysis.MessageAnalysisResult{
		NewTodos: []analysis.DetectedTodo{
			{Title: "Review pricing", SourceText: "pricing"},
			{Title: "Schedule meeting", SourceText: "schedule"},
		},
	}

	got := Ranges(msg, result)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	want := []Range{
		{Start: 7, End: 15, Type: TypeNewTodo, Index: 1, Content: "schedule"},
		{Start: 27, End: 34, Type: TypeNewTodo, Index: 0, Content: "pricing"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	for _, r := range got {
		if msg[r.Start:r.End] != r.Content {
			t.Errorf("slice %q != content %q", msg[r.Start:r.End], r.Content)
		}
	}
}

func TestRanges_DropsMissingAndEmpty(t *testing.T) {
	msg := "Deposit received, see you Saturday"
	result := analysis.MessageAnalysisResult{
		NewTodos:       []analysis.DetectedTodo{{SourceText: "not in the message"}, {SourceText: ""}},
		TodoUpdates:    []analysis.TodoUpdate{{SourceText: "Saturday"}},
		CompletedTodos: []analysis.CompletedTodo{{SourceText: "Deposit received"}},
	}

	got := Ranges(msg, result)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Type != TypeCompletion || got[0].Start != 0 {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Type != TypeUpdate || got[1].Index != 0 {
		t.Errorf("second = %+v", got[1])
	}
}

func TestRanges_TieBreakAndMultibyte(t *testing.T) {
	msg := "Café booking confirmed"
	result := analysis.MessageAnalysisResult{
		NewTodos:       []analysis.DetectedTodo{{SourceText: "booking"}},
		TodoUpdates:    []analysis.TodoUpdate{{SourceText: "booking confirmed"}},
		CompletedTodos: []analysis.CompletedTodo{{SourceText: "booking"}},
	}

	got := Ranges(msg, result)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	order := []RangeType{TypeNewTodo, TypeUpdate, TypeCompletion}
	for i, r := range got {
		if r.Type != order[i] {
			t.Errorf("range %d type = %q, want %q", i, r.Type, order[i])
		}
		// "Café " is 6 bytes.
		if r.Start != 6 {
			t.Errorf("range %d start = %d, want 6", i, r.Start)
		}
		if msg[r.Start:r.End] != r.Content {
			t.Errorf("slice mismatch for %+v", r)
		}
	}
}

func TestRanges_FirstOccurrence(t *testing.T) {
	got := Ranges("quote, then another quote", analysis.MessageAnalysisResult{
		NewTodos: []analysis.DetectedTodo{{SourceText: "quote"}},
	})
	if len(got) != 1 || got[0].Start != 0 {
		t.Errorf("got %+v, want first occurrence", got)
	}
}

func TestRanges_Empty(t *testing.T) {
	if got := Ranges("anything", analysis.MessageAnalysisResult{}); len(got) != 0 {
		t.Errorf("got %+v, want none", got)
	}
}

func TestAt(t *testing.T) {
	ranges := []Range{
		{Start: 0, End: 10, Type: TypeUpdate, Index: 0},
		{Start: 4, End: 8, Type: TypeNewTodo, Index: 2},
		{Start: 20, End: 25, Type: TypeCompletion, Index: 0},
	}

	tests := []struct {
		offset int
		want   int
	}{
		{offset: 0, want: 1},
		{offset: 5, want: 2},
		{offset: 10, want: 0},
		{offset: 24, want: 1},
		{offset: 25, want: 0},
	}
	for _, tt := range tests {
		if got := At(ranges, tt.offset); len(got) != tt.want {
			t.Errorf("At(%d) = %+v, want %d hits", tt.offset, got, tt.want)
		}
	}
}
