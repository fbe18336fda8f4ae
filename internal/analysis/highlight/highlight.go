// Package highlight maps detected items back to byte spans of the source message.
package highlight

import (
	"sort"
	"strings"

	"vendor-message-analysis/internal/analysis"
)

// RangeType names the collection a highlighted span came from.
type RangeType string

const (
	TypeNewTodo    RangeType = "new-todo"
	TypeUpdate     RangeType = "update"
	TypeCompletion RangeType = "completion"
)

// order breaks ties between ranges that start at the same offset.
func (t RangeType) order() int {
	switch t {
	case TypeNewTodo:
		return 0
	case TypeUpdate:
		return 1
	default:
		return 2
	}
}

// Range is a highlighted span. Start and End are byte offsets into the message, End exclusive.
// Index is the item's position inside its collection of the analysis result.
type Range struct {
	Start   int
	End     int
	Type    RangeType
	Index   int
	Content string
}

// Ranges locates the first occurrence of each item's source text in message.
// Items with an empty or absent source text produce no range. The output is sorted by Start.
func Ranges(message string, result analysis.MessageAnalysisResult) []Range {
	ranges := make([]Range, 0, result.TotalItems())

	add := func(typ RangeType, idx int, source string) {
		if source == "" {
			return
		}
		start := strings.Index(message, source)
		if start < 0 {
			return
		}
		ranges = append(ranges, Range{
			Start:   start,
			End:     start + len(source),
			Type:    typ,
			Index:   idx,
			Content: source,
		})
	}

	for i, t := range result.NewTodos {
		add(TypeNewTodo, i, t.SourceText)
	}
	for i, u := range result.TodoUpdates {
		add(TypeUpdate, i, u.SourceText)
	}
	for i, c := range result.CompletedTodos {
		add(TypeCompletion, i, c.SourceText)
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		a, b := ranges[i], ranges[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Type != b.Type {
			return a.Type.order() < b.Type.order()
		}
		return a.Index < b.Index
	})

	return ranges
}

// At returns the ranges covering the byte offset, in the order they appear in ranges.
func At(ranges []Range, offset int) []Range {
	var hits []Range
	for _, r := range ranges {
		if r.Start > offset {
			break
		}
		if offset < r.End {
			hits = append(hits, r)
		}
	}
	return hits
}
