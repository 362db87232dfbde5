package source_test

import (
	"testing"

	"sable/internal/source"
)

func TestSpanEmptyAndLen(t *testing.T) {
	empty := source.Span{Start: 5, End: 5}
	if !empty.Empty() {
		t.Errorf("expected span %v to be empty", empty)
	}
	if empty.Len() != 0 {
		t.Errorf("expected empty span length 0, got %d", empty.Len())
	}

	sp := source.Span{Start: 2, End: 9}
	if sp.Empty() {
		t.Errorf("expected span %v to be non-empty", sp)
	}
	if sp.Len() != 7 {
		t.Errorf("expected length 7, got %d", sp.Len())
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name  string
		base  source.Span
		other source.Span
		want  source.Span
	}{
		{
			name:  "disjoint after",
			base:  source.Span{Start: 0, End: 3},
			other: source.Span{Start: 10, End: 12},
			want:  source.Span{Start: 0, End: 12},
		},
		{
			name:  "contained",
			base:  source.Span{Start: 0, End: 10},
			other: source.Span{Start: 2, End: 5},
			want:  source.Span{Start: 0, End: 10},
		},
		{
			name:  "extends left",
			base:  source.Span{Start: 4, End: 8},
			other: source.Span{Start: 1, End: 5},
			want:  source.Span{Start: 1, End: 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Cover(tt.other)
			if got != tt.want {
				t.Errorf("Cover(%v, %v) = %v, want %v", tt.base, tt.other, got, tt.want)
			}
		})
	}
}
