package source

import (
	"testing"
)

func TestSpan_ShiftLeft(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{"shift normal span left by 5", Span{File: 1, Start: 10, End: 20}, 5, Span{File: 1, Start: 5, End: 15}},
		{"shift by 0", Span{File: 1, Start: 10, End: 20}, 0, Span{File: 1, Start: 10, End: 20}},
		{"shift equals start", Span{File: 1, Start: 10, End: 20}, 10, Span{File: 1, Start: 0, End: 10}},
		{"shift larger than start returns original", Span{File: 1, Start: 10, End: 20}, 15, Span{File: 1, Start: 10, End: 20}},
		{"zero-length span", Span{File: 1, Start: 10, End: 10}, 3, Span{File: 1, Start: 7, End: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.ShiftLeft(tt.shift); got != tt.expected {
				t.Errorf("ShiftLeft(%d) = %v, want %v", tt.shift, got, tt.expected)
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{Start: 4, End: 8}
	b := Span{Start: 2, End: 5}
	if got := a.Cover(b); got != (Span{Start: 2, End: 8}) {
		t.Fatalf("Cover = %v", got)
	}
	other := Span{File: 3, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files must keep receiver, got %v", got)
	}
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{Start: 0, End: 10}
	cases := []struct {
		inner Span
		want  bool
	}{
		{Span{Start: 0, End: 10}, true},
		{Span{Start: 3, End: 3}, true},
		{Span{Start: 9, End: 11}, false},
		{Span{File: 1, Start: 1, End: 2}, false},
	}
	for _, c := range cases {
		if got := outer.Contains(c.inner); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.inner, got, c.want)
		}
	}
}

func TestSpan_Zeroide(t *testing.T) {
	s := Span{File: 2, Start: 5, End: 9}
	if got := s.ZeroideToEnd(); got != (Span{File: 2, Start: 9, End: 9}) || !got.Empty() {
		t.Fatalf("ZeroideToEnd = %v", got)
	}
	if got := s.ZeroideToStart(); got != (Span{File: 2, Start: 5, End: 5}) {
		t.Fatalf("ZeroideToStart = %v", got)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d", s.Len())
	}
}
