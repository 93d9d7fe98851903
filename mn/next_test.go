package mn

import (
	"reflect"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []int
	}{
		{
			name:    "empty",
			pattern: "",
			want:    nil,
		},
		{
			name:    "single char",
			pattern: "a",
			want:    []int{-1},
		},
		{
			name:    "all distinct",
			pattern: "abcd",
			want:    []int{-1, 0, 0, 0},
		},
		{
			name:    "classic abab",
			pattern: "abab",
			want:    []int{-1, 0, -1, 0},
		},
		{
			name:    "aaaa",
			pattern: "aaaa",
			want:    []int{-1, -1, -1, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next([]byte(tt.pattern))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Next(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestNext_FirstElementAlwaysNegativeOne(t *testing.T) {
	patterns := []string{"a", "ab", "aab", "abcabcabc", "mississippi"}
	for _, p := range patterns {
		next := Next([]byte(p))
		if next[0] != -1 {
			t.Errorf("Next(%q)[0] = %d, want -1", p, next[0])
		}
	}
}

func TestNext_GenericOverRunes(t *testing.T) {
	pattern := []rune("abcabc")
	got := Next(pattern)
	want := []int{-1, 0, 0, -1, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Next(%q) = %v, want %v", string(pattern), got, want)
	}
}
