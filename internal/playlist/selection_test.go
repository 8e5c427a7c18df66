package playlist

import (
	"reflect"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		total     int
		expected  []int
	}{
		{
			name:      "should parse single index",
			selection: "3",
			total:     5,
			expected:  []int{3},
		},
		{
			name:      "should parse mixed indices and ranges",
			selection: "1,2,5-7",
			total:     10,
			expected:  []int{1, 2, 5, 6, 7},
		},
		{
			name:      "should deduplicate overlapping tokens",
			selection: "2,2-4,3",
			total:     10,
			expected:  []int{2, 3, 4},
		},
		{
			name:      "should clip out-of-bounds indices",
			selection: "1,3-4,10",
			total:     5,
			expected:  []int{1, 3, 4},
		},
		{
			name:      "should drop zero and negative results of clipping",
			selection: "0,1",
			total:     5,
			expected:  []int{1},
		},
		{
			name:      "should yield empty for reversed range",
			selection: "2-1",
			total:     5,
			expected:  []int{},
		},
		{
			name:      "should yield empty for bare dash",
			selection: "-",
			total:     5,
			expected:  []int{},
		},
		{
			name:      "should skip malformed tokens but keep valid ones",
			selection: "a,2,x-3,4-b,5",
			total:     10,
			expected:  []int{2, 5},
		},
		{
			name:      "should tolerate whitespace around tokens",
			selection: " 1 , 3 - 4 ",
			total:     5,
			expected:  []int{1, 3, 4},
		},
		{
			name:      "should yield empty for empty selection",
			selection: "",
			total:     5,
			expected:  []int{},
		},
		{
			name:      "should sort the result",
			selection: "5,1,3",
			total:     5,
			expected:  []int{1, 3, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSelection(tt.selection, tt.total)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseSelection(%q, %d) = %v, expected %v", tt.selection, tt.total, got, tt.expected)
			}
		})
	}
}
