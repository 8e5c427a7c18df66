package playlist

import (
	"sort"
	"strconv"
	"strings"
)

// Token separators in a selection string
const (
	selectionSeparator = ","
	rangeSeparator     = "-"
)

// ParseSelection parses a comma-separated selection of 1-based indices and
// inclusive ranges ("1,3,5-7") against a listing of total entries. Malformed
// tokens are silently discarded, not errors; a reversed range ("5-2")
// contributes nothing. The result is sorted, deduplicated and clipped to
// [1, total]. An empty or unparseable selection yields an empty result —
// callers must treat "blank input" as an explicit select-all before calling.
func ParseSelection(selection string, total int) []int {
	indices := make(map[int]struct{})
	for _, part := range strings.Split(selection, selectionSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, rangeSeparator) {
			bounds := strings.SplitN(part, rangeSeparator, 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err1 != nil || err2 != nil {
				continue
			}
			for i := start; i <= end; i++ {
				indices[i] = struct{}{}
			}
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			indices[n] = struct{}{}
		}
	}

	result := make([]int, 0, len(indices))
	for n := range indices {
		if n >= 1 && n <= total {
			result = append(result, n)
		}
	}
	sort.Ints(result)
	return result
}
