package export

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSlideRange converts a 1-based slide selection to 0-based slide
// indices in selection order. Supported forms: "" (all), "3", "1-5",
// "1,3,5" and combinations such as "1-3,7". Repeated slides are kept once.
func ParseSlideRange(spec string, total int) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		indices := make([]int, total)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var indices []int
	seen := make(map[int]bool)
	add := func(n int) {
		if !seen[n] {
			indices = append(indices, n-1)
			seen[n] = true
		}
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("export: invalid slide number %q", part)
			}
			if n < 1 || n > total {
				return nil, fmt.Errorf("export: slide %d out of bounds (1-%d)", n, total)
			}
			add(n)
			continue
		}
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("export: invalid slide number %q", lo)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("export: invalid slide number %q", hi)
		}
		if start < 1 || end > total || start > end {
			return nil, fmt.Errorf("export: slide range %d-%d out of bounds (1-%d)", start, end, total)
		}
		for n := start; n <= end; n++ {
			add(n)
		}
	}
	return indices, nil
}
