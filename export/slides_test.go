package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSlideRange(t *testing.T) {
	tests := []struct {
		spec    string
		total   int
		want    []int
		wantErr bool
	}{
		{"", 3, []int{0, 1, 2}, false},
		{"  ", 2, []int{0, 1}, false},
		{"2", 3, []int{1}, false},
		{"1-3", 5, []int{0, 1, 2}, false},
		{"1-2, 5", 5, []int{0, 1, 4}, false},
		{"3,1", 3, []int{2, 0}, false},
		{"1-3,2", 3, []int{0, 1, 2}, false},
		{"0", 3, nil, true},
		{"4", 3, nil, true},
		{"3-1", 3, nil, true},
		{"1-9", 3, nil, true},
		{"x", 3, nil, true},
		{"1-", 3, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseSlideRange(tt.spec, tt.total)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSlideRange(%q, %d) error = %v, wantErr %v", tt.spec, tt.total, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); !tt.wantErr && diff != "" {
				t.Errorf("ParseSlideRange(%q) (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}
