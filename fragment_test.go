package slidedeck_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/porticus-lab/slidedeck"
)

func TestParseSlides(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []slidedeck.Slide
	}{
		{
			name:   "empty",
			markup: "",
			want:   nil,
		},
		{
			name: "document order",
			markup: `<div class="slide" id="b"></div>
<section class="title slide" id="a"></section>`,
			want: []slidedeck.Slide{{ID: "b"}, {ID: "a"}},
		},
		{
			name:   "error marker",
			markup: `<div class="slide error" id="x"></div>`,
			want:   []slidedeck.Slide{{ID: "x", Failed: true}},
		},
		{
			name:   "class must match a whole token",
			markup: `<div class="slides slide-content" id="no"></div>`,
			want:   nil,
		},
		{
			name:   "nested slides are not reported",
			markup: `<div class="slide" id="outer"><div class="slide" id="inner"></div></div>`,
			want:   []slidedeck.Slide{{ID: "outer"}},
		},
		{
			name:   "slides inside wrappers",
			markup: `<main><article><div class="slide" id="deep"></div></article></main>`,
			want:   []slidedeck.Slide{{ID: "deep"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slidedeck.ParseSlides(tt.markup)
			if err != nil {
				t.Fatalf("ParseSlides: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSlides (-want +got):\n%s", diff)
			}
		})
	}
}

func TestErrorPlaceholder(t *testing.T) {
	d := slidedeck.Descriptor{ID: `slide-"7"`, File: "slides/<bad>.html"}
	markup := slidedeck.ErrorPlaceholder(d)

	if strings.Contains(markup, "<bad>") {
		t.Errorf("file name not escaped:\n%s", markup)
	}
	got, err := slidedeck.ParseSlides(markup)
	if err != nil {
		t.Fatal(err)
	}
	want := []slidedeck.Slide{{ID: d.ID, Failed: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placeholder slides (-want +got):\n%s", diff)
	}
}
