package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewReporter_CI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(&bytes.Buffer{}).(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporter_Terminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter(&bytes.Buffer{}).(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{w: &buf}
	r.Start(2)
	r.Update(1, "slide 1")
	r.Update(2, "slide 4")
	r.Finish()

	want := "Exporting 2 slides\n[1/2] slide 1\n[2/2] slide 4\nExport complete\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTerminalReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{w: &buf}
	r.Update(1, "before start")
	r.Start(3)
	for i := 1; i <= 3; i++ {
		r.Update(i, "slide")
	}
	r.Finish()
	if !strings.Contains(buf.String(), "Exporting slides") {
		t.Errorf("bar never rendered: %q", buf.String())
	}
}
