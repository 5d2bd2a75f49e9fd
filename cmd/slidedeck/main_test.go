package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/porticus-lab/slidedeck/internal/config"
	"github.com/porticus-lab/slidedeck/internal/server"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDeck(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), config.DefaultFile)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "slidedeck dev\n" {
		t.Errorf("output = %q", out)
	}
}

func TestCheck_AllSlidesLoad(t *testing.T) {
	deck := writeDeck(t, map[string]string{
		"config/slides.json": `{"title": "Demo", "slides": [
			{"id": "intro", "file": "slides/intro.md"},
			{"id": "outro", "file": "slides/outro.html"}
		]}`,
		"slides/intro.md":   "# Hello\n",
		"slides/outro.html": `<div class="slide" id="outro">Bye</div>`,
	})
	out, err := run(t, "check", "--config", noConfig(t), "--root", deck)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	for _, want := range []string{"Demo", "intro", "slides/outro.html", "2 slides, 0 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheck_ReportsFailures(t *testing.T) {
	deck := writeDeck(t, map[string]string{
		"config/slides.json": `{"slides": [
			{"id": "a", "file": "slides/a.html"},
			{"id": "b", "file": "slides/missing.html"}
		]}`,
		"slides/a.html": `<div class="slide" id="a"></div>`,
	})
	out, err := run(t, "check", "--config", noConfig(t), "--root", deck)
	if !errors.Is(err, errSlidesFailed) {
		t.Fatalf("error = %v, want errSlidesFailed", err)
	}
	if !strings.Contains(out, "FAILED") || !strings.Contains(out, "2 slides, 1 failed") {
		t.Errorf("output:\n%s", out)
	}
}

func TestCheck_RootFromConfigFile(t *testing.T) {
	deck := writeDeck(t, map[string]string{
		"deck.yaml": "slides:\n  - id: only\n    file: only.html\n",
		"only.html": `<div class="slide" id="only"></div>`,
	})
	cfgPath := filepath.Join(t.TempDir(), "custom.yml")
	body := "deck:\n  root: " + deck + "\n  config_path: deck.yaml\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "check", "--config", cfgPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "1 slides, 0 failed") {
		t.Errorf("output:\n%s", out)
	}
}

func TestInit(t *testing.T) {
	path := noConfig(t)
	if _, err := run(t, "init", "--config", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("written config invalid: %v", err)
	}

	if _, err := run(t, "init", "--config", path); err == nil {
		t.Error("second init without --force succeeded")
	}
	if _, err := run(t, "init", "--config", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestExport_RejectsBadStrategy(t *testing.T) {
	_, err := run(t, "export", "--config", noConfig(t), "--root", t.TempDir(), "--strategy", "fax")
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error = %v, want invalid config", err)
	}
}

func TestExport_RequiresViewer(t *testing.T) {
	root := writeDeck(t, map[string]string{"config/slides.json": `{"slides":[{"id":"a","file":"a.html"}]}`})
	_, err := run(t, "export", "--config", noConfig(t), "--root", root, "-o", filepath.Join(t.TempDir(), "out.pdf"))
	if !errors.Is(err, server.ErrNoViewer) {
		t.Fatalf("error = %v, want ErrNoViewer", err)
	}
	if !strings.Contains(err.Error(), "--viewer-dir") {
		t.Errorf("error %q does not mention --viewer-dir", err)
	}
}
