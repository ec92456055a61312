// Where: internal/manifest/manifest_test.go
// What: Tests for manifest loading and validation.
// Why: A bad manifest must fail before any engine invocation.
package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseValidManifest(t *testing.T) {
	m, err := Parse([]byte(`
models:
  - org/alpha
  - other/beta
image: registry.example.com/team/models:v1
downloader_image: example/dl@sha256:aaaa
`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(m.Models, []string{"org/alpha", "other/beta"}) {
		t.Fatalf("unexpected models: %v", m.Models)
	}
	if m.Image != "registry.example.com/team/models:v1" {
		t.Fatalf("unexpected image: %q", m.Image)
	}
	if m.DownloaderImage != "example/dl@sha256:aaaa" {
		t.Fatalf("unexpected downloader image: %q", m.DownloaderImage)
	}
	if m.RuntimeImage != "" {
		t.Fatalf("unexpected runtime image: %q", m.RuntimeImage)
	}
}

func TestParseAcceptsJSONForm(t *testing.T) {
	m, err := Parse([]byte(`{"models": ["org/alpha"], "image": "img:tag", "runtime_image": "example/rt@sha256:bbbb"}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(m.Models, []string{"org/alpha"}) {
		t.Fatalf("unexpected models: %v", m.Models)
	}
	if m.RuntimeImage != "example/rt@sha256:bbbb" {
		t.Fatalf("unexpected runtime image: %q", m.RuntimeImage)
	}
}

func TestParseRejectsMissingImage(t *testing.T) {
	_, err := Parse([]byte("models: [org/alpha]\n"))
	if err == nil {
		t.Fatal("expected error for missing image")
	}
	if !strings.Contains(err.Error(), "invalid manifest") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsEmptyModels(t *testing.T) {
	_, err := Parse([]byte("models: []\nimage: img:tag\n"))
	if err == nil {
		t.Fatal("expected error for empty model list")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("models: [org/alpha]\nimage: img:tag\nmystery: true\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("models: [org/alpha\n"))
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bake.yml")
	content := "models: [org/alpha]\nimage: img:tag\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if m.Image != "img:tag" {
		t.Fatalf("unexpected image: %q", m.Image)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
