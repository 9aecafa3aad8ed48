package variant

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestResolveServer(t *testing.T) {
	v, err := Resolve(".", "server")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v.Kind != KindMultiVersion {
		t.Errorf("kind = %q, want %q", v.Kind, KindMultiVersion)
	}
	if !reflect.DeepEqual(v.SubVersions, []string{"7", "6"}) {
		t.Errorf("sub-versions = %v", v.SubVersions)
	}
	if v.DefaultSubVersion != "7" {
		t.Errorf("default sub-version = %q", v.DefaultSubVersion)
	}
	if v.Manifest() != filepath.Join("server", ManifestName) {
		t.Errorf("manifest = %q", v.Manifest())
	}
}

func TestResolveConsoleAlias(t *testing.T) {
	v, err := Resolve(".", "console")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v.Kind != KindAliased {
		t.Errorf("kind = %q, want %q", v.Kind, KindAliased)
	}
	if v.Dir != filepath.Join(".", "web-console") {
		t.Errorf("dir = %q, want web-console", v.Dir)
	}
	if v.Repository("imgforge") != "imgforge/console" {
		t.Errorf("repository = %q", v.Repository("imgforge"))
	}
}

func TestResolveDirectoryVariant(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "sidecar")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte("FROM scratch\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	v, err := Resolve(root, "sidecar")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v.Kind != KindDirectory {
		t.Errorf("kind = %q, want %q", v.Kind, KindDirectory)
	}
	if v.Dir != dir {
		t.Errorf("dir = %q, want %q", v.Dir, dir)
	}
}

func TestResolveUnknown(t *testing.T) {
	root := t.TempDir()

	// No directory at all.
	if _, err := Resolve(root, "nope"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}

	// Directory without a manifest.
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(root, "empty"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown for manifest-less directory, got %v", err)
	}
}
