package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marcodamonte/chapters/chapter"
	"github.com/marcodamonte/chapters/config"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chapters.yaml")
	data := "color: never\nfiles:\n  username: who.txt\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := config.Config{
		Color: chapter.ColorNever,
		Files: config.Files{Data: "file.txt", Username: "who.txt"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colour: always\n"},
		{"bad color", "color: rainbow\n"},
		{"empty data file", "files:\n  data: \"\"\n"},
		{"wrong type", "verbose: [1, 2]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.Decode(strings.NewReader(tc.yaml)); err == nil {
				t.Errorf("Decode(%q) succeeded; want error", tc.yaml)
			}
		})
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	t.Parallel()

	cfg, err := config.Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("Decode(\"\") = %+v; want defaults", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v; want not-exist", err)
	}
}
