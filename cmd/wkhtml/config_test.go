package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig_FromPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "render.yaml", `
binary: /usr/bin/wkhtmltopdf
overwrite: true
timeout: 45s
outputExtension: png
options:
  dpi: 300
  grayscale: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Binary != "/usr/bin/wkhtmltopdf" {
		t.Errorf("binary = %q", cfg.Binary)
	}
	if !cfg.Overwrite {
		t.Error("expected overwrite true")
	}
	if cfg.Timeout != "45s" {
		t.Errorf("timeout = %q", cfg.Timeout)
	}
	if cfg.OutputExtension != "png" {
		t.Errorf("outputExtension = %q", cfg.OutputExtension)
	}
	if len(cfg.Options) != 2 {
		t.Errorf("options = %v", cfg.Options)
	}
}

func TestLoadConfig_ByName(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "profile.yml", "binary: wkhtmltoimage\n")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cfg, err := LoadConfig("profile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Binary != "wkhtmltoimage" {
		t.Errorf("binary = %q", cfg.Binary)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name       string
		nameOrPath string
		wantErr    error
	}{
		{name: "empty name", nameOrPath: "", wantErr: ErrEmptyConfigName},
		{name: "missing explicit path", nameOrPath: "./does-not-exist.yaml", wantErr: ErrConfigNotFound},
		{name: "missing name", nameOrPath: "no-such-profile", wantErr: ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.nameOrPath); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Run("starter config loads back cleanly", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "render.yaml")
		if err := WriteDefaultConfig(path, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("loading written config: %v", err)
		}
		if cfg.Binary != "wkhtmltopdf" {
			t.Errorf("binary = %q", cfg.Binary)
		}
		if cfg.Timeout != "2m" {
			t.Errorf("timeout = %q", cfg.Timeout)
		}
		if len(cfg.Options) == 0 {
			t.Error("expected starter options")
		}
	})

	t.Run("refuses to replace without overwrite", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "render.yaml", "binary: custom\n")

		if err := WriteDefaultConfig(path, false); !errors.Is(err, ErrConfigExists) {
			t.Fatalf("expected ErrConfigExists, got %v", err)
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("loading config: %v", err)
		}
		if cfg.Binary != "custom" {
			t.Error("existing config must be left untouched")
		}

		if err := WriteDefaultConfig(path, true); err != nil {
			t.Fatalf("unexpected error with overwrite: %v", err)
		}
		cfg, err = LoadConfig(path)
		if err != nil {
			t.Fatalf("loading config: %v", err)
		}
		if cfg.Binary != "wkhtmltopdf" {
			t.Error("expected starter config after overwrite")
		}
	})
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "render.yaml", "binary: x\nbogus: y\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Fatalf("expected ErrConfigParse, got %v", err)
	}
}
