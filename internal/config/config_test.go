package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func writeFile(t *testing.T, fsys afero.Fs, path, body string) {
	t.Helper()
	if err := afero.WriteFile(fsys, path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/src/a.cxx", "int x;\n")

	cfg, err := Discover(fsys, "/proj/src/a.cxx")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" || cfg.Output.Color != "auto" || cfg.Output.MaxDiagnostics != 100 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/"+FileName, `
[output]
color = "off"
context = true

[cache]
enabled = true
dir = "/tmp/reindent-cache"
`)
	writeFile(t, fsys, "/proj/src/deep/a.cxx", "int x;\n")

	cfg, err := Discover(fsys, "/proj/src/deep/a.cxx")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "/proj/"+FileName {
		t.Fatalf("Path = %q", cfg.Path)
	}
	if cfg.Output.Color != "off" || !cfg.Output.Context {
		t.Fatalf("output = %+v", cfg.Output)
	}
	if cfg.Output.Diagnostics != "text" || cfg.Output.MaxDiagnostics != 100 {
		t.Fatalf("defaults not kept for unset keys: %+v", cfg.Output)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != "/tmp/reindent-cache" {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad toml", body: "[output\n", want: "failed to parse TOML"},
		{name: "unknown key", body: "[output]\nwidth = 4\n", want: `unknown key "output.width"`},
		{name: "bad color", body: "[output]\ncolor = \"sometimes\"\n", want: "[output].color"},
		{name: "bad format", body: "[output]\ndiagnostics = \"xml\"\n", want: "[output].diagnostics"},
		{name: "empty cache dir", body: "[cache]\ndir = \"  \"\n", want: "[cache].dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeFile(t, fsys, "/c.toml", tt.body)
			_, err := Load(fsys, "/c.toml")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want substring %q", err, tt.want)
			}
		})
	}
}
