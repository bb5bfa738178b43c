package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindOf(t *testing.T) {
	cases := map[string]Kind{
		"pacifictime.toml": KindTOML,
		"pacifictime.yaml": KindYAML,
		"PACIFICTIME.YML":  KindYAML,
		"pacifictime":      KindTOML,
	}
	for path, want := range cases {
		if got := KindOf(path); got != want {
			t.Errorf("KindOf(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		kind    Kind
		want    Config
		wantErr bool
	}{
		{
			name: "toml",
			in:   "format = \"json\"\nloglevel = \"debug\"\n",
			kind: KindTOML,
			want: Config{Format: "json", LogLevel: "debug"},
		},
		{
			name: "yaml",
			in:   "format: yaml\nloglevel: info\n",
			kind: KindYAML,
			want: Config{Format: "yaml", LogLevel: "info"},
		},
		{
			name: "defaults for missing fields",
			in:   "format = \"toml\"\n",
			kind: KindTOML,
			want: Config{Format: "toml", LogLevel: "warning"},
		},
		{
			name: "empty file",
			in:   "",
			kind: KindYAML,
			want: Default(),
		},
		{
			name:    "unknown format",
			in:      "format: xml\n",
			kind:    KindYAML,
			wantErr: true,
		},
		{
			name:    "unknown log level",
			in:      "loglevel = \"verbose\"\n",
			kind:    KindTOML,
			wantErr: true,
		},
		{
			name:    "malformed toml",
			in:      "format = \n",
			kind:    KindTOML,
			wantErr: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse([]byte(c.in), c.kind)
			if c.wantErr {
				if err == nil {
					t.Fatalf("Parse() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pacifictime.yml")
	if err := os.WriteFile(path, []byte("format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Config{Format: "json", LogLevel: "warning"}, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of a missing file returned no error")
	}
}
