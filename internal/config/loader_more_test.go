package config

import (
	"testing"
)

func TestLoad_NonexistentFile(t *testing.T) {
	if _, err := Load("/definitely/not/a/real/file-12345.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.yaml", "addr: :8080\n: broken\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected YAML unmarshal error")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.json", `{ "addr": ":8080", "charts": }`)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected JSON unmarshal error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.toml", "addr=:8080\ncharts\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected TOML unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]Config{
		"missing id":    {Charts: []ChartSpec{{}}},
		"duplicate id":  {Charts: []ChartSpec{{ID: "a"}, {ID: "a"}}},
		"unknown chart": {Charts: []ChartSpec{{ID: "a"}}, Groups: []GroupSpec{{Name: "g", Charts: []string{"b"}}}},
		"theme url":     {Themes: []ThemeSpec{{Name: "dark"}}},
	}
	for name, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
	ok := Config{Charts: []ChartSpec{{ID: "a"}, {ID: "b"}}, Groups: []GroupSpec{{Charts: []string{"a", "b"}}}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}
