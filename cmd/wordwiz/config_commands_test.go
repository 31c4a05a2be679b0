package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordwiz/internal/config"
	"wordwiz/internal/testsupport"
)

func TestConfigInitWritesSample(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "nested", "config.toml")

	got := env.mustRun(t, nil, "config", "init", "--path", target)
	if !strings.Contains(got, target) {
		t.Fatalf("expected target path in output, got %q", got)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	res := env.run(t, nil, "config", "init", "--path", target)
	if res.err == nil || !strings.Contains(res.err.Error(), "already exists") {
		t.Fatalf("expected overwrite guard, got %v", res.err)
	}
	env.mustRun(t, nil, "config", "init", "--path", target, "--overwrite")

	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

func TestConfigValidateReportsKeyword(t *testing.T) {
	env := setupCLITestEnv(t)

	got := env.mustRun(t, nil, "config", "validate")
	if !strings.Contains(got, env.configPath) {
		t.Fatalf("expected config path in output, got %q", got)
	}
	if !strings.Contains(got, "! keyword    not set") {
		t.Fatalf("expected keyword warning, got %q", got)
	}
	if !strings.Contains(got, "✓ settings   valid") {
		t.Fatalf("expected valid status, got %q", got)
	}
}

func TestConfigShowMasksKeyword(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithKeyword("hunter2"))

	got := env.mustRun(t, nil, "config", "show")
	if strings.Contains(got, "hunter2") || !strings.Contains(got, "********") {
		t.Fatalf("keyword not masked:\n%s", got)
	}

	got = env.mustRun(t, nil, "config", "show", "--reveal")
	if !strings.Contains(got, "hunter2") {
		t.Fatalf("keyword not revealed:\n%s", got)
	}

	got = env.mustRun(t, nil, "-o", "table", "config", "show")
	if !strings.Contains(got, "cipher.keyword") || strings.Contains(got, "hunter2") {
		t.Fatalf("unexpected table:\n%s", got)
	}
}

func TestConfigShowJSON(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLanguage("turkish"), testsupport.WithOutputFormat(config.OutputJSON))

	got := env.mustRun(t, nil, "config", "show")
	var view configSummary
	if err := json.Unmarshal([]byte(got), &view); err != nil {
		t.Fatalf("decode json %q: %v", got, err)
	}
	if view.LanguageTag != "tr" || view.LanguageName != "Turkish" {
		t.Fatalf("unexpected language fields: %+v", view)
	}
	if !view.Exists || view.Path != env.configPath {
		t.Fatalf("unexpected path fields: %+v", view)
	}
	if view.Keyword != "" {
		t.Fatalf("expected empty keyword, got %q", view.Keyword)
	}
}
