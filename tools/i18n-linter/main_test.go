// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := map[string]struct{}{}
	flattenYAML("", map[string]any{
		"cli": map[string]any{"copied": "Copied."},
		"items": map[string]any{
			"one":   "{{.Count}} item",
			"other": "{{.Count}} items",
		},
		"level.weak": "Weak",
	}, keys)
	for _, want := range []string{"cli.copied", "items", "level.weak"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected %q in %v", want, keys)
		}
	}
	if _, ok := keys["items.other"]; ok {
		t.Fatalf("plural forms must stay a single key")
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "a.go"), `package pkg
func f(l string) {
	_ = T("cli.copied")
	_ = T("cli.nope")
	_ = T("level." + l)
	_ = open("config.yaml")
}`)
	writeFile(t, filepath.Join(root, "pkg", "a_test.go"), `package pkg
var _ = "cli.unused"`)
	writeFile(t, filepath.Join(root, "tools", "x", "main.go"), `package main
var _ = "cli.unused"`)
	locales := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(locales, "en.yaml"), `
cli.copied: "Copied."
cli.unused: "Never shown."
level.weak: "Weak"
level.strong: "Strong"
`)
	writeFile(t, filepath.Join(locales, "de.yaml"), `
cli.copied: "Kopiert."
level.weak: "Schwach"
`)

	rep, err := Lint(root, locales, "en.yaml")
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if len(rep.Undefined) != 1 || rep.Undefined[0] != "cli.nope" {
		t.Fatalf("undefined = %v", rep.Undefined)
	}
	if len(rep.Orphaned) != 1 || rep.Orphaned[0] != "cli.unused" {
		t.Fatalf("orphaned = %v", rep.Orphaned)
	}
	if got := rep.Missing["de.yaml"]; len(got) != 2 || got[0] != "cli.unused" || got[1] != "level.strong" {
		t.Fatalf("missing = %v", rep.Missing)
	}
	if !rep.Failed(false) {
		t.Fatalf("undefined IDs must fail the run")
	}

	var buf bytes.Buffer
	rep.Print(&buf)
	if !strings.Contains(buf.String(), "Missing in de.yaml") || !strings.Contains(buf.String(), "cli.nope") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestReportFailed(t *testing.T) {
	r := Report{Orphaned: []string{"cli.old"}, Missing: map[string][]string{}}
	if r.Failed(false) {
		t.Fatalf("orphans alone only warn")
	}
	if !r.Failed(true) {
		t.Fatalf("strict mode fails on orphans")
	}
}

func TestLintMissingPrimary(t *testing.T) {
	if _, err := Lint(t.TempDir(), t.TempDir(), "en.yaml"); err == nil {
		t.Fatalf("expected error for missing primary locale")
	}
}
