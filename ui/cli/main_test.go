// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

//nolint:errcheck
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/toeirei/passforge/core"
	"github.com/toeirei/passforge/core/generate"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/internal/db"
	"github.com/toeirei/passforge/internal/i18n"
)

// setupTestDB opens a private in-memory SQLite store and points the config
// lookup at a temporary directory so tests never touch the user's files.
func setupTestDB(t *testing.T) {
	t.Helper()

	cfgDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgDir)
	t.Setenv("HOME", cfgDir)
	t.Setenv("PASSFORGE_LOG_LEVEL", "error")

	dsn := fmt.Sprintf("file:memdb_%d?mode=memory&cache=shared", time.Now().UnixNano())
	s, err := db.NewStoreFromDSN("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	store = s
	i18n.Init("en")

	prevClipboard := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard in tests") }

	t.Cleanup(func() {
		clipboardWrite = prevClipboard
		closeStore()
	})
}

// executeCommandErr runs a fresh root command and returns its output and error.
func executeCommandErr(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	if stdin != nil {
		root.SetIn(stdin)
	}
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// executeCommand runs a command and fails the test on error.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) string {
	t.Helper()
	out, err := executeCommandErr(t, stdin, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v\noutput:\n%s", args, err, out)
	}
	return out
}

func generateJSON(t *testing.T, args ...string) model.GenerationResult {
	t.Helper()
	out := executeCommand(t, nil, append([]string{"generate", "--json"}, args...)...)
	var res model.GenerationResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode generate output: %v\n%s", err, out)
	}
	return res
}

func TestGenerateCmd_Default(t *testing.T) {
	setupTestDB(t)
	out := executeCommand(t, nil, "generate")
	if !strings.Contains(out, "Score:") || !strings.Contains(out, "Entropy:") {
		t.Fatalf("expected a strength report, got:\n%s", out)
	}
}

func TestGenerateCmd_QuietLength(t *testing.T) {
	setupTestDB(t)
	out := strings.TrimSpace(executeCommand(t, nil, "generate", "-q", "-l", "24"))
	if n := len([]rune(out)); n != 24 {
		t.Fatalf("expected 24 characters, got %d (%q)", n, out)
	}
}

func TestGenerateCmd_JSONRecordsHistory(t *testing.T) {
	setupTestDB(t)
	res := generateJSON(t, "--mode", "passphrase", "--words", "5", "--separator", ".")
	if res.Mode != model.ModePassphrase || strings.Count(res.Password, ".") != 4 {
		t.Fatalf("unexpected passphrase result %+v", res)
	}
	if res.HistoryID == "" {
		t.Fatalf("expected a history id")
	}
	out := executeCommand(t, nil, "history", "list", "--json", "--reveal")
	if !strings.Contains(out, res.Password) {
		t.Fatalf("history does not contain generated password:\n%s", out)
	}
	masked := executeCommand(t, nil, "history", "list", "--json")
	if strings.Contains(masked, res.Password) {
		t.Fatalf("password leaked without --reveal:\n%s", masked)
	}
}

func TestGenerateCmd_Template(t *testing.T) {
	setupTestDB(t)
	out := strings.TrimSpace(executeCommand(t, nil, "generate", "--template", "pin", "-q"))
	if len(out) != 6 {
		t.Fatalf("expected a 6 digit pin, got %q", out)
	}
	for _, r := range out {
		if r < '0' || r > '9' {
			t.Fatalf("pin contains non-digit: %q", out)
		}
	}

	// Changed flags override the template.
	out = strings.TrimSpace(executeCommand(t, nil, "generate", "--template", "pin", "-q", "-l", "8"))
	if len(out) != 8 {
		t.Fatalf("expected override length 8, got %q", out)
	}

	if _, err := executeCommandErr(t, nil, "generate", "--template", "nope"); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestGenerateCmd_TemplateBatchRecordsTemplate(t *testing.T) {
	setupTestDB(t)
	out := executeCommand(t, nil, "generate", "--template", "pin", "-n", "3", "--json")
	var results []model.GenerationResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode batch: %v\n%s", err, out)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	list := executeCommand(t, nil, "history", "list", "--json")
	var entries []model.HistoryEntry
	if err := json.Unmarshal([]byte(list), &entries); err != nil {
		t.Fatalf("decode history: %v\n%s", err, list)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.TemplateID != "pin" {
			t.Fatalf("entry %s lost its template id: %q", e.ID, e.TemplateID)
		}
	}
}

func TestGenerateCmd_EmptySeparator(t *testing.T) {
	setupTestDB(t)
	res := generateJSON(t, "--mode", "passphrase", "--words", "3", "--separator", "")
	if strings.Contains(res.Password, "-") {
		t.Fatalf("expected words joined directly, got %q", res.Password)
	}
	if res.EffectiveLength != 3 {
		t.Fatalf("expected 3 words, got %+v", res)
	}

	// The empty separator is remembered, not reset to the default.
	res = generateJSON(t)
	if res.Mode != model.ModePassphrase || strings.Contains(res.Password, "-") {
		t.Fatalf("remembered settings lost the empty separator: %q", res.Password)
	}
}

func TestGenerateCmd_BatchAndCopy(t *testing.T) {
	setupTestDB(t)
	var copied string
	clipboardWrite = func(s string) error { copied = s; return nil }

	out := executeCommand(t, nil, "generate", "-n", "3", "-q", "--copy")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// three passwords plus the "copied" notice
	if len(lines) != 4 || !strings.Contains(out, "Copied to clipboard.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if len(strings.Split(copied, "\n")) != 3 {
		t.Fatalf("expected 3 copied passwords, got %q", copied)
	}

	stats := executeCommand(t, nil, "history", "stats", "--json")
	var st model.HistoryStats
	if err := json.Unmarshal([]byte(stats), &st); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if st.Total != 3 || st.TotalCopies != 3 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestGenerateCmd_CopyFailureIsReported(t *testing.T) {
	setupTestDB(t)
	out := executeCommand(t, nil, "generate", "-q", "--copy")
	if !strings.Contains(out, "Could not copy to clipboard") {
		t.Fatalf("expected copy failure notice, got:\n%s", out)
	}
}

func TestGenerateCmd_InvalidSettings(t *testing.T) {
	setupTestDB(t)
	_, err := executeCommandErr(t, nil, "generate", "--upper=false", "--lower=false", "--numbers=false", "--symbols=false")
	if !errors.Is(err, generate.ErrEmptyCharset) {
		t.Fatalf("expected ErrEmptyCharset, got %v", err)
	}
	if _, err := executeCommandErr(t, nil, "generate", "-n", "0"); err == nil {
		t.Fatalf("expected error for --count 0")
	}
	if _, err := executeCommandErr(t, nil, "generate", "-l", "2"); !errors.Is(err, generate.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if _, err := executeCommandErr(t, nil, "generate", "--custom-symbols", "1aB"); !errors.Is(err, generate.ErrInvalidSymbols) {
		t.Fatalf("expected ErrInvalidSymbols, got %v", err)
	}
}

func TestGenerateCmd_RemembersSettings(t *testing.T) {
	setupTestDB(t)
	executeCommand(t, nil, "generate", "-q", "-l", "30")
	out := strings.TrimSpace(executeCommand(t, nil, "generate", "-q"))
	if len([]rune(out)) != 30 {
		t.Fatalf("expected remembered length 30, got %q", out)
	}

	shown := executeCommand(t, nil, "settings", "show")
	if !strings.Contains(shown, "length: 30") {
		t.Fatalf("settings show missing length:\n%s", shown)
	}
	executeCommand(t, nil, "settings", "reset")
	shown = executeCommand(t, nil, "settings", "show")
	if !strings.Contains(shown, "length: 16") {
		t.Fatalf("expected defaults after reset:\n%s", shown)
	}
}

func TestAnalyzeCmd(t *testing.T) {
	setupTestDB(t)
	out := executeCommand(t, nil, "analyze", "password123")
	if !strings.Contains(out, "56/100") || !strings.Contains(out, "Medium") {
		t.Fatalf("unexpected report:\n%s", out)
	}
	if !strings.Contains(out, "Avoid predictable sequences") || strings.Contains(out, "Avoid common words.") {
		t.Fatalf("expected only the sequence warning:\n%s", out)
	}

	out = executeCommand(t, nil, "analyze", "letmein2024")
	if !strings.Contains(out, "Avoid common words.") {
		t.Fatalf("expected common word warning:\n%s", out)
	}

	out = executeCommand(t, strings.NewReader("Xk9#mP2$vL7@qR4!\n"), "analyze")
	if !strings.Contains(out, "100/100") || !strings.Contains(out, "centuries") {
		t.Fatalf("unexpected stdin report:\n%s", out)
	}

	js := executeCommand(t, nil, "analyze", "--json", "abc")
	var r model.StrengthReport
	if err := json.Unmarshal([]byte(js), &r); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if r.Length != 3 || !r.HasSequence {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestHistoryCmds(t *testing.T) {
	setupTestDB(t)
	a := generateJSON(t)
	b := generateJSON(t)
	clipboardWrite = func(string) error { return nil }

	if out := executeCommand(t, nil, "history", "favorite", a.HistoryID); !strings.Contains(out, "marked as favorite") {
		t.Fatalf("unexpected favorite output: %s", out)
	}
	favs := executeCommand(t, nil, "history", "list", "--favorites", "--json", "--reveal")
	if !strings.Contains(favs, a.Password) || strings.Contains(favs, b.Password) {
		t.Fatalf("favorites filter wrong:\n%s", favs)
	}

	if out := executeCommand(t, nil, "history", "copy", b.HistoryID); !strings.Contains(out, "copied") {
		t.Fatalf("unexpected copy output: %s", out)
	}
	if out := executeCommand(t, nil, "history", "show", b.HistoryID); !strings.Contains(out, "Score:") {
		t.Fatalf("show should include a report:\n%s", out)
	}
	if out := executeCommand(t, nil, "history", "list"); !strings.Contains(out, a.HistoryID) {
		t.Fatalf("table should list ids:\n%s", out)
	}

	backup := filepath.Join(t.TempDir(), "history.pfb")
	if out := executeCommand(t, nil, "history", "export", backup); !strings.Contains(out, "Exported 2 entries") {
		t.Fatalf("unexpected export output: %s", out)
	}

	if out := executeCommand(t, nil, "history", "delete", b.HistoryID); !strings.Contains(out, "deleted") {
		t.Fatalf("unexpected delete output: %s", out)
	}
	if _, err := executeCommandErr(t, nil, "history", "delete", b.HistoryID); err == nil {
		t.Fatalf("expected error deleting a missing entry")
	}

	if out := executeCommand(t, nil, "history", "clear", "--keep-favorites"); !strings.Contains(out, "0 entries removed") {
		t.Fatalf("unexpected clear output: %s", out)
	}

	out := executeCommand(t, nil, "history", "import", backup)
	if !strings.Contains(out, "Imported 1 entries (1 already present)") {
		t.Fatalf("unexpected import output: %s", out)
	}

	if out := executeCommand(t, nil, "history", "clear"); !strings.Contains(out, "2 entries removed") {
		t.Fatalf("unexpected clear output: %s", out)
	}
	if out := executeCommand(t, nil, "history", "list"); !strings.Contains(out, "No history entries found.") {
		t.Fatalf("expected empty history:\n%s", out)
	}
}

func TestHistoryMigrateCmd(t *testing.T) {
	setupTestDB(t)
	generateJSON(t)
	target := filepath.Join(t.TempDir(), "target.db")
	out := executeCommand(t, nil, "history", "migrate", "--to-type", "sqlite", "--to-dsn", target)
	if !strings.Contains(out, "Copied 1 entries to the sqlite database.") {
		t.Fatalf("unexpected migrate output: %s", out)
	}

	s, err := db.NewStoreFromDSN("sqlite", target)
	if err != nil {
		t.Fatalf("open target: %v", err)
	}
	defer s.Close()
	entries, err := s.ListHistory(t.Context(), model.HistoryFilter{})
	if err != nil || len(entries) != 1 {
		t.Fatalf("target history = %v, %v", entries, err)
	}
}

func TestTemplatesCmd(t *testing.T) {
	setupTestDB(t)
	out := executeCommand(t, nil, "templates", "list")
	for _, id := range []string{"strong", "memorable", "pin", "wifi", "database", "api-key", "pronounceable", "license-key"} {
		if !strings.Contains(out, id) {
			t.Fatalf("template %s missing from list:\n%s", id, out)
		}
	}
	out = executeCommand(t, nil, "templates", "show", "pin")
	if !strings.Contains(out, "length: 6") {
		t.Fatalf("unexpected template yaml:\n%s", out)
	}
	if _, err := executeCommandErr(t, nil, "templates", "show", "nope"); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestHistoryDisabledByFlag(t *testing.T) {
	setupTestDB(t)
	res := generateJSON(t, "--history.enabled=false")
	if res.HistoryID != "" {
		t.Fatalf("expected no history id when history is disabled")
	}
}

func TestVersionCmd(t *testing.T) {
	out := executeCommand(t, nil, "version")
	if !strings.Contains(out, "version:") || !strings.Contains(out, "commit:") {
		t.Fatalf("unexpected version output: %s", out)
	}
}

func TestRootWithoutSubcommandStartsTUI(t *testing.T) {
	setupTestDB(t)
	var got *core.Service
	old := runTUI
	runTUI = func(svc *core.Service) error { got = svc; return nil }
	t.Cleanup(func() { runTUI = old })

	executeCommand(t, nil)
	if got == nil || got != service {
		t.Fatalf("expected the TUI to receive the configured service")
	}
}
