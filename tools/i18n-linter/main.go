// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every message ID referenced from Go code exists in
// the primary locale, that secondary locales are complete, and reports
// catalog entries nothing references.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Report is the outcome of one lint run.
type Report struct {
	// Undefined IDs are referenced in code but absent from the primary locale.
	Undefined []string
	// Missing maps a secondary locale file to the primary IDs it lacks.
	Missing map[string][]string
	// Orphaned IDs are in the primary locale but never referenced.
	Orphaned []string
}

// Failed reports whether the run found errors. Orphans only fail in strict mode.
func (r Report) Failed(strict bool) bool {
	if len(r.Undefined) > 0 || len(r.Missing) > 0 {
		return true
	}
	return strict && len(r.Orphaned) > 0
}

var (
	// A message ID literal is lower-case dotted; "level." style prefixes
	// are joined with a value at runtime.
	idLiteral = regexp.MustCompile(`"([a-z_]+\.(?:[a-z0-9_]+\.)*[a-z0-9_]*)"`)
	skipDirs  = map[string]bool{"tools": true, "_examples": true, ".git": true, "vendor": true}
)

func main() {
	root := pflag.String("root", ".", "project root to scan")
	locales := pflag.String("locales", "internal/i18n/locales", "directory holding the YAML catalogs")
	primary := pflag.String("primary", "en.yaml", "catalog every other locale is compared against")
	strict := pflag.Bool("strict", false, "fail on orphaned catalog entries")
	pflag.Parse()

	rep, err := Lint(*root, filepath.Join(*root, *locales), *primary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(2)
	}
	rep.Print(os.Stdout)
	if rep.Failed(*strict) {
		os.Exit(1)
	}
}

// Lint scans root for message IDs and compares them with the catalogs.
func Lint(root, localesDir, primary string) (Report, error) {
	ids, prefixes, err := findUsedIDs(root)
	if err != nil {
		return Report{}, fmt.Errorf("scanning sources: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primary))
	if err != nil {
		return Report{}, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}

	rep := Report{Missing: map[string][]string{}}
	for id := range ids {
		// Only IDs in a namespace the catalog knows count; other dotted
		// literals are file names, flags and config keys.
		if _, ok := primaryKeys[id]; !ok && hasNamespace(primaryKeys, id) {
			rep.Undefined = append(rep.Undefined, id)
		}
	}
	for key := range primaryKeys {
		if !referenced(key, ids, prefixes) {
			rep.Orphaned = append(rep.Orphaned, key)
		}
	}

	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, f := range files {
		if filepath.Base(f) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(f)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", f, err)
		}
		var missing []string
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			rep.Missing[filepath.Base(f)] = missing
		}
	}

	sort.Strings(rep.Undefined)
	sort.Strings(rep.Orphaned)
	return rep, nil
}

// Print writes a human readable summary.
func (r Report) Print(w io.Writer) {
	section := func(title string, items []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(items) == 0 {
			fmt.Fprintln(w, "  ✨ None found.")
		}
		for _, it := range items {
			fmt.Fprintf(w, "  - %s\n", it)
		}
		fmt.Fprintln(w)
	}
	section("Undefined IDs (used in code, not in primary locale)", r.Undefined)
	section("Orphaned IDs (in primary locale, never used)", r.Orphaned)

	names := make([]string, 0, len(r.Missing))
	for n := range r.Missing {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		section("Missing in "+n, r.Missing[n])
	}
}

// findUsedIDs collects dotted string literals from non-test Go files.
// Literals ending in a dot are returned separately as prefixes.
func findUsedIDs(root string) (ids, prefixes map[string]struct{}, err error) {
	ids = map[string]struct{}{}
	prefixes = map[string]struct{}{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range idLiteral.FindAllStringSubmatch(string(content), -1) {
			if strings.HasSuffix(m[1], ".") {
				prefixes[m[1]] = struct{}{}
			} else {
				ids[m[1]] = struct{}{}
			}
		}
		return nil
	})
	return ids, prefixes, err
}

func referenced(key string, ids, prefixes map[string]struct{}) bool {
	if _, ok := ids[key]; ok {
		return true
	}
	for p := range prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func hasNamespace(keys map[string]struct{}, id string) bool {
	ns, _, _ := strings.Cut(id, ".")
	for k := range keys {
		if strings.HasPrefix(k, ns+".") {
			return true
		}
	}
	return false
}

// loadKeysFromLocale reads a YAML catalog and returns its flattened keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys. go-i18n treats a
// map with "one"/"other" leaves as a plural message, which stays one key.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		if _, plural := v["other"]; plural && prefix != "" {
			keys[prefix] = struct{}{}
			return
		}
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
