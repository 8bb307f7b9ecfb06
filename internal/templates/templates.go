// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// Package templates provides the embedded catalog of generation presets.
package templates

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/toeirei/passforge/core/generate"
	"github.com/toeirei/passforge/core/model"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var builtin []byte

// Catalog is an immutable id -> template mapping. It implements
// core.TemplateCatalog.
type Catalog struct {
	order []string
	byID  map[string]model.Template
}

// Parse decodes a YAML template list. Unknown fields, duplicate ids and
// settings the generator would reject are errors.
func Parse(data []byte) (*Catalog, error) {
	var list []model.Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	c := &Catalog{byID: make(map[string]model.Template, len(list))}
	for _, t := range list {
		if t.ID == "" {
			return nil, fmt.Errorf("template %q has no id", t.Name)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		t.Settings = t.Settings.Normalized()
		if err := generate.Validate(t.Settings); err != nil {
			return nil, fmt.Errorf("template %q: %w", t.ID, err)
		}
		c.byID[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the embedded file is
// invalid, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(builtin)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// List returns templates in file order.
func (c *Catalog) List() []model.Template {
	out := make([]model.Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Get returns the template with the given id.
func (c *Catalog) Get(id string) (model.Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// IDs returns the template ids sorted alphabetically.
func (c *Catalog) IDs() []string {
	ids := append([]string(nil), c.order...)
	sort.Strings(ids)
	return ids
}
