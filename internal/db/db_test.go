// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewStoreFromDSN_UnsupportedType(t *testing.T) {
	_, err := NewStoreFromDSN("oracle", "whatever")
	if err == nil {
		t.Fatalf("expected error for unsupported db type")
	}
	for _, typ := range SupportedTypes {
		if !strings.Contains(err.Error(), typ) {
			t.Fatalf("error %q does not list %s", err, typ)
		}
		if _, err := driverFor(typ); err != nil {
			t.Fatalf("driverFor(%s): %v", typ, err)
		}
	}
}

func TestNewStoreFromDSN_OpenError(t *testing.T) {
	prev := sqlOpenFunc
	sqlOpenFunc = func(string, string) (*sql.DB, error) { return nil, errors.New("boom") }
	defer func() { sqlOpenFunc = prev }()

	if _, err := NewStoreFromDSN("sqlite", ":memory:"); err == nil {
		t.Fatalf("expected open error to propagate")
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	s := newTestStore(t)
	sqlDB := s.BunDB().DB

	// Migrations already ran once in NewStoreFromDSN.
	if err := RunMigrations(sqlDB, "sqlite"); err != nil {
		t.Fatalf("second RunMigrations failed: %v", err)
	}

	var n int
	if err := QueryRawInto(context.Background(), s.BunDB(), &n, "SELECT COUNT(*) FROM schema_migrations"); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 recorded migration, got %d", n)
	}
	if s.Type() != "sqlite" {
		t.Fatalf("unexpected type %q", s.Type())
	}
}

func TestRunMigrations_UnknownTypeIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := RunMigrations(s.BunDB().DB, "nosuchdb"); err != nil {
		t.Fatalf("expected no error for missing migrations dir, got %v", err)
	}
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("CREATE TABLE a (x INT);\n\n CREATE INDEX i ON a(x);\n")
	want := []string{"CREATE TABLE a (x INT)", "CREATE INDEX i ON a(x)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitStatements = %q, want %q", got, want)
	}
	if len(splitStatements("  ;  ")) != 0 {
		t.Fatalf("blank statements must be dropped")
	}
}
