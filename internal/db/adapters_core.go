// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/toeirei/passforge/core"

// Factory opens stores for core.Service.Migrate.
type Factory struct{}

// NewStoreFromDSN implements core.StoreFactory.
func (Factory) NewStoreFromDSN(dbType, dsn string) (core.Store, error) {
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

var (
	_ core.Store        = (*Store)(nil)
	_ core.StoreFactory = Factory{}
)
