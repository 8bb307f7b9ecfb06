// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passforge.
//
// Usage:
//
//	go run . [command] [flags]
//	./passforge generate --template strong
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/passforge/internal/logging"
	"github.com/toeirei/passforge/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("passforge: %v", err)
		os.Exit(1)
	}
}
