// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/passforge/buildvars"
	"github.com/toeirei/passforge/core"
	"github.com/toeirei/passforge/core/generate"
	"github.com/toeirei/passforge/internal/config"
	"github.com/toeirei/passforge/internal/db"
	"github.com/toeirei/passforge/internal/i18n"
	"github.com/toeirei/passforge/internal/logging"
	"github.com/toeirei/passforge/internal/templates"
	"github.com/toeirei/passforge/ui/tui"
)

var version = "dev"   // set by the linker
var gitCommit = "dev" // short commit SHA, set at build time
var buildDate = ""    // RFC3339, set at build time

var cfgFile string
var verbose bool

var appConfig config.Config

// store is opened lazily by setupDefaultServices. Tests may set it up front.
var store *db.Store

// service is rebuilt for every command from appConfig and store.
var service *core.Service

func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	// A missing file is expected on first run; persist the defaults.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if verbose {
		appConfig.Log.Level = "debug"
	}
	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	i18n.Init(appConfig.Language)

	if store == nil {
		s, err := db.NewStoreFromDSN(appConfig.Database.Type, appConfig.Database.Dsn)
		if err != nil {
			return errors.New(i18n.Tf("cli.error.init_db", map[string]any{"Error": err}))
		}
		store = s
	}

	gen := generate.New(
		generate.WithMaxFilterAttempts(appConfig.Generator.MaxFilterAttempts),
		generate.WithMaxEntropyAttempts(appConfig.Generator.MaxEntropyAttempts),
		generate.WithBatchWorkers(appConfig.Generator.BatchWorkers),
		generate.WithLogger(logging.L),
	)
	service = core.NewService(gen,
		core.WithSettings(store),
		core.WithHistory(store, appConfig.History.Enabled),
		core.WithTemplates(templates.Default()),
	)
	return nil
}

// Execute runs the CLI entrypoint and closes the database afterwards.
func Execute() error {
	defer closeStore()
	return NewRootCmd().Execute()
}

func closeStore() {
	if store != nil {
		if err := store.Close(); err != nil {
			logging.Warnf("closing database: %v", err)
		}
		store = nil
	}
}

func applyDefaultFlags(cmd *cobra.Command) {
	// pflag panics on redefinition, so check first.
	flags := cmd.PersistentFlags()
	if flags.Lookup("database.type") == nil {
		flags.String("database.type", "sqlite", "Database type ("+strings.Join(db.SupportedTypes, ", ")+")")
	}
	if flags.Lookup("database.dsn") == nil {
		flags.String("database.dsn", "./passforge.db", "Database connection string (DSN)")
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// runTUI is replaced in tests.
var runTUI = tui.Run

// NewRootCmd creates a fresh root command. Tests build one per run.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passforge",
		Short: "Passforge generates passwords and rates their strength.",
		Long: `Passforge produces random passwords, passphrases, pattern-based and
pronounceable passwords from declarative settings, scores any password on a
0-100 scale and keeps a local history of what it generated.

Run without a subcommand to open the interactive screen.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(service)
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Output language ("en")`)
	cmd.PersistentFlags().String("log.level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("history.enabled", true, "Record generated passwords in history")
	applyDefaultFlags(cmd)

	versionCmd := &cobra.Command{
		Use:               "version",
		Short:             "Print version",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newGenerateCmd(),
		newAnalyzeCmd(),
		newHistoryCmd(),
		newTemplatesCmd(),
		newSettingsCmd(),
		versionCmd,
	)
	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date. A nil info reads build info from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record the module version as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/passforge" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
