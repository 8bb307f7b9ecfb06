// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/core/security"
	"github.com/toeirei/passforge/internal/db"
	"github.com/toeirei/passforge/internal/i18n"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage generated passwords",
	}
	cmd.AddCommand(
		newHistoryListCmd(),
		newHistoryShowCmd(),
		&cobra.Command{
			Use:   "favorite <id>",
			Short: "Toggle the favorite flag of an entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fav, err := service.ToggleFavorite(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				id := "cli.history.favorite_off"
				if fav {
					id = "cli.history.favorite_on"
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf(id, map[string]any{"ID": args[0]}))
				return nil
			},
		},
		&cobra.Command{
			Use:   "copy <id>",
			Short: "Copy an entry's password to the clipboard",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := service.Entry(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := clipboardWrite(e.Password); err != nil {
					return fmt.Errorf("%s", i18n.Tf("cli.generate.copy_failed", map[string]any{"Error": err}))
				}
				if _, err := service.RecordCopy(cmd.Context(), e.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cli.history.copied", map[string]any{"ID": e.ID}))
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete an entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := service.DeleteEntry(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cli.history.deleted", map[string]any{"ID": args[0]}))
				return nil
			},
		},
		newHistoryClearCmd(),
		newHistoryExportCmd(),
		newHistoryImportCmd(),
		newHistoryStatsCmd(),
		newHistoryMigrateCmd(),
	)
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var (
		f      model.HistoryFilter
		mode   string
		reveal bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List history entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Mode = model.Mode(mode)
			entries, err := service.History(cmd.Context(), f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				if !reveal {
					for i := range entries {
						entries[i].Password = security.Redact(entries[i].Password)
					}
				}
				return writeJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, i18n.T("cli.history.empty"))
				return nil
			}
			fmt.Fprintln(out, historyTable(entries, reveal))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.BoolVar(&f.FavoritesOnly, "favorites", false, "Only show favorites")
	fl.StringVar(&mode, "mode", "", "Only show entries of this mode")
	fl.IntVar(&f.MinScore, "min-score", 0, "Only show entries scoring at least this much")
	fl.IntVar(&f.Limit, "limit", 0, "Maximum number of entries (0 = all)")
	fl.BoolVar(&reveal, "reveal", false, "Show passwords in clear text")
	fl.BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry and its strength report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := service.Entry(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, historyTable([]model.HistoryEntry{e}, reveal))
			renderReport(out, service.Analyze(e.Password))
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show the password in clear text")
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	var keepFavorites bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := service.ClearHistory(cmd.Context(), keepFavorites)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cli.history.cleared", map[string]any{"Count": n}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepFavorites, "keep-favorites", false, "Keep entries marked as favorite")
	return cmd
}

func newHistoryExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write a compressed backup of history and settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			n, err := service.ExportHistory(cmd.Context(), f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cli.history.exported", map[string]any{"Count": n, "Path": path}))
			return nil
		},
	}
}

func newHistoryImportCmd() *cobra.Command {
	var withSettings bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a backup written by 'history export'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer func() { _ = f.Close() }()
			sum, err := service.ImportHistory(cmd.Context(), f, withSettings)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, i18n.Tf("cli.history.imported", map[string]any{"Count": sum.Imported, "Skipped": sum.Skipped}))
			if sum.Settings {
				fmt.Fprintln(out, i18n.T("cli.history.settings_imported"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withSettings, "with-settings", false, "Also restore the saved generation settings")
	return cmd
}

func newHistoryStatsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := service.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), st)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cli.history.stats", map[string]any{
				"Total":     st.Total,
				"Favorites": st.Favorites,
				"Average":   strconv.FormatFloat(st.AverageScore, 'f', 1, 64),
				"Reused":    st.Reused,
				"Copies":    st.TotalCopies,
				"Weak":      st.Weak,
			}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print statistics as JSON")
	return cmd
}

func newHistoryMigrateCmd() *cobra.Command {
	var targetType, targetDsn string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy history and settings into another database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := service.Migrate(cmd.Context(), db.Factory{}, targetType, targetDsn)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("cli.history.migrated", map[string]any{"Count": sum.Imported, "Type": targetType}))
			return nil
		},
	}
	cmd.Flags().StringVar(&targetType, "to-type", "", "Target database type ("+strings.Join(db.SupportedTypes, ", ")+")")
	cmd.Flags().StringVar(&targetDsn, "to-dsn", "", "Target database DSN")
	_ = cmd.MarkFlagRequired("to-type")
	_ = cmd.MarkFlagRequired("to-dsn")
	return cmd
}
