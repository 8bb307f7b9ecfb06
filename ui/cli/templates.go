// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/passforge/internal/i18n"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in generation templates",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List templates",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				list := service.Templates()
				if len(list) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.templates.empty"))
					return nil
				}
				t := table.New().
					Border(lipgloss.NormalBorder()).
					BorderStyle(mutedStyle).
					Headers("ID", "NAME", "MODE", "DESCRIPTION").
					StyleFunc(func(row, _ int) lipgloss.Style {
						if row == table.HeaderRow {
							return headerStyle
						}
						return cellStyle
					})
				for _, tmpl := range list {
					t.Row(tmpl.ID, tmpl.Name, string(tmpl.Settings.Mode), tmpl.Description)
				}
				fmt.Fprintln(cmd.OutOrStdout(), t.Render())
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print a template's settings as YAML",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tmpl, err := service.Template(args[0])
				if err != nil {
					return err
				}
				data, err := yaml.Marshal(tmpl)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
	)
	return cmd
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or reset the remembered generation settings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the settings 'generate' starts from",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := service.LastSettings(cmd.Context())
				if err != nil {
					return err
				}
				data, err := yaml.Marshal(s)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Forget the remembered settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := service.ResetSettings(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.settings.reset"))
				return nil
			},
		},
	)
	return cmd
}
