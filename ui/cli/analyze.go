// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/passforge/core/security"
	"github.com/toeirei/passforge/internal/i18n"
	"golang.org/x/term"
)

// readSecret prompts on stderr and reads a line without echo when stdin is
// a terminal, or a plain line otherwise.
func readSecret(cmd *cobra.Command) (security.Secret, error) {
	fmt.Fprint(cmd.ErrOrStderr(), i18n.T("cli.analyze.prompt"))
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		return security.Secret(b), nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return security.Secret(strings.TrimRight(line, "\r\n")), nil
}

func newAnalyzeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Score the strength of a password",
		Long: `Scores a password on a 0-100 scale and explains its weaknesses.
Without an argument the password is read from stdin, hidden when interactive.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var secret security.Secret
			if len(args) == 1 {
				secret = security.Secret(args[0])
			} else {
				s, err := readSecret(cmd)
				if err != nil {
					return err
				}
				secret = s
			}
			defer secret.Zero()

			report := service.Analyze(secret.Reveal())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}
