// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/passforge/core/model"
	"github.com/toeirei/passforge/internal/i18n"
	"github.com/toeirei/passforge/internal/templates"
)

// addSettingsFlags registers one flag per GenerationSettings field. Only
// flags the user changed are applied, so unset flags keep the remembered or
// template value.
func addSettingsFlags(fs *pflag.FlagSet) {
	d := model.DefaultSettings()
	fs.IntP("length", "l", d.Length, "Password length (standard and pronounceable modes)")
	fs.Bool("upper", d.Upper, "Include uppercase letters")
	fs.Bool("lower", d.Lower, "Include lowercase letters")
	fs.Bool("numbers", d.Numbers, "Include digits")
	fs.Bool("symbols", d.Symbols, "Include symbols")
	fs.Bool("exclude-similar", d.ExcludeSimilar, "Drop look-alike characters (0O1lI)")
	fs.Bool("exclude-ambiguous", d.ExcludeAmbiguous, "Drop brackets, quotes and punctuation that are easy to mistype")
	fs.Bool("require-every", d.RequireEvery, "Guarantee at least one character of every enabled category")
	fs.String("custom-symbols", "", "Replace the default symbol set")
	fs.Float64("min-entropy", 0, "Grow the password until it reaches this many bits of entropy")
	fs.StringSlice("exclude-word", nil, "Reject passwords containing this word (repeatable)")
	fs.Bool("avoid-sequences", d.AvoidSequences, "Reject passwords containing 123, abc, qwe, asd or zxc")
	fs.StringP("mode", "m", string(d.Mode), "Generation mode: standard, passphrase, pattern, pronounceable")
	fs.String("pattern", "", "Pattern for pattern mode (L upper, l lower, 9 digit, S symbol)")
	fs.Int("words", d.PassphraseWords, "Number of words in passphrase mode")
	fs.String("separator", d.Separator(), `Word separator in passphrase mode ("" joins words directly)`)
	fs.Bool("capitalize", false, "Capitalise passphrase words")
	fs.Bool("with-number", false, "Append a digit to one passphrase word")
}

// applySettingsFlags copies changed flags onto s.
func applySettingsFlags(fs *pflag.FlagSet, s *model.GenerationSettings) error {
	var err error
	set := func(name string, fn func() error) {
		if err == nil && fs.Changed(name) {
			err = fn()
		}
	}
	boolFlag := func(name string, dst *bool) {
		set(name, func() (e error) { *dst, e = fs.GetBool(name); return })
	}

	set("length", func() (e error) { s.Length, e = fs.GetInt("length"); return })
	boolFlag("upper", &s.Upper)
	boolFlag("lower", &s.Lower)
	boolFlag("numbers", &s.Numbers)
	boolFlag("symbols", &s.Symbols)
	boolFlag("exclude-similar", &s.ExcludeSimilar)
	boolFlag("exclude-ambiguous", &s.ExcludeAmbiguous)
	boolFlag("require-every", &s.RequireEvery)
	set("custom-symbols", func() (e error) { s.CustomSymbols, e = fs.GetString("custom-symbols"); return })
	set("min-entropy", func() (e error) { s.MinimumEntropyBits, e = fs.GetFloat64("min-entropy"); return })
	set("exclude-word", func() (e error) { s.ExcludedWords, e = fs.GetStringSlice("exclude-word"); return })
	boolFlag("avoid-sequences", &s.AvoidSequences)
	set("mode", func() error {
		v, e := fs.GetString("mode")
		s.Mode = model.Mode(strings.ToLower(v))
		return e
	})
	set("pattern", func() (e error) { s.Pattern, e = fs.GetString("pattern"); return })
	set("words", func() (e error) { s.PassphraseWords, e = fs.GetInt("words"); return })
	set("separator", func() error {
		v, e := fs.GetString("separator")
		s.PassphraseSeparator = model.NewSeparator(v)
		return e
	})
	boolFlag("capitalize", &s.PassphraseCapitalize)
	boolFlag("with-number", &s.PassphraseNumber)

	// A pattern on the command line implies pattern mode.
	if err == nil && fs.Changed("pattern") && !fs.Changed("mode") {
		s.Mode = model.ModePattern
	}
	return err
}

func newGenerateCmd() *cobra.Command {
	var (
		templateID string
		count      int
		copyOut    bool
		asJSON     bool
		quiet      bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Long: `Generates passwords from the last used settings, a template (--template)
or explicit flags. Changed flags override the template or remembered value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			// Surface flag errors before anything is generated or recorded.
			if err := applySettingsFlags(cmd.Flags(), &model.GenerationSettings{}); err != nil {
				return err
			}
			override := func(s *model.GenerationSettings) { _ = applySettingsFlags(cmd.Flags(), s) }

			var results []model.GenerationResult
			switch {
			case templateID != "" && count == 1:
				res, err := service.GenerateFromTemplate(ctx, templateID, override)
				if err != nil {
					return err
				}
				results = append(results, res)
			case templateID != "":
				res, err := service.GenerateBatchFromTemplate(ctx, templateID, count, override)
				if err != nil {
					return err
				}
				results = res
			default:
				settings, err := service.LastSettings(ctx)
				if err != nil {
					return err
				}
				override(&settings)
				if count == 1 {
					res, err := service.Generate(ctx, settings)
					if err != nil {
						return err
					}
					results = append(results, res)
				} else {
					results, err = service.GenerateBatch(ctx, settings, count)
					if err != nil {
						return err
					}
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if count == 1 {
					if err := writeJSON(out, results[0]); err != nil {
						return err
					}
				} else if err := writeJSON(out, results); err != nil {
					return err
				}
			} else {
				printResults(out, results, quiet)
			}

			if copyOut {
				copyResults(cmd, results)
			}
			return nil
		},
	}
	f := cmd.Flags()
	addSettingsFlags(f)
	f.StringVarP(&templateID, "template", "t", "", "Start from a named template ("+strings.Join(templates.Default().IDs(), ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("template", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return templates.Default().IDs(), cobra.ShellCompDirectiveNoFileComp
	})
	f.IntVarP(&count, "count", "n", 1, "Number of passwords to generate")
	f.BoolVarP(&copyOut, "copy", "c", false, "Copy the password(s) to the clipboard")
	f.BoolVar(&asJSON, "json", false, "Print results as JSON")
	f.BoolVarP(&quiet, "quiet", "q", false, "Print only the password(s)")
	return cmd
}

func printResults(w io.Writer, results []model.GenerationResult, quiet bool) {
	for i, r := range results {
		if quiet {
			fmt.Fprintln(w, r.Password)
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderPassword(w, r.Password)
		renderReport(w, r.Report)
	}
}

func copyResults(cmd *cobra.Command, results []model.GenerationResult) {
	pws := make([]string, len(results))
	for i, r := range results {
		pws[i] = r.Password
	}
	if err := clipboardWrite(strings.Join(pws, "\n")); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.Tf("cli.generate.copy_failed", map[string]any{"Error": err}))
		return
	}
	for _, r := range results {
		if r.HistoryID != "" {
			if _, err := service.RecordCopy(cmd.Context(), r.HistoryID); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		}
	}
	fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.generate.copied"))
}
