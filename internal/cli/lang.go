package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/locale"
)

// newLangCommand creates the lang command.
func newLangCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [code]",
		Short: "Show or set the project language (en, ja)",
		Long: `Show the configured language, or set it when a code is given.

Setting the language re-derives the localized default title and
description unless they were customized. Messages printed by this
invocation still use the language that was active at startup.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.LanguageUseCase()
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				code, err := uc.Get(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(w, locale.T(c.Locale, "lang.current", code))
				return nil
			}

			if err := uc.Set(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("set language %q: %w", args[0], err)
			}
			_, _ = fmt.Fprintln(w, locale.T(c.Locale, "lang.set", args[0]))
			return nil
		},
	}
}
