// Package cli is the penguin command line, built on the nsmbw codec.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"penguin/settings"
)

type app struct {
	settingsPath string
	verbose      bool

	settings settings.Settings
	logger   *slog.Logger
}

// NewRootCommand builds the penguin command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "penguin",
		Short: "Penguin - New Super Mario Bros. Wii save editor",
		Long: `Penguin reads and writes New Super Mario Bros. Wii save files.

Saves can be shown, exported to YAML or CBOR, edited and built back
into a save file with valid checksums.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
			s, err := settings.Load(a.settingsPath)
			if err != nil {
				return err
			}
			a.settings = s
			a.logger.Debug("settings loaded", "path", a.settingsPath, "theme", s.Theme)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.settingsPath, "settings", settings.DefaultPath, "Preferences file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug messages")

	root.AddCommand(
		a.showCmd(),
		a.dumpCmd(),
		a.buildCmd(),
		a.blankCmd(),
		a.verifyCmd(),
		a.fixCmd(),
		a.themeCmd(),
	)
	return root
}

// Execute runs the command tree and exits non-zero on error. It is called
// by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		newLogger(os.Stderr, false).Error("penguin failed", "error", err)
		os.Exit(1)
	}
}
