package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"penguin/nsmbw"
	"penguin/settings"
)

var errChecksumMismatch = errors.New("checksum mismatch")

func (a *app) blankCmd() *cobra.Command {
	var output, region string
	cmd := &cobra.Command{
		Use:   "blank",
		Short: "Write a new save file with every slot empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := nsmbw.Blank()
			if err := s.Header.Region.UnmarshalText([]byte(region)); err != nil {
				return err
			}
			if err := nsmbw.WriteFile(output, s); err != nil {
				return err
			}
			a.logger.Info("wrote blank save", "path", output, "region", s.Header.Region)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save file to write")
	cmd.Flags().StringVar(&region, "region", nsmbw.NTSC.String(), "Region name or tag letter")
	cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check the header and slot checksums of a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			reports, err := nsmbw.Verify(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			p := newPrinter(cmd.OutOrStdout(), a.settings.Theme)
			bad := 0
			for _, r := range reports {
				status := fmt.Sprintf("ok        %08x", r.Stored)
				if !r.OK() {
					bad++
					status = fmt.Sprintf("MISMATCH  stored %08x, computed %08x", r.Stored, r.Computed)
				}
				p.field(r.Record, status)
			}
			if bad > 0 {
				return fmt.Errorf("%s: %w in %d of %d records", args[0], errChecksumMismatch, bad, len(reports))
			}
			a.logger.Debug("checksums valid", "path", args[0])
			return nil
		},
	}
}

func (a *app) fixCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "fix FILE",
		Short: "Rewrite a save file with recomputed checksums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := nsmbw.ReadFile(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}
			if err := nsmbw.WriteFile(output, s); err != nil {
				return err
			}
			a.logger.Info("rewrote save", "from", args[0], "to", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write here instead of over FILE")
	return cmd
}

func (a *app) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or change the output theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.settings.Theme)
				return nil
			}
			theme, err := settings.ParseTheme(args[0])
			if err != nil {
				return err
			}
			a.settings.Theme = theme
			if err := a.settings.Save(a.settingsPath); err != nil {
				return err
			}
			a.logger.Info("theme changed", "theme", theme)
			return nil
		},
	}
}
