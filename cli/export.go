package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"penguin/nsmbw"
)

const (
	formatYAML = "yaml"
	formatCBOR = "cbor"
)

// Enums travel as their names in CBOR too, and map keys are sorted so the
// same save always exports to the same bytes.
var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	encOpts := cbor.CoreDetEncOptions()
	encOpts.TextMarshaler = cbor.TextMarshalerTextString
	var err error
	cborEnc, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: invalid encoder options: %v", err))
	}
	cborDec, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: invalid decoder options: %v", err))
	}
}

func checkFormat(format string) error {
	switch format {
	case formatYAML, formatCBOR:
		return nil
	}
	return fmt.Errorf("unknown format %q, want %q or %q", format, formatYAML, formatCBOR)
}

func exportSave(format string, s *nsmbw.SaveFile) ([]byte, error) {
	switch format {
	case formatCBOR:
		return cborEnc.Marshal(s)
	default:
		return yaml.Marshal(s)
	}
}

// importSave fills in a blank save, so fields missing from data keep the
// blank file's values.
func importSave(format string, data []byte) (*nsmbw.SaveFile, error) {
	s := nsmbw.Blank()
	var err error
	switch format {
	case formatCBOR:
		err = cborDec.Unmarshal(data, s)
	default:
		err = yaml.Unmarshal(data, s)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s export: %w", format, err)
	}
	return s, nil
}

// formatFor picks the format from the file extension unless one was given.
func formatFor(flag, path string) string {
	if flag != "" {
		return flag
	}
	if strings.HasSuffix(strings.ToLower(path), ".cbor") {
		return formatCBOR
	}
	return formatYAML
}

func (a *app) dumpCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Export a save file as YAML or CBOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = formatFor(format, output)
			if err := checkFormat(format); err != nil {
				return err
			}
			s, err := nsmbw.ReadFile(args[0])
			if err != nil {
				return err
			}
			data, err := exportSave(format, s)
			if err != nil {
				return fmt.Errorf("encoding %s export: %w", format, err)
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			a.logger.Info("exported save", "from", args[0], "to", output, "format", format)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Export format, yaml or cbor (default from -o extension, else yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func (a *app) buildCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "build EXPORT",
		Short: "Build a save file from a YAML or CBOR export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = formatFor(format, args[0])
			if err := checkFormat(format); err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := importSave(format, data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := nsmbw.WriteFile(output, s); err != nil {
				return err
			}
			a.logger.Info("built save", "from", args[0], "to", output, "format", format)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Export format, yaml or cbor (default from extension, else yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save file to write")
	cmd.MarkFlagRequired("output")
	return cmd
}
