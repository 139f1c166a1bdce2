package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
)

// CheckFlags holds the command-line flags for the check command
type CheckFlags struct {
	Dir string
}

// NewCheckCommand creates the check command
func NewCheckCommand(container *CLIContainer) *cobra.Command {
	flags := &CheckFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which config file governs the project and whether the plugin is registered",
		Long: `Report the configuration file that would be patched and whether the
expo-color-space-plugin entry is already present. Nothing is modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(container, flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.Dir, "dir", ".", "Project directory containing the config file")

	return cmd
}

func runCheck(container *CLIContainer, flags *CheckFlags, out io.Writer) error {
	selection, err := container.Locator.Locate(flags.Dir)
	if err != nil {
		return err
	}

	file, err := container.Store.Read(selection)
	if err != nil {
		return err
	}

	present, err := container.Detector.Present(file)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Config file: %s\n", filepath.Base(file.Path))
	if present {
		fmt.Fprintf(out, "%s\n", successStyle.Render(fmt.Sprintf(
			"✅ %s is registered", domain.PluginIdentifier)))
	} else {
		fmt.Fprintf(out, "%s\n", warnStyle.Render(fmt.Sprintf(
			"⚠️  %s is not registered; run \"colorspace apply\"", domain.PluginIdentifier)))
	}

	return nil
}
