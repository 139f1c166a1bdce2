package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
	"github.com/expocolorspace/colorspace-cli/internal/core/patch"
)

// ApplyFlags holds the command-line flags for the apply command
type ApplyFlags struct {
	ColorSpace string
	Dir        string
	NoInput    bool
}

// NewApplyCommand creates the apply command
func NewApplyCommand(container *CLIContainer) *cobra.Command {
	flags := &ApplyFlags{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Add expo-color-space-plugin to the project's config file",
		Long: `Add the expo-color-space-plugin entry to the project's configuration file.

The first of app.json, app.config.js and app.config.ts found in the project
directory is patched. app.json is rewritten as structured JSON; the code
formats are patched textually without being parsed as code. When the entry is
already present nothing is changed.

If no --colorSpace flag is given and the session is interactive, you are asked
once which color space to use (default displayP3).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(container, flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.ColorSpace, "colorSpace", "", `Color space to configure: "displayP3" or "SRGB"`)
	cmd.Flags().StringVar(&flags.Dir, "dir", ".", "Project directory containing the config file")
	cmd.Flags().BoolVar(&flags.NoInput, "no-input", false, "Never prompt; use the default when --colorSpace is not given")

	return cmd
}

// runApply drives the full flow: locate the config file, detect an existing
// entry, resolve the color-space choice, patch, report.
func runApply(container *CLIContainer, flags *ApplyFlags, out io.Writer) error {
	// The flag is validated before any file is touched.
	chosen := false
	choice := domain.DefaultColorSpace
	if flags.ColorSpace != "" {
		cs, err := domain.NewColorSpace(flags.ColorSpace)
		if err != nil {
			return err
		}
		choice = cs
		chosen = true
	}

	selection, err := container.Locator.Locate(flags.Dir)
	if err != nil {
		return err
	}
	if len(selection.Ignored) > 0 {
		container.Logger.Printf("multiple config files found; using %s, ignoring %s",
			filepath.Base(selection.Path), strings.Join(selection.Ignored, ", "))
	}

	file, err := container.Store.Read(selection)
	if err != nil {
		return err
	}

	present, err := container.Detector.Present(file)
	if err != nil {
		return err
	}
	if present {
		fmt.Fprintf(out, "%s\n", successStyle.Render(fmt.Sprintf(
			"✅ %s is already configured in %s, nothing to do",
			domain.PluginIdentifier, filepath.Base(file.Path))))
		return nil
	}

	if !chosen && !flags.NoInput && isatty.IsTerminal(os.Stdin.Fd()) {
		cs, err := promptColorSpace()
		if err != nil {
			return err
		}
		choice = cs
	}

	entry := domain.NewPluginEntry(choice)
	result, err := patch.ForFormat(file.Format).Apply(file.Content, entry)
	if err != nil {
		return err
	}

	if result.Status == patch.ChangeNoAnchor {
		printManualInstructions(out, file, entry)
		return nil
	}

	if err := container.Store.Write(file, result.Content); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", successStyle.Render(fmt.Sprintf(
		"✅ Added %s (%s) to %s",
		domain.PluginIdentifier, choice, filepath.Base(file.Path))))
	fmt.Fprintf(out, "%s\n", dimStyle.Render(
		"Regenerate the native project to pick up the change."))

	return nil
}

// printManualInstructions reports the soft-failure case: no insertion anchor
// matched, the file was not modified, and the user has to add the entry by
// hand. This is a success for exit-code purposes.
func printManualInstructions(out io.Writer, file domain.ConfigFile, entry domain.PluginEntry) {
	fmt.Fprintf(out, "%s\n", warnStyle.Render(fmt.Sprintf(
		"⚠️  Could not find a place to insert the entry in %s", filepath.Base(file.Path))))
	fmt.Fprintf(out, "%s\n", dimStyle.Render(
		"Add the following element to the expo.plugins array yourself:"))
	fmt.Fprintf(out, "\n  %s\n", fragmentStyle.Render(entry.TextFragment()))
}
