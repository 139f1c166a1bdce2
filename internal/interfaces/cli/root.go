package cli

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/expocolorspace/colorspace-cli/internal/core/patch"
	"github.com/expocolorspace/colorspace-cli/internal/infrastructure/configfile"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Locator  *configfile.Locator
	Store    *configfile.Store
	Detector *patch.Detector
	Logger   *log.Logger
}

// NewRootCommand represents the base command when called without any subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "colorspace",
		Short: "Register expo-color-space-plugin in an Expo project",
		Long: `colorspace edits an Expo project's configuration file (app.json,
app.config.js or app.config.ts) to register the expo-color-space-plugin entry
with the chosen color space.

The native rendering change itself happens when you next regenerate the native
project; this tool only records the choice in the configuration.`,
		Version: Version,
		// Any argument that is not a known subcommand shows the help text and
		// exits 0.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Set custom version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	// Add subcommands
	rootCmd.AddCommand(NewApplyCommand(container))
	rootCmd.AddCommand(NewCheckCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
