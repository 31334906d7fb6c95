// Package cli provides the command-line interface for iris.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Kaesebrot84/iris/internal/version"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	// logger is reconfigured from the persistent verbose flag before any
	// command runs.
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "iris",
		Short: "Create color palettes from images",
		Long: `Iris creates a representative color palette from an image using
median cut quantization.

The palette is printed to the terminal and can additionally be written
to an HTML, JSON or CSV palette file.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			configureLogger(cmd.ErrOrStderr(), verbose)
		},
	}
)

// NewRootCmd returns the fully wired root command. It is used by main and by
// tests that drive the CLI in process.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
}

// configureLogger rebuilds the command logger. Verbose runs log at debug
// level; all runs keep warnings visible so iteration clamping is never
// silent.
func configureLogger(output io.Writer, verbose bool) {
	if verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "iris",
			Output: output,
			Level:  hclog.Debug,
		})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "iris",
			Output: output,
			Level:  hclog.Warn,
		})
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
