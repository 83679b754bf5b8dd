package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set by main.go.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "Close a directory into a single archive file, or open it back",
	Long: `vault closes a directory into a single structured archive file, and
opens an archive file back into a directory — optionally compressing
and encrypting the archive in between.

Every transition is atomic: on any failure, the original on-disk
representation (directory or file) is left exactly as it was.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vault version " + Version)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI application, reporting failures as "Error: <message>"
// on stderr and a non-zero exit code (spec.md §6/§7).
func Execute(version string) {
	Version = version
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
