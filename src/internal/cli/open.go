package cli

import (
	"github.com/spf13/cobra"

	"github.com/horizon-nth/vault/internal/vault"
)

var (
	openVaultPath   string
	openDestination string
)

func init() {
	openCmd.SilenceErrors = true
	openCmd.SilenceUsage = true
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().StringVarP(&openVaultPath, "vault", "v", "", "Path to the vault file")
	openCmd.Flags().StringVarP(&openDestination, "destination", "d", "", "Destination directory")
	_ = openCmd.MarkFlagRequired("vault")
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a closed vault into a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if openVaultPath == "" && len(args) == 1 {
			openVaultPath = args[0]
		}
		v, err := vault.FromPath(openVaultPath)
		if err != nil {
			return err
		}
		if err := v.Open(vault.OpenOptions{Destination: openDestination}, TerminalPrompter{}); err != nil {
			return err
		}
		printSuccess("Opened %s", v.Path())
		return nil
	},
}
