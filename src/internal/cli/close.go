package cli

import (
	"github.com/spf13/cobra"

	"github.com/horizon-nth/vault/internal/vault"
)

var (
	closeVaultPath        string
	closeDestination      string
	closeExtension        string
	closeExtensionChanged bool
	closeEncrypt          bool
	closeCompress         bool
	closePreserveMetadata bool
)

func init() {
	closeCmd.SilenceErrors = true
	closeCmd.SilenceUsage = true
	rootCmd.AddCommand(closeCmd)

	closeCmd.Flags().StringVarP(&closeVaultPath, "vault", "v", "", "Path to the opened vault directory")
	closeCmd.Flags().StringVarP(&closeDestination, "destination", "d", "", "Destination directory")
	closeCmd.Flags().StringVarP(&closeExtension, "extension", "e", "", `Archive file extension (default ".vlt"); an explicit "" produces a bare name`)
	closeCmd.Flags().BoolVarP(&closeEncrypt, "encrypt", "E", false, "Encrypt the archive")
	closeCmd.Flags().BoolVarP(&closeCompress, "compress", "C", false, "Compress the archive")
	closeCmd.Flags().BoolVar(&closePreserveMetadata, "preserve-metadata", false, "Record each entry's mtime/mode in the archive")
	_ = closeCmd.MarkFlagRequired("vault")
}

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close an opened vault directory into a single archive file",
	Args:  cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		closeExtensionChanged = cmd.Flags().Changed("extension")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if closeVaultPath == "" && len(args) == 1 {
			closeVaultPath = args[0]
		}
		v, err := vault.FromPath(closeVaultPath)
		if err != nil {
			return err
		}

		opts := vault.CloseOptions{
			Destination:      closeDestination,
			Compress:         closeCompress,
			Encrypt:          closeEncrypt,
			PreserveMetadata: closePreserveMetadata,
		}
		if closeExtensionChanged {
			opts.Extension = &closeExtension
		}

		if err := v.Close(opts, TerminalPrompter{}); err != nil {
			return err
		}
		printSuccess("Closed %s", v.Path())
		return nil
	},
}
