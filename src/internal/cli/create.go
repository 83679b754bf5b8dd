package cli

import (
	"github.com/spf13/cobra"

	"github.com/horizon-nth/vault/internal/vault"
)

var (
	createName        string
	createFrom        string
	createDestination string
)

func init() {
	createCmd.SilenceErrors = true
	createCmd.SilenceUsage = true
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Name of the vault")
	createCmd.Flags().StringVarP(&createFrom, "from", "f", "", "Existing directory to adopt as the vault's content")
	createCmd.Flags().StringVarP(&createDestination, "destination", "d", "", "Destination directory")
	_ = createCmd.MarkFlagRequired("name")
}

// createCmd supplements spec.md's CLI surface (SPEC_FULL.md §11): it
// makes a fresh empty opened vault directory, or adopts an existing
// --from directory as the vault's content.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new opened vault",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if createName == "" && len(args) == 1 {
			createName = args[0]
		}
		v, err := vault.Create(vault.CreateOptions{
			Name:        createName,
			From:        createFrom,
			Destination: createDestination,
		})
		if err != nil {
			return err
		}
		printSuccess("Created %s", v.Path())
		return nil
	},
}
