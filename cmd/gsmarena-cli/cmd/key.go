package cmd

import (
	"fmt"

	"gsmarena-backend/internal/gsmarena"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <deviceUrl>...",
	Short: "Prints the device key of every device url given as a positional argument.",
	Args:  cobra.MinimumNArgs(1),
	// parsing needs no upstream client
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, link := range args {
			id, err := gsmarena.ParseIdentifier(link)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
		}
		return nil
	},
}
