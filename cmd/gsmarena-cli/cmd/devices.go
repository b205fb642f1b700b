package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices <brandUrl>",
	Short: "Lists the devices of the brand page given as a positional argument.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := scraper.ListDevicesByBrand(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Url", "Image"})
		for _, d := range devices {
			t.AppendRow(table.Row{d.Name, d.Url, d.Image})
		}
		t.Render()
		return nil
	},
}
