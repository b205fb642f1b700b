package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"gsmarena-backend/internal/gsmarena"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var detailJson bool

func init() {
	detailCmd.Flags().BoolVar(&detailJson, "json", false, "Print the full record as json.")
	rootCmd.AddCommand(detailCmd)
}

var detailCmd = &cobra.Command{
	Use:   "detail <deviceUrl>",
	Short: "Prints the specifications of the device page given as a positional argument.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := gsmarena.ParseIdentifier(args[0])
		if err != nil {
			return err
		}
		device, ok := scraper.GetDeviceDetail(cmd.Context(), id)
		if !ok {
			return fmt.Errorf("device '%s' not found or upstream unreachable", id)
		}

		if detailJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(device)
		}

		printDevice(device)
		return nil
	},
}

func printDevice(device gsmarena.Device) {
	summary := newTable()
	summary.SetTitle(device.DeviceName)
	summary.AppendRows([]table.Row{
		{"Key", device.Key},
		{"Released", device.ReleaseDate},
		{"Display", strings.TrimSpace(device.DisplaySize + " " + device.DisplayRes)},
		{"Chipset", device.Chipset},
		{"Memory", device.Ram},
		{"Storage", device.Storage},
		{"Camera", device.Camera},
		{"Video", device.Video},
		{"Battery", strings.TrimSpace(device.Battery + " " + device.BatteryType)},
		{"OS", device.OsType},
		{"Pictures", len(device.Pictures)},
	})
	summary.Render()

	specs := newTable()
	specs.AppendHeader(table.Row{"Section", "Name", "Value"})
	for _, section := range device.MoreSpecification {
		for _, row := range section.Rows {
			specs.AppendRow(table.Row{section.Title, row.Title, strings.Join(row.Data, " | ")})
		}
		specs.AppendSeparator()
	}
	specs.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	specs.Render()

	for _, group := range device.Prices {
		prices := newTable()
		prices.SetTitle("Prices: " + group.Label)
		for _, offer := range group.Items {
			prices.AppendRow(table.Row{offer.Price, offer.BuyUrl})
		}
		prices.Render()
	}
}
