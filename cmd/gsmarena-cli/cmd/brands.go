package cmd

import (
	"sort"

	"gsmarena-backend/internal/gsmarena"
	"gsmarena-backend/lib/textutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// brands scoring below this are not considered a match
const matchThreshold = 0.8

var brandMatch string

func init() {
	brandsCmd.Flags().StringVarP(&brandMatch, "match", "m", "", "Only show brands with a name similar to this one.")
	rootCmd.AddCommand(brandsCmd)
}

type scoredBrand struct {
	brand gsmarena.Brand
	score float64
}

// MatchBrands keeps the brands whose name is similar to `name`, most similar first.
func MatchBrands(brands []gsmarena.Brand, name string) []gsmarena.Brand {
	var scored []scoredBrand
	for _, b := range brands {
		score := textutil.Similarity(b.Name, name)
		if score < matchThreshold {
			continue
		}
		scored = append(scored, scoredBrand{brand: b, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]gsmarena.Brand, len(scored))
	for i, s := range scored {
		out[i] = s.brand
	}
	return out
}

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "Lists every brand in the directory.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		brands, err := scraper.ListBrands(cmd.Context())
		if err != nil {
			return err
		}
		if brandMatch != "" {
			brands = MatchBrands(brands, brandMatch)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Devices", "Url"})
		for _, b := range brands {
			t.AppendRow(table.Row{b.Name, b.DeviceCount, b.Url})
		}
		t.Render()
		return nil
	},
}
