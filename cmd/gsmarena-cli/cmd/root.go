package cmd

import (
	"fmt"
	"os"

	"gsmarena-backend/internal/components/telemetry"
	"gsmarena-backend/internal/gsmarena"
	libtelemetry "gsmarena-backend/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// BaseUrl is the upstream site root, the default site is used when empty.
var BaseUrl string

var verbose bool

var scraper gsmarena.Scraper

var rootCmd = &cobra.Command{
	Use:   "gsmarena-cli",
	Short: "gsmarena-cli scrapes phone specifications from the command line.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		libtelemetry.InitSlog(verbose)

		client, err := gsmarena.NewClient(gsmarena.ClientOptions{
			BaseUrl:          BaseUrl,
			CloudflareBypass: true,
		}, telemetry.SlogAPI{})
		if err != nil {
			return err
		}
		scraper = gsmarena.NewScraper(client, client.BaseUrl())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
