package main

import (
	"github.com/spf13/cobra"
)

var areaDays int

var areaCmd = &cobra.Command{
	Use:   "area <wkt-geometry>",
	Short: "List events intersecting a WKT geometry",
	Long: `Fetch events for a geographic area given as a WKT geometry string,
e.g. 'POINT(12.49 41.90)' or 'POLYGON((130 30, 145 30, 145 45, 130 45, 130 30))'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := newClient().EventsByArea(cmd.Context(), args[0], areaDays)
		if err != nil {
			return err
		}
		return printCollection(fc)
	},
}

func init() {
	rootCmd.AddCommand(areaCmd)

	areaCmd.Flags().IntVar(&areaDays, "days", 0, "Look-back window in days (0 = API default)")
}
