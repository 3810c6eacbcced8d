package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	gdacs "github.com/couchcryptid/gdacs-go"
)

var (
	dataType   string
	dataSource string
)

var dataCmd = &cobra.Command{
	Use:   "data <event-id>",
	Short: "Fetch the feature collection for one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parse event id: %w", err)
		}

		fc, err := newClient().EventData(cmd.Context(), id, gdacs.EventType(dataType), dataSource)
		if err != nil {
			return err
		}
		return printCollection(fc)
	},
}

var (
	eventType    string
	eventEpisode string
	eventFormat  string
	eventCAP     bool
)

var eventCmd = &cobra.Command{
	Use:   "event <event-id>",
	Short: "Fetch one event's source document (XML/CAP, GeoJSON, or shapefile)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := newClient().GetEvent(cmd.Context(), gdacs.EventRequest{
			EventType:    gdacs.EventType(eventType),
			EventID:      args[0],
			EpisodeID:    eventEpisode,
			SourceFormat: gdacs.DataFormat(eventFormat),
			CAPFile:      eventCAP,
		})
		if err != nil {
			return err
		}
		return printRecord(rec)
	},
}

func printRecord(rec *gdacs.EventRecord) error {
	switch rec.Format {
	case gdacs.FormatShapefile:
		fmt.Println(rec.Confirmation)
		return nil

	case gdacs.FormatGeoJSON:
		return printJSON(rec.Collection)

	default:
		if jsonOutput {
			if rec.Alert != nil {
				return printJSON(rec.Alert)
			}
			return printJSON(rec.Feed)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		if rec.Alert != nil {
			fmt.Fprintf(w, "IDENTIFIER\t%s\n", rec.Alert.Identifier)
			fmt.Fprintf(w, "SENT\t%s\n", rec.Alert.Sent)
			for _, info := range rec.Alert.Info {
				fmt.Fprintf(w, "HEADLINE\t%s\n", info.Headline)
				fmt.Fprintf(w, "SEVERITY\t%s\n", info.Severity)
			}
		} else {
			fmt.Fprintf(w, "TITLE\t%s\n", rec.Feed.Channel.Title)
			for _, item := range rec.Feed.Channel.Items {
				fmt.Fprintf(w, "ITEM\t%s\t%s\n", item.PubDate, item.Title)
			}
		}
		return w.Flush()
	}
}

func init() {
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(eventCmd)

	dataCmd.Flags().StringVar(&dataType, "type", "", "Hazard code (required: TC,EQ,FL,VO,DR,WF)")
	dataCmd.Flags().StringVar(&dataSource, "source", "", "Upstream data provider")
	_ = dataCmd.MarkFlagRequired("type")

	eventCmd.Flags().StringVar(&eventType, "type", "", "Hazard code (TC,EQ,FL,VO,DR,WF)")
	eventCmd.Flags().StringVar(&eventEpisode, "episode", "", "Episode ID")
	eventCmd.Flags().StringVar(&eventFormat, "format", "", "Source format: xml, geojson, or shp (default xml)")
	eventCmd.Flags().BoolVar(&eventCAP, "cap", false, "Fetch the CAP alert variant of the XML format")
}
