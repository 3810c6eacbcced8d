package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	gdacs "github.com/couchcryptid/gdacs-go"
)

var (
	latestTypes    string
	latestAlert    string
	latestCountry  string
	latestSeverity int
	latestModified string
	latestPageSize int
	latestPage     int
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "List the latest hazard events",
	Long:  `Fetch one page of the latest events, optionally filtered by type, alert level, country, severity, or modification date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := gdacs.EventFilter{
			AlertLevel: gdacs.AlertLevel(latestAlert),
			Country:    latestCountry,
			Severity:   latestSeverity,
			PageSize:   latestPageSize,
			PageNumber: latestPage,
		}
		for _, t := range strings.Split(latestTypes, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.EventTypes = append(filter.EventTypes, gdacs.EventType(t))
			}
		}
		if latestModified != "" {
			ts, err := time.Parse(time.RFC3339, latestModified)
			if err != nil {
				return fmt.Errorf("parse --modified-since: %w", err)
			}
			filter.DateModified = ts
		}

		fc, err := newClient().LatestEvents(cmd.Context(), filter)
		if err != nil {
			return err
		}
		return printCollection(fc)
	},
}

var (
	feedType  string
	feedLimit int
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "List current events from the EVENTS4APP feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := newClient().LatestEvents4App(cmd.Context(), gdacs.EventType(feedType), feedLimit)
		if err != nil {
			return err
		}
		return printCollection(fc)
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(feedCmd)

	latestCmd.Flags().StringVar(&latestTypes, "types", "", "Comma separated hazard codes (TC,EQ,FL,VO,DR,WF)")
	latestCmd.Flags().StringVar(&latestAlert, "alert", "", "Alert level (green, orange, red)")
	latestCmd.Flags().StringVar(&latestCountry, "country", "", "Country name")
	latestCmd.Flags().IntVar(&latestSeverity, "severity", 0, "Minimum numeric severity")
	latestCmd.Flags().StringVar(&latestModified, "modified-since", "", "RFC 3339 modification-date lower bound")
	latestCmd.Flags().IntVar(&latestPageSize, "page-size", 0, "Records per page (default 100)")
	latestCmd.Flags().IntVar(&latestPage, "page", 0, "Page number (default 1)")

	feedCmd.Flags().StringVar(&feedType, "type", "", "Hazard code to keep (TC,EQ,FL,VO,DR,WF)")
	feedCmd.Flags().IntVar(&feedLimit, "limit", 0, "Maximum events to return (0 = all)")
}
