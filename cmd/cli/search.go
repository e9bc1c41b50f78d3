package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"itinerary-service/internal/interface/api"
	gormRepo "itinerary-service/internal/interface/repository"
	"itinerary-service/internal/usecase"
	"itinerary-service/pkg/utils"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search ORIGIN DESTINATION",
	Short: "Find direct and one-stop itineraries",
	Long:  "Searches the given date and, when nothing runs that day, the following days up to the lookahead window.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		asJSON, _ := cmd.Flags().GetBool("json")
		if dateFlag == "" {
			dateFlag = utils.FormatISODate(time.Now())
		}

		query, err := usecase.ParseSearchRequest(args[0], args[1], dateFlag)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		s, err := openSession(ctx, cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rules, err := s.cfg.SearchRules()
		if err != nil {
			return err
		}
		if days, _ := cmd.Flags().GetInt("lookahead"); days > 0 {
			rules.LookaheadDays = days
			if err := rules.Validate(); err != nil {
				return fmt.Errorf("invalid --lookahead: %w", err)
			}
		}

		search := usecase.NewItinerarySearch(
			gormRepo.NewGormLocationRepository(s.db),
			gormRepo.NewGormScheduleRepository(s.db, s.logger),
			nil,
			rules.SearchOptions(),
			s.logger,
			nil,
		)

		result, err := search.Search(ctx, query)
		if err != nil {
			return err
		}

		resp := api.FormatSearchResult(*result)
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}
		printSearchResponse(cmd.OutOrStdout(), query.Origin, query.Destination, resp)
		return nil
	},
}

func printSearchResponse(out io.Writer, origin, destination string, resp api.SearchResponse) {
	if len(resp.Results) == 0 {
		fmt.Fprintf(out, "No itineraries from %s to %s between %s and the end of the lookahead window.\n", origin, destination, resp.SearchDate)
		return
	}
	if resp.DateWasChanged {
		fmt.Fprintf(out, "Nothing runs on %s; showing %s instead.\n\n", resp.SearchDate, resp.FoundDate)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tCARRIER\tFROM\tTO\tDEPART\tARRIVE\tDURATION\tNOTE")
	for _, it := range resp.Results {
		if it.LegView != nil {
			printLeg(w, it.Kind, *it.LegView, durationText(it.Duration), "")
			continue
		}
		for i, leg := range it.Legs {
			kind, total, note := "", "", ""
			if i == 0 {
				kind, total, note = it.Kind, durationText(it.TotalDuration), it.LayoverText
			}
			printLeg(w, kind, leg, total, note)
		}
	}
	w.Flush()
}

func printLeg(w io.Writer, kind string, leg api.LegView, duration, note string) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		kind, leg.CarrierCode, leg.Origin, leg.Destination,
		optional(leg.DepartureTime), optional(leg.ArrivalTime), duration, note)
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func durationText(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return utils.FormatHoursMinutes(time.Duration(*minutes) * time.Minute)
}

func init() {
	searchCmd.Flags().StringP("date", "d", "", "Travel date, YYYY-MM-DD (default today)")
	searchCmd.Flags().Int("lookahead", 0, "Days to search forward (default from config)")
	searchCmd.Flags().Bool("json", false, "Print the API response body")
	rootCmd.AddCommand(searchCmd)
}
