package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icetop/nhlapi/filter"
	"github.com/icetop/nhlapi/nhl"
)

var standingsSeason string

// standingsCmd represents the standings command
var standingsCmd = &cobra.Command{
	Use:   "standings [date]",
	Short: "Show league standings",
	Long: `Show the league standings as of a date (YYYY-MM-DD, default today),
or the final standings of a season with --season.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStandings,
}

func init() {
	rootCmd.AddCommand(standingsCmd)

	standingsCmd.Flags().StringVarP(&standingsSeason, "season", "s", "", "season to show final standings for (e.g. 20232024)")
	standingsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	standingsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runStandings(cmd *cobra.Command, args []string) error {
	f, err := compileFilter()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var standings []nhl.Standing
	if standingsSeason != "" {
		if len(args) > 0 {
			return fmt.Errorf("--season cannot be combined with a date argument")
		}
		season, err := nhl.ParseSeason(standingsSeason)
		if err != nil {
			return err
		}
		standings, err = client.StandingsBySeason(ctx, season.ID())
		if err != nil {
			return err
		}
	} else {
		date, err := parseDateArg(args)
		if err != nil {
			return err
		}
		standings, err = client.StandingsByDate(ctx, date)
		if err != nil {
			return err
		}
	}

	if f != nil {
		logger.Debug().Str("filter", f.Expression()).Msg("Filtering standings")
		standings, err = filter.Standings(f, standings)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		return printJSON(standings)
	}

	if len(standings) == 0 {
		fmt.Println("No standings rows matched.")
		return nil
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-6s %-22s %-10s %5s %4s %4s %4s\n",
		"TEAM", "DIVISION", "CONF", "PTS", "W", "L", "OTL")
	fmt.Println(strings.Repeat("-", 60))
	for i := range standings {
		s := &standings[i]
		fmt.Printf("%-6s %-22s %-10s %5d %4d %4d %4d\n",
			s.TeamAbbrev.Default, s.DivisionName, s.Conference().Abbrev,
			s.Points, s.Wins, s.Losses, s.OtLosses)
	}

	return nil
}
