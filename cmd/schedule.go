package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icetop/nhlapi/filter"
)

var scheduleTeam string

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule [date]",
	Short: "Show the schedule for a date",
	Long: `Show the games scheduled for a date (YYYY-MM-DD, default today).
With --team, show the team's schedule for the week containing the date.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVarP(&scheduleTeam, "team", "t", "", "team abbreviation (e.g. TOR)")
	scheduleCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	scheduleCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	f, err := compileFilter()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	date, err := parseDateArg(args)
	if err != nil {
		return err
	}

	if scheduleTeam != "" {
		week, err := client.TeamWeekSchedule(ctx, strings.ToUpper(scheduleTeam), date)
		if err != nil {
			return err
		}
		games := week.Games
		if f != nil {
			games, err = filter.Games(f, games)
			if err != nil {
				return err
			}
		}
		if jsonOutput {
			return printJSON(games)
		}
		if len(games) == 0 {
			fmt.Println("No games matched.")
			return nil
		}
		for i := range games {
			fmt.Println(games[i].String())
		}
		return nil
	}

	day, err := client.DailySchedule(ctx, date)
	if err != nil {
		return err
	}

	games := day.Games
	if f != nil {
		games, err = filter.Games(f, games)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		return printJSON(games)
	}

	if len(games) == 0 {
		fmt.Printf("No games on %s.\n", day.Date)
		return nil
	}

	fmt.Printf("%d game(s) on %s:\n", len(games), day.Date)
	for i := range games {
		g := &games[i]
		fmt.Printf("  %s @ %s  %s [%s]\n",
			g.AwayTeam.Abbrev, g.HomeTeam.Abbrev, g.StartTimeUTC, g.GameState)
	}

	return nil
}

// scoresCmd represents the scores command
var scoresCmd = &cobra.Command{
	Use:   "scores [date]",
	Short: "Show scores for a date",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScores,
}

func init() {
	rootCmd.AddCommand(scoresCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	date, err := parseDateArg(args)
	if err != nil {
		return err
	}

	scores, err := client.DailyScores(cmd.Context(), date)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(scores)
	}

	if len(scores.Games) == 0 {
		fmt.Printf("No games on %s.\n", scores.CurrentDate)
		return nil
	}

	for i := range scores.Games {
		fmt.Println(scores.Games[i].String())
	}
	return nil
}
