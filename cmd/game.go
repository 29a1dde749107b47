package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icetop/nhlapi/nhl"
)

// gameCmd groups the per-game views
var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Show boxscore, summary or play-by-play for a game",
}

var boxscoreCmd = &cobra.Command{
	Use:   "boxscore <game-id>",
	Short: "Show the boxscore for a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoxscore,
}

var summaryCmd = &cobra.Command{
	Use:   "summary <game-id>",
	Short: "Show the scoring summary for a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

var playsCmd = &cobra.Command{
	Use:   "plays <game-id>",
	Short: "Show the play-by-play stream for a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlays,
}

var boxscoresCmd = &cobra.Command{
	Use:   "boxscores [date]",
	Short: "Show boxscore lines for every game on a date",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBoxscores,
}

func init() {
	rootCmd.AddCommand(gameCmd)
	gameCmd.AddCommand(boxscoreCmd)
	gameCmd.AddCommand(summaryCmd)
	gameCmd.AddCommand(playsCmd)
	gameCmd.AddCommand(boxscoresCmd)
}

func runBoxscore(cmd *cobra.Command, args []string) error {
	id, err := nhl.ParseGameID(args[0])
	if err != nil {
		return err
	}

	box, err := client.Boxscore(cmd.Context(), id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(box)
	}

	printBoxscoreLine(box)

	home := nhl.AggregateTeamStats(box.PlayerByGameStats.HomeTeam)
	away := nhl.AggregateTeamStats(box.PlayerByGameStats.AwayTeam)

	fmt.Println(strings.Repeat("-", 48))
	fmt.Printf("%-24s %10s %10s\n", "", box.AwayTeam.Abbrev, box.HomeTeam.Abbrev)
	fmt.Printf("%-24s %10d %10d\n", "Shots on goal", away.ShotsOnGoal, home.ShotsOnGoal)
	fmt.Printf("%-24s %10d %10d\n", "Penalty minutes", away.PenaltyMinutes, home.PenaltyMinutes)
	fmt.Printf("%-24s %9.1f%% %9.1f%%\n", "Faceoff win pct",
		away.FaceoffPercentage(), home.FaceoffPercentage())
	fmt.Printf("%-24s %10s %10s\n", "Power play",
		fmt.Sprintf("%d/%d", away.PowerPlayGoals, away.PowerPlayOpportunities),
		fmt.Sprintf("%d/%d", home.PowerPlayGoals, home.PowerPlayOpportunities))

	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	id, err := nhl.ParseGameID(args[0])
	if err != nil {
		return err
	}

	matchup, err := client.Landing(cmd.Context(), id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(matchup)
	}

	fmt.Printf("%s @ %s [%s]\n",
		matchup.AwayTeam.Abbrev, matchup.HomeTeam.Abbrev, matchup.GameState)

	if matchup.Summary == nil {
		fmt.Println("No scoring summary available.")
		return nil
	}

	for _, period := range matchup.Summary.Scoring {
		fmt.Printf("\nPeriod %d (%s):\n",
			period.PeriodDescriptor.Number, period.PeriodDescriptor.PeriodType)
		if len(period.Goals) == 0 {
			fmt.Println("  No scoring.")
			continue
		}
		for _, goal := range period.Goals {
			fmt.Printf("  %s  %s %s (%s) %d-%d\n",
				goal.TimeInPeriod, goal.FirstName.Default, goal.LastName.Default,
				goal.TeamAbbrev.Default, goal.AwayScore, goal.HomeScore)
		}
	}

	for _, star := range matchup.Summary.ThreeStars {
		fmt.Printf("Star %d: %s (%s)\n", star.Star, star.Name.Default, star.TeamAbbrev)
	}

	return nil
}

func runPlays(cmd *cobra.Command, args []string) error {
	id, err := nhl.ParseGameID(args[0])
	if err != nil {
		return err
	}

	pbp, err := client.PlayByPlay(cmd.Context(), id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(pbp)
	}

	fmt.Printf("%d plays:\n", len(pbp.Plays))
	for i := range pbp.Plays {
		p := &pbp.Plays[i]
		fmt.Printf("  P%d %s  %s\n",
			p.PeriodDescriptor.Number, p.TimeInPeriod, p.TypeDescKey)
	}
	return nil
}

func runBoxscores(cmd *cobra.Command, args []string) error {
	date, err := parseDateArg(args)
	if err != nil {
		return err
	}

	boxscores, err := client.DailyBoxscores(cmd.Context(), date)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(boxscores)
	}

	if len(boxscores) == 0 {
		fmt.Println("No games.")
		return nil
	}

	for _, box := range boxscores {
		printBoxscoreLine(box)
	}
	return nil
}

func printBoxscoreLine(box *nhl.Boxscore) {
	fmt.Printf("%s %d @ %s %d [%s]\n",
		box.AwayTeam.Abbrev, box.AwayTeam.Score,
		box.HomeTeam.Abbrev, box.HomeTeam.Score,
		box.GameState)
}
