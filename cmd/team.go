package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icetop/nhlapi/nhl"
)

var (
	teamSeason   string
	teamPlayoffs bool
)

// teamCmd groups the team views
var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show team rosters and season statistics",
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the league's teams",
	RunE:  runTeams,
}

var rosterCmd = &cobra.Command{
	Use:   "roster <abbrev>",
	Short: "Show a team's roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoster,
}

var teamStatsCmd = &cobra.Command{
	Use:   "stats <abbrev>",
	Short: "Show a team's per-player season statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamStats,
}

var franchisesCmd = &cobra.Command{
	Use:   "franchises",
	Short: "List every franchise in league history",
	RunE:  runFranchises,
}

func init() {
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(franchisesCmd)
	teamCmd.AddCommand(rosterCmd)
	teamCmd.AddCommand(teamStatsCmd)

	rosterCmd.Flags().StringVarP(&teamSeason, "season", "s", "", "season (e.g. 20232024, default current)")
	teamStatsCmd.Flags().StringVarP(&teamSeason, "season", "s", "", "season (e.g. 20232024, default current)")
	teamStatsCmd.Flags().BoolVar(&teamPlayoffs, "playoffs", false, "show playoff statistics")
}

func resolveSeason() (nhl.Season, error) {
	if teamSeason == "" {
		return nhl.CurrentSeason(), nil
	}
	return nhl.ParseSeason(teamSeason)
}

func runTeams(cmd *cobra.Command, args []string) error {
	teams, err := client.Teams(cmd.Context(), nhl.Now())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(teams)
	}

	for _, team := range teams {
		fmt.Printf("%-6s %-26s %s / %s\n",
			team.Abbrev, team.Name, team.Conference.Name, team.Division.Name)
	}
	return nil
}

func runRoster(cmd *cobra.Command, args []string) error {
	season, err := resolveSeason()
	if err != nil {
		return err
	}

	roster, err := client.Roster(cmd.Context(), strings.ToUpper(args[0]), season)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(roster)
	}

	printRosterGroup("Forwards", roster.Forwards)
	printRosterGroup("Defensemen", roster.Defensemen)
	printRosterGroup("Goalies", roster.Goalies)
	return nil
}

func printRosterGroup(label string, players []nhl.RosterPlayer) {
	if len(players) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for i := range players {
		p := &players[i]
		fmt.Printf("  #%-3d %-24s %-2s %s\n",
			p.SweaterNumber, p.FirstName.Default+" "+p.LastName.Default,
			p.PositionCode, p.BirthDate)
	}
}

func runTeamStats(cmd *cobra.Command, args []string) error {
	season, err := resolveSeason()
	if err != nil {
		return err
	}

	gameType := nhl.GameTypeRegularSeason
	if teamPlayoffs {
		gameType = nhl.GameTypePlayoffs
	}

	stats, err := client.ClubStats(cmd.Context(), strings.ToUpper(args[0]), season, gameType)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(stats)
	}

	fmt.Printf("%s %s\n", stats.Season, stats.GameType)
	fmt.Println("Skaters:")
	for i := range stats.Skaters {
		fmt.Printf("  %s\n", stats.Skaters[i].String())
	}
	fmt.Println("Goalies:")
	for i := range stats.Goalies {
		fmt.Printf("  %s\n", stats.Goalies[i].String())
	}
	return nil
}

func runFranchises(cmd *cobra.Command, args []string) error {
	franchises, err := client.Franchises(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(franchises)
	}

	for i := range franchises {
		fmt.Printf("%3d  %s\n", franchises[i].ID, franchises[i].FullName)
	}
	return nil
}
