package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/icetop/nhlapi/nhl"
)

var searchLimit int

// playerCmd groups the player views
var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Search players and show player profiles",
}

var playerSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search players by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerSearch,
}

var playerInfoCmd = &cobra.Command{
	Use:   "info <player-id>",
	Short: "Show a player's profile and stats",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerInfo,
}

func init() {
	rootCmd.AddCommand(playerCmd)
	playerCmd.AddCommand(playerSearchCmd)
	playerCmd.AddCommand(playerInfoCmd)

	playerSearchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
}

func runPlayerSearch(cmd *cobra.Command, args []string) error {
	results, err := client.SearchPlayers(cmd.Context(), args[0], searchLimit)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No players found.")
		return nil
	}

	for i := range results {
		r := &results[i]
		team := "-"
		if r.TeamAbbrev != nil {
			team = *r.TeamAbbrev
		}
		status := "retired"
		if r.Active {
			status = "active"
		}
		fmt.Printf("%-10s %-28s %-3s %-4s %s\n",
			r.PlayerID, r.Name, r.Position, team, status)
	}
	return nil
}

func runPlayerInfo(cmd *cobra.Command, args []string) error {
	playerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id %q", args[0])
	}

	player, err := client.PlayerLanding(cmd.Context(), playerID)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(player)
	}

	fmt.Printf("%s  #%s  %s\n", player.FullName(), sweaterNumber(player.SweaterNumber), player.Position.Name())
	if player.CurrentTeamAbbrev != nil {
		fmt.Printf("Team: %s\n", *player.CurrentTeamAbbrev)
	}
	fmt.Printf("Born: %s", player.BirthDate)
	if player.BirthCity != nil {
		fmt.Printf(" in %s", player.BirthCity.Default)
		if player.BirthCountry != nil {
			fmt.Printf(", %s", *player.BirthCountry)
		}
	}
	fmt.Println()
	fmt.Printf("Height: %d in  Weight: %d lb  Shoots: %s\n",
		player.HeightInInches, player.WeightInPounds, player.ShootsCatches)

	if player.CareerTotals != nil {
		printStatLine("Career (regular season)", player.CareerTotals.RegularSeason)
		if player.CareerTotals.Playoffs != nil {
			printStatLine("Career (playoffs)", *player.CareerTotals.Playoffs)
		}
	}
	return nil
}

func sweaterNumber(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

// printStatLine renders whichever of the skater and goalie stat
// fields the line actually carries.
func printStatLine(label string, stats nhl.PlayerStats) {
	fmt.Printf("%s:", label)
	if stats.GamesPlayed != nil {
		fmt.Printf(" GP %d", *stats.GamesPlayed)
	}
	if stats.Goals != nil && stats.Assists != nil && stats.Points != nil {
		fmt.Printf("  %d G, %d A, %d P", *stats.Goals, *stats.Assists, *stats.Points)
	}
	if stats.Wins != nil && stats.Losses != nil {
		fmt.Printf("  %d-%d", *stats.Wins, *stats.Losses)
		if stats.OtLosses != nil {
			fmt.Printf("-%d", *stats.OtLosses)
		}
	}
	if stats.SavePctg != nil {
		fmt.Printf("  SV%% %.3f", *stats.SavePctg)
	}
	if stats.GoalsAgainstAvg != nil {
		fmt.Printf("  GAA %.2f", *stats.GoalsAgainstAvg)
	}
	fmt.Println()
}
