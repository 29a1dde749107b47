package filter

import (
	"strings"
	"time"

	"github.com/icetop/nhlapi/nhl"
)

// helperFunctions returns the functions available in every
// expression. String comparisons are case-insensitive to keep
// command-line usage forgiving.
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["now"] = time.Now
	return env
}

// StandingEnv builds the evaluation environment for a standings row.
func StandingEnv(s nhl.Standing) map[string]any {
	env := helperFunctions()

	conference := s.Conference()
	gamesPlayed := s.Wins + s.Losses + s.OtLosses

	env["Team"] = s.TeamName.Default
	env["Abbrev"] = s.TeamAbbrev.Default
	env["Conference"] = conference.Name
	env["ConferenceAbbrev"] = conference.Abbrev
	env["Division"] = s.DivisionName
	env["DivisionAbbrev"] = s.DivisionAbbrev
	env["Wins"] = s.Wins
	env["Losses"] = s.Losses
	env["OtLosses"] = s.OtLosses
	env["Points"] = s.Points
	env["GamesPlayed"] = gamesPlayed
	if gamesPlayed > 0 {
		env["PointsPct"] = float64(s.Points) / float64(2*gamesPlayed)
	} else {
		env["PointsPct"] = 0.0
	}

	env["inConference"] = func(name string) bool {
		return strings.EqualFold(conference.Name, name) || strings.EqualFold(conference.Abbrev, name)
	}
	env["inDivision"] = func(name string) bool {
		return strings.EqualFold(s.DivisionName, name) || strings.EqualFold(s.DivisionAbbrev, name)
	}

	return env
}

// GameEnv builds the evaluation environment for a scheduled game.
func GameEnv(g nhl.ScheduleGame) map[string]any {
	env := helperFunctions()

	env["Home"] = g.HomeTeam.Abbrev
	env["Away"] = g.AwayTeam.Abbrev
	env["State"] = string(g.GameState)
	env["GameType"] = int(g.GameType)
	env["Started"] = g.GameState.HasStarted()
	env["Final"] = g.GameState.IsFinal()
	env["Live"] = g.GameState.IsLive()
	// Scores default to zero before the game has one so comparisons
	// never see a missing variable.
	env["HasScore"] = g.HomeTeam.Score != nil && g.AwayTeam.Score != nil
	env["HomeScore"] = 0
	env["AwayScore"] = 0
	if g.HomeTeam.Score != nil {
		env["HomeScore"] = *g.HomeTeam.Score
	}
	if g.AwayTeam.Score != nil {
		env["AwayScore"] = *g.AwayTeam.Score
	}

	env["involves"] = func(team string) bool {
		return strings.EqualFold(g.HomeTeam.Abbrev, team) || strings.EqualFold(g.AwayTeam.Abbrev, team)
	}

	return env
}

// Standings returns the rows matching the filter, preserving order.
func Standings(f *Filter, standings []nhl.Standing) ([]nhl.Standing, error) {
	matched := make([]nhl.Standing, 0, len(standings))
	for i := range standings {
		ok, err := f.Matches(StandingEnv(standings[i]))
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, standings[i])
		}
	}
	return matched, nil
}

// Games returns the games matching the filter, preserving order.
func Games(f *Filter, games []nhl.ScheduleGame) ([]nhl.ScheduleGame, error) {
	matched := make([]nhl.ScheduleGame, 0, len(games))
	for i := range games {
		ok, err := f.Matches(GameEnv(games[i]))
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, games[i])
		}
	}
	return matched, nil
}
