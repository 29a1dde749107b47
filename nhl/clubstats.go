package nhl

import "fmt"

// ClubStats is a team's per-player statistics for one season and game
// type.
type ClubStats struct {
	Season   string            `json:"season"`
	GameType GameType          `json:"gameType"`
	Skaters  []ClubSkaterStats `json:"skaters"`
	Goalies  []ClubGoalieStats `json:"goalies"`
}

// ClubSkaterStats is one skater's season line for a club.
type ClubSkaterStats struct {
	PlayerID            int64           `json:"playerId"`
	Headshot            string          `json:"headshot"`
	FirstName           LocalizedString `json:"firstName"`
	LastName            LocalizedString `json:"lastName"`
	PositionCode        string          `json:"positionCode"`
	GamesPlayed         int             `json:"gamesPlayed"`
	Goals               int             `json:"goals"`
	Assists             int             `json:"assists"`
	Points              int             `json:"points"`
	PlusMinus           int             `json:"plusMinus"`
	PenaltyMinutes      int             `json:"penaltyMinutes"`
	PowerPlayGoals      int             `json:"powerPlayGoals"`
	ShorthandedGoals    int             `json:"shorthandedGoals"`
	GameWinningGoals    int             `json:"gameWinningGoals"`
	OvertimeGoals       int             `json:"overtimeGoals"`
	Shots               int             `json:"shots"`
	ShootingPctg        float64         `json:"shootingPctg"`
	AvgTimeOnIcePerGame float64         `json:"avgTimeOnIcePerGame"`
	AvgShiftsPerGame    float64         `json:"avgShiftsPerGame"`
	FaceoffWinPctg      float64         `json:"faceoffWinPctg"`
}

func (s ClubSkaterStats) String() string {
	return fmt.Sprintf("%s %s - %d GP, %d G, %d A, %d PTS",
		s.FirstName.Default, s.LastName.Default, s.GamesPlayed, s.Goals, s.Assists, s.Points)
}

// ClubGoalieStats is one goalie's season line for a club.
type ClubGoalieStats struct {
	PlayerID            int64           `json:"playerId"`
	Headshot            string          `json:"headshot"`
	FirstName           LocalizedString `json:"firstName"`
	LastName            LocalizedString `json:"lastName"`
	GamesPlayed         int             `json:"gamesPlayed"`
	GamesStarted        int             `json:"gamesStarted"`
	Wins                int             `json:"wins"`
	Losses              int             `json:"losses"`
	OvertimeLosses      int             `json:"overtimeLosses"`
	GoalsAgainstAverage float64         `json:"goalsAgainstAverage"`
	SavePercentage      float64         `json:"savePercentage"`
	ShotsAgainst        int             `json:"shotsAgainst"`
	Saves               int             `json:"saves"`
	GoalsAgainst        int             `json:"goalsAgainst"`
	Shutouts            int             `json:"shutouts"`
	Goals               int             `json:"goals"`
	Assists             int             `json:"assists"`
	Points              int             `json:"points"`
	PenaltyMinutes      int             `json:"penaltyMinutes"`
	TimeOnIce           int64           `json:"timeOnIce"`
}

func (g ClubGoalieStats) String() string {
	return fmt.Sprintf("%s %s - %d GP, %d-%d-%d, %.3f GAA, %.3f SV%%",
		g.FirstName.Default, g.LastName.Default, g.GamesPlayed,
		g.Wins, g.Losses, g.OvertimeLosses, g.GoalsAgainstAverage, g.SavePercentage)
}
