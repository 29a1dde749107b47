package nhl

import "math"

// Boxscore is the full game boxscore payload.
type Boxscore struct {
	ID                GameID            `json:"id"`
	Season            int64             `json:"season"`
	GameType          GameType          `json:"gameType"`
	LimitedScoring    bool              `json:"limitedScoring"`
	GameDate          string            `json:"gameDate"`
	Venue             LocalizedString   `json:"venue"`
	VenueLocation     LocalizedString   `json:"venueLocation"`
	StartTimeUTC      string            `json:"startTimeUTC"`
	EasternUTCOffset  string            `json:"easternUTCOffset"`
	VenueUTCOffset    string            `json:"venueUTCOffset"`
	TvBroadcasts      []TvBroadcast     `json:"tvBroadcasts"`
	GameState         GameState         `json:"gameState"`
	GameScheduleState string            `json:"gameScheduleState"`
	PeriodDescriptor  PeriodDescriptor  `json:"periodDescriptor"`
	SpecialEvent      *SpecialEvent     `json:"specialEvent,omitempty"`
	AwayTeam          BoxscoreTeam      `json:"awayTeam"`
	HomeTeam          BoxscoreTeam      `json:"homeTeam"`
	Clock             GameClock         `json:"clock"`
	PlayerByGameStats PlayerByGameStats `json:"playerByGameStats"`
}

// TvBroadcast is a television broadcast entry for a game.
type TvBroadcast struct {
	ID             int64  `json:"id"`
	Market         string `json:"market"`
	CountryCode    string `json:"countryCode"`
	Network        string `json:"network"`
	SequenceNumber int    `json:"sequenceNumber"`
}

// SpecialEvent marks outdoor games and similar one-offs.
type SpecialEvent struct {
	ParentID     int64           `json:"parentId"`
	Name         LocalizedString `json:"name"`
	LightLogoURL LocalizedString `json:"lightLogoUrl"`
}

// PeriodDescriptor identifies the period a game is in or ended in.
type PeriodDescriptor struct {
	Number               int        `json:"number"`
	PeriodType           PeriodType `json:"periodType"`
	MaxRegulationPeriods int        `json:"maxRegulationPeriods"`
}

// BoxscoreTeam is one side's summary line in a boxscore.
type BoxscoreTeam struct {
	ID                       int64           `json:"id"`
	CommonName               LocalizedString `json:"commonName"`
	Abbrev                   string          `json:"abbrev"`
	Score                    int             `json:"score"`
	Sog                      int             `json:"sog"`
	Logo                     string          `json:"logo"`
	DarkLogo                 string          `json:"darkLogo"`
	PlaceName                LocalizedString `json:"placeName"`
	PlaceNameWithPreposition LocalizedString `json:"placeNameWithPreposition"`
}

// GameClock is the live game clock state.
type GameClock struct {
	TimeRemaining    string `json:"timeRemaining"`
	SecondsRemaining int    `json:"secondsRemaining"`
	Running          bool   `json:"running"`
	InIntermission   bool   `json:"inIntermission"`
}

// PlayerByGameStats splits per-player stats by team.
type PlayerByGameStats struct {
	AwayTeam TeamPlayerStats `json:"awayTeam"`
	HomeTeam TeamPlayerStats `json:"homeTeam"`
}

// TeamPlayerStats groups one team's per-player lines by position.
type TeamPlayerStats struct {
	Forwards []SkaterStats `json:"forwards"`
	Defense  []SkaterStats `json:"defense"`
	Goalies  []GoalieStats `json:"goalies"`
}

// SkaterStats is one skater's boxscore line.
type SkaterStats struct {
	PlayerID           int64           `json:"playerId"`
	SweaterNumber      int             `json:"sweaterNumber"`
	Name               LocalizedString `json:"name"`
	Position           Position        `json:"position"`
	Goals              int             `json:"goals"`
	Assists            int             `json:"assists"`
	Points             int             `json:"points"`
	PlusMinus          int             `json:"plusMinus"`
	Pim                int             `json:"pim"`
	Hits               int             `json:"hits"`
	PowerPlayGoals     int             `json:"powerPlayGoals"`
	Sog                int             `json:"sog"`
	FaceoffWinningPctg float64         `json:"faceoffWinningPctg"`
	Toi                string          `json:"toi"`
	BlockedShots       int             `json:"blockedShots"`
	Shifts             int             `json:"shifts"`
	Giveaways          int             `json:"giveaways"`
	Takeaways          int             `json:"takeaways"`
}

// GoalieStats is one goalie's boxscore line. Starter, decision and the
// penalty fields only appear when they apply.
type GoalieStats struct {
	PlayerID                 int64           `json:"playerId"`
	SweaterNumber            int             `json:"sweaterNumber"`
	Name                     LocalizedString `json:"name"`
	Position                 Position        `json:"position"`
	EvenStrengthShotsAgainst string          `json:"evenStrengthShotsAgainst"`
	PowerPlayShotsAgainst    string          `json:"powerPlayShotsAgainst"`
	ShorthandedShotsAgainst  string          `json:"shorthandedShotsAgainst"`
	SaveShotsAgainst         string          `json:"saveShotsAgainst"`
	SavePctg                 *float64        `json:"savePctg,omitempty"`
	EvenStrengthGoalsAgainst int             `json:"evenStrengthGoalsAgainst"`
	PowerPlayGoalsAgainst    int             `json:"powerPlayGoalsAgainst"`
	ShorthandedGoalsAgainst  int             `json:"shorthandedGoalsAgainst"`
	Pim                      *int            `json:"pim,omitempty"`
	GoalsAgainst             int             `json:"goalsAgainst"`
	Toi                      string          `json:"toi"`
	Starter                  *bool           `json:"starter,omitempty"`
	Decision                 *GoalieDecision `json:"decision,omitempty"`
	ShotsAgainst             int             `json:"shotsAgainst"`
	Saves                    int             `json:"saves"`
}

// TeamGameStats is a team-level aggregate computed from per-player
// boxscore lines.
type TeamGameStats struct {
	ShotsOnGoal            int
	FaceoffWins            int
	FaceoffTotal           int
	PowerPlayGoals         int
	PowerPlayOpportunities int
	PenaltyMinutes         int
	Hits                   int
	BlockedShots           int
	Giveaways              int
	Takeaways              int
}

// AggregateTeamStats rolls one team's per-player lines up into team
// totals. Faceoff totals are estimated from centers' shift counts and
// win percentages since the boxscore carries no raw faceoff counts.
func AggregateTeamStats(stats TeamPlayerStats) TeamGameStats {
	var agg TeamGameStats
	skaters := make([]SkaterStats, 0, len(stats.Forwards)+len(stats.Defense))
	skaters = append(skaters, stats.Forwards...)
	skaters = append(skaters, stats.Defense...)

	for _, sk := range skaters {
		agg.ShotsOnGoal += sk.Sog
		agg.PowerPlayGoals += sk.PowerPlayGoals
		agg.PenaltyMinutes += sk.Pim
		agg.Hits += sk.Hits
		agg.BlockedShots += sk.BlockedShots
		agg.Giveaways += sk.Giveaways
		agg.Takeaways += sk.Takeaways

		if sk.Position == PositionCenter && sk.FaceoffWinningPctg > 0 {
			agg.FaceoffTotal += sk.Shifts
			agg.FaceoffWins += int(math.Round(float64(sk.Shifts) * sk.FaceoffWinningPctg))
		}
	}

	for _, g := range stats.Goalies {
		if g.Pim != nil {
			agg.PenaltyMinutes += *g.Pim
		}
		agg.PowerPlayOpportunities += g.PowerPlayGoalsAgainst
	}
	return agg
}

// FaceoffPercentage returns the estimated faceoff win rate, or 0 when
// no faceoffs were counted.
func (t TeamGameStats) FaceoffPercentage() float64 {
	if t.FaceoffTotal == 0 {
		return 0
	}
	return float64(t.FaceoffWins) / float64(t.FaceoffTotal) * 100
}

// PowerPlayPercentage returns the power play conversion rate, or 0
// when there were no opportunities.
func (t TeamGameStats) PowerPlayPercentage() float64 {
	if t.PowerPlayOpportunities == 0 {
		return 0
	}
	return float64(t.PowerPlayGoals) / float64(t.PowerPlayOpportunities) * 100
}
