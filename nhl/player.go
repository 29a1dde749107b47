package nhl

// PlayerLanding is the player profile payload. Most sections only
// appear for players with NHL history, so they stay optional.
type PlayerLanding struct {
	PlayerID           int64            `json:"playerId"`
	IsActive           bool             `json:"isActive"`
	CurrentTeamID      *int64           `json:"currentTeamId,omitempty"`
	CurrentTeamAbbrev  *string          `json:"currentTeamAbbrev,omitempty"`
	FirstName          LocalizedString  `json:"firstName"`
	LastName           LocalizedString  `json:"lastName"`
	SweaterNumber      *int             `json:"sweaterNumber,omitempty"`
	Position           Position         `json:"position"`
	Headshot           string           `json:"headshot"`
	HeroImage          *string          `json:"heroImage,omitempty"`
	HeightInInches     int              `json:"heightInInches"`
	WeightInPounds     int              `json:"weightInPounds"`
	BirthDate          string           `json:"birthDate"`
	BirthCity          *LocalizedString `json:"birthCity,omitempty"`
	BirthStateProvince *LocalizedString `json:"birthStateProvince,omitempty"`
	BirthCountry       *string          `json:"birthCountry,omitempty"`
	ShootsCatches      Handedness       `json:"shootsCatches"`
	DraftDetails       *DraftDetails    `json:"draftDetails,omitempty"`
	PlayerSlug         *string          `json:"playerSlug,omitempty"`
	FeaturedStats      *FeaturedStats   `json:"featuredStats,omitempty"`
	CareerTotals       *CareerTotals    `json:"careerTotals,omitempty"`
	SeasonTotals       []SeasonTotal    `json:"seasonTotals,omitempty"`
	Awards             []Award          `json:"awards,omitempty"`
	LastFiveGames      []GameLog        `json:"last5Games,omitempty"`
}

// FullName joins the localized first and last names.
func (p *PlayerLanding) FullName() string {
	return p.FirstName.Default + " " + p.LastName.Default
}

// DraftDetails records where a player was drafted.
type DraftDetails struct {
	Year        int    `json:"year"`
	TeamAbbrev  string `json:"teamAbbrev"`
	Round       int    `json:"round"`
	PickInRound int    `json:"pickInRound"`
	OverallPick int    `json:"overallPick"`
}

// FeaturedStats is the current-season stat block on a player profile.
type FeaturedStats struct {
	Season        int64        `json:"season"`
	RegularSeason PlayerStats  `json:"regularSeason"`
	Playoffs      *PlayerStats `json:"playoffs,omitempty"`
}

// CareerTotals are a player's career stat lines.
type CareerTotals struct {
	RegularSeason PlayerStats  `json:"regularSeason"`
	Playoffs      *PlayerStats `json:"playoffs,omitempty"`
}

// PlayerStats is a stat line that serves skaters and goalies alike;
// fields the line does not apply to are absent.
type PlayerStats struct {
	GamesPlayed       *int     `json:"gamesPlayed,omitempty"`
	Goals             *int     `json:"goals,omitempty"`
	Assists           *int     `json:"assists,omitempty"`
	Points            *int     `json:"points,omitempty"`
	PlusMinus         *int     `json:"plusMinus,omitempty"`
	Pim               *int     `json:"pim,omitempty"`
	PowerPlayGoals    *int     `json:"powerPlayGoals,omitempty"`
	PowerPlayPoints   *int     `json:"powerPlayPoints,omitempty"`
	ShorthandedGoals  *int     `json:"shorthandedGoals,omitempty"`
	ShorthandedPoints *int     `json:"shorthandedPoints,omitempty"`
	Shots             *int     `json:"shots,omitempty"`
	ShootingPctg      *float64 `json:"shootingPctg,omitempty"`
	FaceoffWinPctg    *float64 `json:"faceoffWinningPctg,omitempty"`
	AvgToi            *string  `json:"avgToi,omitempty"`
	Wins              *int     `json:"wins,omitempty"`
	Losses            *int     `json:"losses,omitempty"`
	OtLosses          *int     `json:"otLosses,omitempty"`
	Shutouts          *int     `json:"shutouts,omitempty"`
	GoalsAgainstAvg   *float64 `json:"goalsAgainstAvg,omitempty"`
	SavePctg          *float64 `json:"savePctg,omitempty"`
}

// SeasonTotal is one season's line in a player's history, across all
// leagues the player appeared in.
type SeasonTotal struct {
	Season         int64            `json:"season"`
	GameType       GameType         `json:"gameTypeId"`
	LeagueAbbrev   string           `json:"leagueAbbrev"`
	TeamName       LocalizedString  `json:"teamName"`
	TeamCommonName *LocalizedString `json:"teamCommonName,omitempty"`
	Sequence       *int             `json:"sequence,omitempty"`
	GamesPlayed    int              `json:"gamesPlayed"`
	Goals          *int             `json:"goals,omitempty"`
	Assists        *int             `json:"assists,omitempty"`
	Points         *int             `json:"points,omitempty"`
	PlusMinus      *int             `json:"plusMinus,omitempty"`
	Pim            *int             `json:"pim,omitempty"`
}

// Award is a trophy with the seasons it was won in.
type Award struct {
	Trophy  LocalizedString `json:"trophy"`
	Seasons []AwardSeason   `json:"seasons"`
}

// AwardSeason is one season entry under an award.
type AwardSeason struct {
	SeasonID    int64 `json:"seasonId"`
	GamesPlayed *int  `json:"gamesPlayed,omitempty"`
	Goals       *int  `json:"goals,omitempty"`
	Assists     *int  `json:"assists,omitempty"`
	Points      *int  `json:"points,omitempty"`
}

// GameLog is one recent-game line on a player profile.
type GameLog struct {
	GameID         GameID   `json:"gameId"`
	GameDate       string   `json:"gameDate"`
	TeamAbbrev     string   `json:"teamAbbrev"`
	OpponentAbbrev string   `json:"opponentAbbrev"`
	HomeRoadFlag   HomeRoad `json:"homeRoadFlag"`
	Goals          *int     `json:"goals,omitempty"`
	Assists        *int     `json:"assists,omitempty"`
	Points         *int     `json:"points,omitempty"`
	Toi            *string  `json:"toi,omitempty"`
}

// PlayerSearchResult is one hit from the player search service. The
// search service reports identifiers as strings.
type PlayerSearchResult struct {
	PlayerID           string   `json:"playerId"`
	Name               string   `json:"name"`
	Position           Position `json:"positionCode"`
	TeamID             *string  `json:"teamId,omitempty"`
	TeamAbbrev         *string  `json:"teamAbbrev,omitempty"`
	SweaterNumber      *int     `json:"sweaterNumber,omitempty"`
	Active             bool     `json:"active"`
	Height             *string  `json:"height,omitempty"`
	BirthCity          *string  `json:"birthCity,omitempty"`
	BirthStateProvince *string  `json:"birthStateProvince,omitempty"`
	BirthCountry       *string  `json:"birthCountry,omitempty"`
}
