package nhl

// PlayByPlay is the gamecenter play-by-play payload, trimmed to the
// surfaces the client exposes.
type PlayByPlay struct {
	ID                GameID           `json:"id"`
	Season            int64            `json:"season"`
	GameType          GameType         `json:"gameType"`
	LimitedScoring    bool             `json:"limitedScoring"`
	GameDate          string           `json:"gameDate"`
	Venue             LocalizedString  `json:"venue"`
	VenueLocation     LocalizedString  `json:"venueLocation"`
	StartTimeUTC      string           `json:"startTimeUTC"`
	GameState         GameState        `json:"gameState"`
	GameScheduleState string           `json:"gameScheduleState"`
	PeriodDescriptor  PeriodDescriptor `json:"periodDescriptor"`
	AwayTeam          BoxscoreTeam     `json:"awayTeam"`
	HomeTeam          BoxscoreTeam     `json:"homeTeam"`
	ShootoutInUse     bool             `json:"shootoutInUse"`
	OtInUse           bool             `json:"otInUse"`
	Clock             GameClock        `json:"clock"`
	DisplayPeriod     int              `json:"displayPeriod"`
	Plays             []PlayEvent      `json:"plays"`
}

// PlayEvent is one entry in a game's play stream.
type PlayEvent struct {
	EventID          int64             `json:"eventId"`
	PeriodDescriptor PeriodDescriptor  `json:"periodDescriptor"`
	TimeInPeriod     string            `json:"timeInPeriod"`
	TimeRemaining    string            `json:"timeRemaining"`
	SituationCode    string            `json:"situationCode"`
	TypeCode         int               `json:"typeCode"`
	TypeDescKey      string            `json:"typeDescKey"`
	SortOrder        int               `json:"sortOrder"`
	Details          *PlayEventDetails `json:"details,omitempty"`
}

// PlayEventDetails carries the event-specific fields; which ones are
// present depends entirely on the event type.
type PlayEventDetails struct {
	XCoord              *int      `json:"xCoord,omitempty"`
	YCoord              *int      `json:"yCoord,omitempty"`
	ZoneCode            *ZoneCode `json:"zoneCode,omitempty"`
	EventOwnerTeamID    *int64    `json:"eventOwnerTeamId,omitempty"`
	ShotType            *string   `json:"shotType,omitempty"`
	ShootingPlayerID    *int64    `json:"shootingPlayerId,omitempty"`
	GoalieInNetID       *int64    `json:"goalieInNetId,omitempty"`
	ScoringPlayerID     *int64    `json:"scoringPlayerId,omitempty"`
	ScoringPlayerTotal  *int      `json:"scoringPlayerTotal,omitempty"`
	Assist1PlayerID     *int64    `json:"assist1PlayerId,omitempty"`
	Assist1PlayerTotal  *int      `json:"assist1PlayerTotal,omitempty"`
	Assist2PlayerID     *int64    `json:"assist2PlayerId,omitempty"`
	Assist2PlayerTotal  *int      `json:"assist2PlayerTotal,omitempty"`
	AwayScore           *int      `json:"awayScore,omitempty"`
	HomeScore           *int      `json:"homeScore,omitempty"`
	PenaltyTypeCode     *string   `json:"typeCode,omitempty"`
	CommittedByPlayerID *int64    `json:"committedByPlayerId,omitempty"`
	Duration            *int      `json:"duration,omitempty"`
}

// GameMatchup is the gamecenter landing payload: a lighter view than
// play-by-play that still carries the period scoring summary.
type GameMatchup struct {
	ID                GameID           `json:"id"`
	Season            int64            `json:"season"`
	GameType          GameType         `json:"gameType"`
	LimitedScoring    bool             `json:"limitedScoring"`
	GameDate          string           `json:"gameDate"`
	Venue             LocalizedString  `json:"venue"`
	VenueLocation     LocalizedString  `json:"venueLocation"`
	StartTimeUTC      string           `json:"startTimeUTC"`
	VenueTimezone     string           `json:"venueTimezone"`
	PeriodDescriptor  PeriodDescriptor `json:"periodDescriptor"`
	GameState         GameState        `json:"gameState"`
	GameScheduleState string           `json:"gameScheduleState"`
	AwayTeam          MatchupTeam      `json:"awayTeam"`
	HomeTeam          MatchupTeam      `json:"homeTeam"`
	ShootoutInUse     bool             `json:"shootoutInUse"`
	MaxPeriods        int              `json:"maxPeriods"`
	RegPeriods        int              `json:"regPeriods"`
	Summary           *GameSummary     `json:"summary,omitempty"`
}

// MatchupTeam is one side of a gamecenter landing matchup.
type MatchupTeam struct {
	ID                       int64           `json:"id"`
	CommonName               LocalizedString `json:"commonName"`
	Abbrev                   string          `json:"abbrev"`
	PlaceName                LocalizedString `json:"placeName"`
	PlaceNameWithPreposition LocalizedString `json:"placeNameWithPreposition"`
	Score                    int             `json:"score"`
	Sog                      int             `json:"sog"`
	Logo                     string          `json:"logo"`
	DarkLogo                 string          `json:"darkLogo"`
}

// GameSummary is the scoring summary block of a landing payload.
type GameSummary struct {
	Scoring    []PeriodScoring `json:"scoring"`
	ThreeStars []ThreeStar     `json:"threeStars,omitempty"`
}

// PeriodScoring lists the goals of one period.
type PeriodScoring struct {
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	Goals            []GoalSummary    `json:"goals"`
}

// GoalSummary is one goal in the scoring summary.
type GoalSummary struct {
	SituationCode string          `json:"situationCode"`
	EventID       int64           `json:"eventId"`
	Strength      string          `json:"strength"`
	PlayerID      int64           `json:"playerId"`
	FirstName     LocalizedString `json:"firstName"`
	LastName      LocalizedString `json:"lastName"`
	Name          LocalizedString `json:"name"`
	TeamAbbrev    LocalizedString `json:"teamAbbrev"`
	Headshot      string          `json:"headshot"`
	GoalsToDate   int             `json:"goalsToDate"`
	AwayScore     int             `json:"awayScore"`
	HomeScore     int             `json:"homeScore"`
	TimeInPeriod  string          `json:"timeInPeriod"`
}

// ThreeStar is one of the game's three stars.
type ThreeStar struct {
	Star       int             `json:"star"`
	PlayerID   int64           `json:"playerId"`
	Name       LocalizedString `json:"name"`
	TeamAbbrev string          `json:"teamAbbrev"`
	Position   Position        `json:"position"`
}
