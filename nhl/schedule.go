package nhl

import "fmt"

// ScheduleGame is a single game in a schedule or scores payload.
// GameDate is empty when the game is nested under a GameDay that
// already carries the date; read it through GameDay.DateOf in that
// case.
type ScheduleGame struct {
	ID           GameID       `json:"id"`
	GameType     GameType     `json:"gameType"`
	GameDate     string       `json:"gameDate,omitempty"`
	StartTimeUTC string       `json:"startTimeUTC"`
	AwayTeam     ScheduleTeam `json:"awayTeam"`
	HomeTeam     ScheduleTeam `json:"homeTeam"`
	GameState    GameState    `json:"gameState"`
}

func (g ScheduleGame) String() string {
	if g.GameDate != "" {
		return fmt.Sprintf("%s @ %s on %s [%s]", g.AwayTeam.Abbrev, g.HomeTeam.Abbrev, g.GameDate, g.GameState)
	}
	return fmt.Sprintf("%s @ %s [%s]", g.AwayTeam.Abbrev, g.HomeTeam.Abbrev, g.GameState)
}

// ScheduleTeam is the team summary embedded in schedule entries. Score
// is nil until the game has one.
type ScheduleTeam struct {
	ID        int64            `json:"id"`
	Abbrev    string           `json:"abbrev"`
	PlaceName *LocalizedString `json:"placeName,omitempty"`
	Logo      string           `json:"logo"`
	Score     *int             `json:"score,omitempty"`
}

// GameDay is one day's slate inside a weekly schedule.
type GameDay struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

// DateOf returns the game's own date when present, otherwise the
// parent day's date. Composing the two is the caller's job; the
// decoder leaves the nested field absent.
func (d GameDay) DateOf(g ScheduleGame) string {
	if g.GameDate != "" {
		return g.GameDate
	}
	return d.Date
}

// WeeklySchedule is the schedule payload for a week of games.
type WeeklySchedule struct {
	NextStartDate     string    `json:"nextStartDate"`
	PreviousStartDate string    `json:"previousStartDate"`
	GameWeek          []GameDay `json:"gameWeek"`
}

// DailySchedule is the single-day view assembled from a weekly
// schedule payload.
type DailySchedule struct {
	NextStartDate     string         `json:"nextStartDate,omitempty"`
	PreviousStartDate string         `json:"previousStartDate,omitempty"`
	Date              string         `json:"date"`
	Games             []ScheduleGame `json:"games"`
	NumberOfGames     int            `json:"numberOfGames"`
}

// TeamScheduleResponse is a club schedule payload.
type TeamScheduleResponse struct {
	Games []ScheduleGame `json:"games"`
}

// DailyScores is the scores payload for one day.
type DailyScores struct {
	PrevDate    string      `json:"prevDate"`
	CurrentDate string      `json:"currentDate"`
	NextDate    string      `json:"nextDate"`
	Games       []GameScore `json:"games"`
}

// GameScore is one game's score line.
type GameScore struct {
	ID        GameID       `json:"id"`
	GameType  GameType     `json:"gameType"`
	GameState GameState    `json:"gameState"`
	AwayTeam  ScheduleTeam `json:"awayTeam"`
	HomeTeam  ScheduleTeam `json:"homeTeam"`
}

func (g GameScore) String() string {
	away, home := "-", "-"
	if g.AwayTeam.Score != nil {
		away = fmt.Sprintf("%d", *g.AwayTeam.Score)
	}
	if g.HomeTeam.Score != nil {
		home = fmt.Sprintf("%d", *g.HomeTeam.Score)
	}
	return fmt.Sprintf("%s %s @ %s %s [%s]", g.AwayTeam.Abbrev, away, g.HomeTeam.Abbrev, home, g.GameState)
}
