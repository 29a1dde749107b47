package nhl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Teams derives the team catalog from the standings for a date. A nil
// equivalent is the "now" sentinel via the GameDate zero value.
func (c *Client) Teams(ctx context.Context, date GameDate) ([]Team, error) {
	standings, err := c.StandingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	teams := make([]Team, 0, len(standings))
	for i := range standings {
		teams = append(teams, standings[i].ToTeam())
	}
	return teams, nil
}

// CurrentStandings returns the league standings as of now.
func (c *Client) CurrentStandings(ctx context.Context) ([]Standing, error) {
	return c.StandingsByDate(ctx, Now())
}

// StandingsByDate returns the league standings for a date.
func (c *Client) StandingsByDate(ctx context.Context, date GameDate) ([]Standing, error) {
	resp, err := fetch[StandingsResponse](ctx, c, EndpointWeb, nil, "standings", date.APIString())
	if err != nil {
		return nil, err
	}
	return resp.Standings, nil
}

// StandingsBySeason returns the final standings of the season with the
// given packed identifier (e.g. 20232024), using the season manifest
// to find the closing date.
func (c *Client) StandingsBySeason(ctx context.Context, seasonID int64) ([]Standing, error) {
	seasons, err := c.SeasonManifest(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range seasons {
		if s.ID == seasonID {
			date, err := ParseGameDate(s.StandingsEnd)
			if err != nil {
				return nil, err
			}
			return c.StandingsByDate(ctx, date)
		}
	}
	return nil, fmt.Errorf("invalid season id %d", seasonID)
}

// SeasonManifest returns metadata for every season with standings,
// including the first and last dates standings exist for.
func (c *Client) SeasonManifest(ctx context.Context) ([]SeasonInfo, error) {
	resp, err := fetch[SeasonsResponse](ctx, c, EndpointWeb, nil, "standings-season")
	if err != nil {
		return nil, err
	}
	return resp.Seasons, nil
}

// Boxscore returns the boxscore for a game.
func (c *Client) Boxscore(ctx context.Context, id GameID) (*Boxscore, error) {
	return fetch[Boxscore](ctx, c, EndpointWeb, nil, "gamecenter", id.String(), "boxscore")
}

// PlayByPlay returns the full play stream for a game.
func (c *Client) PlayByPlay(ctx context.Context, id GameID) (*PlayByPlay, error) {
	return fetch[PlayByPlay](ctx, c, EndpointWeb, nil, "gamecenter", id.String(), "play-by-play")
}

// Landing returns the gamecenter landing view for a game, lighter
// than play-by-play but with the scoring summary.
func (c *Client) Landing(ctx context.Context, id GameID) (*GameMatchup, error) {
	return fetch[GameMatchup](ctx, c, EndpointWeb, nil, "gamecenter", id.String(), "landing")
}

// WeeklySchedule returns the schedule for the week containing date.
func (c *Client) WeeklySchedule(ctx context.Context, date GameDate) (*WeeklySchedule, error) {
	return fetch[WeeklySchedule](ctx, c, EndpointWeb, nil, "schedule", date.APIString())
}

// DailySchedule assembles the single-day slate for date from the
// weekly schedule payload. The sentinel date resolves to today so the
// requested day can be matched against the week.
func (c *Client) DailySchedule(ctx context.Context, date GameDate) (*DailySchedule, error) {
	if date.IsNow() {
		date = Today()
	}
	dateString := date.APIString()

	week, err := c.WeeklySchedule(ctx, date)
	if err != nil {
		return nil, err
	}

	var games []ScheduleGame
	for _, day := range week.GameWeek {
		if day.Date == dateString {
			games = day.Games
			break
		}
	}

	return &DailySchedule{
		NextStartDate:     week.NextStartDate,
		PreviousStartDate: week.PreviousStartDate,
		Date:              dateString,
		Games:             games,
		NumberOfGames:     len(games),
	}, nil
}

// TeamWeekSchedule returns a club's schedule for the week containing
// date.
func (c *Client) TeamWeekSchedule(ctx context.Context, team string, date GameDate) (*TeamScheduleResponse, error) {
	return fetch[TeamScheduleResponse](ctx, c, EndpointWeb, nil, "club-schedule", team, "week", date.APIString())
}

// DailyScores returns the score lines for a date.
func (c *Client) DailyScores(ctx context.Context, date GameDate) (*DailyScores, error) {
	return fetch[DailyScores](ctx, c, EndpointWeb, nil, "score", date.APIString())
}

// ClubStats returns a team's per-player statistics for a season and
// game type.
func (c *Client) ClubStats(ctx context.Context, team string, season Season, gameType GameType) (*ClubStats, error) {
	return fetch[ClubStats](ctx, c, EndpointWeb, nil,
		"club-stats", team, season.String(), strconv.Itoa(int(gameType)))
}

// Roster returns a team's roster for a season.
func (c *Client) Roster(ctx context.Context, team string, season Season) (*Roster, error) {
	return fetch[Roster](ctx, c, EndpointWeb, nil, "roster", team, season.String())
}

// Franchises returns the all-time franchise catalog.
func (c *Client) Franchises(ctx context.Context) ([]Franchise, error) {
	resp, err := fetch[FranchisesResponse](ctx, c, EndpointStats, nil, "en", "franchise")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// PlayerLanding returns a player's profile.
func (c *Client) PlayerLanding(ctx context.Context, playerID int64) (*PlayerLanding, error) {
	return fetch[PlayerLanding](ctx, c, EndpointWeb, nil,
		"player", strconv.FormatInt(playerID, 10), "landing")
}

// SearchPlayers queries the player search service. limit caps the
// number of results; non-positive means the service default.
func (c *Client) SearchPlayers(ctx context.Context, query string, limit int) ([]PlayerSearchResult, error) {
	q := url.Values{}
	q.Set("culture", "en-us")
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	resp, err := fetch[[]PlayerSearchResult](ctx, c, EndpointSearch, q, "search", "player")
	if err != nil {
		return nil, err
	}
	return *resp, nil
}
