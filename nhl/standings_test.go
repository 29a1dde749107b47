package nhl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modernStandingJSON = `{
	"conferenceAbbrev": "E",
	"conferenceName": "Eastern",
	"divisionAbbrev": "ATL",
	"divisionName": "Atlantic",
	"teamName": {"default": "Buffalo Sabres"},
	"teamCommonName": {"default": "Sabres"},
	"teamAbbrev": {"default": "BUF"},
	"teamLogo": "https://assets.nhle.com/logos/nhl/svg/BUF_light.svg",
	"wins": 10,
	"losses": 5,
	"otLosses": 2,
	"points": 22
}`

func TestStandingsResponseDecoding(t *testing.T) {
	payload := `{"standings": [` + modernStandingJSON + `]}`

	var resp StandingsResponse
	require.NoError(t, decodeJSON([]byte(payload), &resp))
	require.Len(t, resp.Standings, 1)

	s := resp.Standings[0]
	assert.Equal(t, "BUF", s.TeamAbbrev.Default)
	assert.Equal(t, 10, s.Wins)
	assert.Equal(t, 22, s.Points)
	assert.Equal(t, Conference{Abbrev: "E", Name: "Eastern"}, s.Conference())
}

func TestStandingDecodesHistoricalPayload(t *testing.T) {
	// Pre-conference seasons omit the conference fields entirely.
	payload := `{
		"divisionAbbrev": "EST",
		"divisionName": "East",
		"teamName": {"default": "Boston Bruins"},
		"teamCommonName": {"default": "Bruins"},
		"teamAbbrev": {"default": "BOS"},
		"teamLogo": "https://assets.nhle.com/logos/nhl/svg/BOS_light.svg",
		"wins": 40,
		"losses": 20,
		"otLosses": 0,
		"points": 80
	}`

	var s Standing
	require.NoError(t, json.Unmarshal([]byte(payload), &s))

	assert.Empty(t, s.ConferenceAbbrev)
	assert.Empty(t, s.ConferenceName)

	conf := s.Conference()
	assert.Equal(t, ConferenceUnknownAbbrev, conf.Abbrev)
	assert.Equal(t, ConferenceUnknownName, conf.Name)

	team := s.ToTeam()
	assert.Equal(t, ConferenceUnknownAbbrev, team.Conference.Abbrev)
	assert.Equal(t, "East", team.Division.Name)
}

func TestStandingMissingRequiredField(t *testing.T) {
	payload := `{
		"divisionAbbrev": "ATL",
		"divisionName": "Atlantic",
		"teamName": {"default": "Buffalo Sabres"},
		"teamCommonName": {"default": "Sabres"},
		"teamAbbrev": {"default": "BUF"},
		"teamLogo": "",
		"wins": 10,
		"losses": 5,
		"otLosses": 2
	}`

	var s Standing
	err := json.Unmarshal([]byte(payload), &s)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "Standing", decodeErr.Shape)
	assert.Equal(t, "points", decodeErr.Field)
}

func TestStandingIgnoresUnknownFields(t *testing.T) {
	// Forward compatibility: new upstream fields are never an error.
	payload := `{
		"teamName": {"default": "Buffalo Sabres"},
		"teamCommonName": {"default": "Sabres"},
		"teamAbbrev": {"default": "BUF"},
		"teamLogo": "",
		"divisionAbbrev": "ATL",
		"divisionName": "Atlantic",
		"wins": 10,
		"losses": 5,
		"otLosses": 2,
		"points": 22,
		"brandNewMetric": {"nested": [1, 2, 3]}
	}`

	var s Standing
	require.NoError(t, json.Unmarshal([]byte(payload), &s))
	assert.Equal(t, 22, s.Points)
}

func TestStandingToTeam(t *testing.T) {
	var s Standing
	require.NoError(t, json.Unmarshal([]byte(modernStandingJSON), &s))

	team := s.ToTeam()
	assert.Equal(t, "Buffalo Sabres", team.Name)
	assert.Equal(t, "Sabres", team.CommonName)
	assert.Equal(t, "BUF", team.Abbrev)
	assert.Equal(t, "Eastern", team.Conference.Name)
	assert.Equal(t, "ATL", team.Division.Abbrev)
	assert.Nil(t, team.FranchiseID)
	assert.Equal(t, "Buffalo Sabres (BUF)", team.String())
}

func TestStandingString(t *testing.T) {
	var s Standing
	require.NoError(t, json.Unmarshal([]byte(modernStandingJSON), &s))
	assert.Equal(t, "BUF: 22 pts (10-5-2)", s.String())
}

func TestSeasonsResponseDecoding(t *testing.T) {
	payload := `{"seasons":[
		{"id": 20232024, "standingsStart": "2023-10-10", "standingsEnd": "2024-04-18"},
		{"id": 19171918, "standingsStart": "1917-12-19", "standingsEnd": "1918-03-06"}
	]}`

	var resp SeasonsResponse
	require.NoError(t, decodeJSON([]byte(payload), &resp))
	require.Len(t, resp.Seasons, 2)
	assert.Equal(t, int64(19171918), resp.Seasons[1].ID)
	assert.Equal(t, "2024-04-18", resp.Seasons[0].StandingsEnd)
}
