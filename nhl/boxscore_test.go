package nhl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxscoreDecoding(t *testing.T) {
	payload := `{
		"id": 2023020001,
		"season": 20232024,
		"gameType": 2,
		"limitedScoring": false,
		"gameDate": "2023-10-10",
		"venue": {"default": "Scotiabank Arena"},
		"venueLocation": {"default": "Toronto"},
		"startTimeUTC": "2023-10-10T23:00:00Z",
		"easternUTCOffset": "-04:00",
		"venueUTCOffset": "-04:00",
		"gameState": "OFF",
		"gameScheduleState": "OK",
		"periodDescriptor": {"number": 3, "periodType": "REG", "maxRegulationPeriods": 3},
		"awayTeam": {
			"id": 8, "commonName": {"default": "Canadiens"}, "abbrev": "MTL",
			"score": 3, "sog": 25, "logo": "", "darkLogo": "",
			"placeName": {"default": "Montréal"},
			"placeNameWithPreposition": {"default": "Montréal"}
		},
		"homeTeam": {
			"id": 10, "commonName": {"default": "Maple Leafs"}, "abbrev": "TOR",
			"score": 5, "sog": 30, "logo": "", "darkLogo": "",
			"placeName": {"default": "Toronto"},
			"placeNameWithPreposition": {"default": "Toronto"}
		},
		"clock": {"timeRemaining": "00:00", "secondsRemaining": 0, "running": false, "inIntermission": false},
		"playerByGameStats": {
			"awayTeam": {"forwards": [], "defense": [], "goalies": []},
			"homeTeam": {"forwards": [], "defense": [], "goalies": []}
		}
	}`

	var box Boxscore
	require.NoError(t, decodeJSON([]byte(payload), &box))
	assert.Equal(t, GameID(2023020001), box.ID)
	assert.Equal(t, GameTypeRegularSeason, box.GameType)
	assert.Equal(t, "TOR", box.HomeTeam.Abbrev)
	assert.Equal(t, 5, box.HomeTeam.Score)
	assert.True(t, box.GameState.IsFinal())
	assert.Equal(t, PeriodRegulation, box.PeriodDescriptor.PeriodType)
	assert.Nil(t, box.SpecialEvent)
}

func TestGoalieStatsOptionalFields(t *testing.T) {
	payload := `{
		"playerId": 8480045,
		"sweaterNumber": 31,
		"name": {"default": "C. Hart"},
		"position": "G",
		"evenStrengthShotsAgainst": "20/22",
		"powerPlayShotsAgainst": "5/5",
		"shorthandedShotsAgainst": "0/0",
		"saveShotsAgainst": "25/27",
		"evenStrengthGoalsAgainst": 2,
		"powerPlayGoalsAgainst": 0,
		"shorthandedGoalsAgainst": 0,
		"goalsAgainst": 2,
		"toi": "59:30",
		"shotsAgainst": 27,
		"saves": 25
	}`

	var g GoalieStats
	require.NoError(t, json.Unmarshal([]byte(payload), &g))
	assert.Nil(t, g.SavePctg)
	assert.Nil(t, g.Pim)
	assert.Nil(t, g.Starter)
	assert.Nil(t, g.Decision)
	assert.Equal(t, 25, g.Saves)
}

func TestAggregateTeamStats(t *testing.T) {
	pim := 2
	stats := TeamPlayerStats{
		Forwards: []SkaterStats{
			{Position: PositionCenter, Sog: 4, PowerPlayGoals: 1, Pim: 2, Hits: 3,
				BlockedShots: 1, Giveaways: 2, Takeaways: 1, Shifts: 20, FaceoffWinningPctg: 0.5},
			{Position: PositionLeftWing, Sog: 2, Hits: 5, Takeaways: 2},
		},
		Defense: []SkaterStats{
			{Position: PositionDefense, Sog: 3, BlockedShots: 4, Giveaways: 1},
		},
		Goalies: []GoalieStats{
			{Pim: &pim, PowerPlayGoalsAgainst: 3},
		},
	}

	agg := AggregateTeamStats(stats)
	assert.Equal(t, 9, agg.ShotsOnGoal)
	assert.Equal(t, 1, agg.PowerPlayGoals)
	assert.Equal(t, 4, agg.PenaltyMinutes) // skater 2 + goalie 2
	assert.Equal(t, 8, agg.Hits)
	assert.Equal(t, 5, agg.BlockedShots)
	assert.Equal(t, 3, agg.Giveaways)
	assert.Equal(t, 3, agg.Takeaways)
	assert.Equal(t, 3, agg.PowerPlayOpportunities)

	// Only the center contributes estimated faceoffs.
	assert.Equal(t, 20, agg.FaceoffTotal)
	assert.Equal(t, 10, agg.FaceoffWins)
	assert.InDelta(t, 50.0, agg.FaceoffPercentage(), 0.001)
	assert.InDelta(t, 100.0/3, agg.PowerPlayPercentage(), 0.001)
}

func TestTeamGameStatsZeroDenominators(t *testing.T) {
	var agg TeamGameStats
	assert.Zero(t, agg.FaceoffPercentage())
	assert.Zero(t, agg.PowerPlayPercentage())
}
