package nhl

import (
	"encoding/json"
	"fmt"
)

// Placeholder pair substituted for the conference of standings entries
// from seasons that predate the conference system. Standings payloads
// before the modern era simply omit the conference fields.
const (
	ConferenceUnknownAbbrev = "UNK"
	ConferenceUnknownName   = "Unknown"
)

// Standing is one team's row in a standings table. ConferenceAbbrev
// and ConferenceName are empty for historical seasons; read them
// through Conference() to get the documented placeholders instead.
type Standing struct {
	ConferenceAbbrev string          `json:"conferenceAbbrev"`
	ConferenceName   string          `json:"conferenceName"`
	DivisionAbbrev   string          `json:"divisionAbbrev"`
	DivisionName     string          `json:"divisionName"`
	TeamName         LocalizedString `json:"teamName"`
	TeamCommonName   LocalizedString `json:"teamCommonName"`
	TeamAbbrev       LocalizedString `json:"teamAbbrev"`
	TeamLogo         string          `json:"teamLogo"`
	Wins             int             `json:"wins"`
	Losses           int             `json:"losses"`
	OtLosses         int             `json:"otLosses"`
	Points           int             `json:"points"`
}

// standingRequiredFields are the payload keys a standings row cannot
// omit; a missing one is a decode failure, not a zero fill.
var standingRequiredFields = []string{"teamAbbrev", "wins", "losses", "otLosses", "points"}

// UnmarshalJSON enforces the required scoring fields before decoding.
func (s *Standing) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "Standing", standingRequiredFields...); err != nil {
		return err
	}
	type alias Standing
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Standing(a)
	return nil
}

// Conference returns the team's conference, substituting the unknown
// placeholders when the payload predates conferences.
func (s *Standing) Conference() Conference {
	if s.ConferenceAbbrev == "" && s.ConferenceName == "" {
		return Conference{Abbrev: ConferenceUnknownAbbrev, Name: ConferenceUnknownName}
	}
	return Conference{Abbrev: s.ConferenceAbbrev, Name: s.ConferenceName}
}

// ToTeam flattens the standing into a Team value.
func (s *Standing) ToTeam() Team {
	return Team{
		Name:       s.TeamName.Default,
		CommonName: s.TeamCommonName.Default,
		Abbrev:     s.TeamAbbrev.Default,
		Logo:       s.TeamLogo,
		Conference: s.Conference(),
		Division:   Division{Abbrev: s.DivisionAbbrev, Name: s.DivisionName},
	}
}

func (s *Standing) String() string {
	return fmt.Sprintf("%s: %d pts (%d-%d-%d)",
		s.TeamAbbrev.Default, s.Points, s.Wins, s.Losses, s.OtLosses)
}

// StandingsResponse wraps a standings payload.
type StandingsResponse struct {
	Standings []Standing `json:"standings"`
}

// SeasonInfo is one entry of the standings season manifest. ID is the
// packed season integer (e.g. 20232024).
type SeasonInfo struct {
	ID             int64  `json:"id"`
	StandingsStart string `json:"standingsStart"`
	StandingsEnd   string `json:"standingsEnd"`
}

// SeasonsResponse wraps the standings season manifest payload.
type SeasonsResponse struct {
	Seasons []SeasonInfo `json:"seasons"`
}
