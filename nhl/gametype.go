package nhl

import (
	"encoding/json"
	"fmt"
)

// GameType is the numeric game class the API uses in payloads and
// club-stats paths.
type GameType int

const (
	GameTypePreseason     GameType = 1
	GameTypeRegularSeason GameType = 2
	GameTypePlayoffs      GameType = 3
	GameTypeAllStar       GameType = 4
)

// GameTypeFromInt converts the API integer to a GameType, rejecting
// unknown values.
func GameTypeFromInt(v int) (GameType, error) {
	switch GameType(v) {
	case GameTypePreseason, GameTypeRegularSeason, GameTypePlayoffs, GameTypeAllStar:
		return GameType(v), nil
	default:
		return 0, fmt.Errorf("unknown game type: %d", v)
	}
}

func (t GameType) String() string {
	switch t {
	case GameTypePreseason:
		return "Preseason"
	case GameTypeRegularSeason:
		return "Regular Season"
	case GameTypePlayoffs:
		return "Playoffs"
	case GameTypeAllStar:
		return "All-Star"
	default:
		return fmt.Sprintf("GameType(%d)", int(t))
	}
}

// UnmarshalJSON decodes the numeric form, rejecting values outside the
// known set so a schema change fails loudly rather than mislabeling
// games.
func (t *GameType) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	gt, err := GameTypeFromInt(v)
	if err != nil {
		return err
	}
	*t = gt
	return nil
}

// MarshalJSON encodes the numeric form.
func (t GameType) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(t))
}
