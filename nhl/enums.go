package nhl

import "fmt"

// Position is a player position code as the API reports it.
type Position string

const (
	PositionCenter    Position = "C"
	PositionLeftWing  Position = "L"
	PositionRightWing Position = "R"
	PositionDefense   Position = "D"
	PositionGoalie    Position = "G"
)

// ParsePosition parses a position code, accepting the long LW/RW
// aliases some payloads use for the wings.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "C":
		return PositionCenter, nil
	case "L", "LW":
		return PositionLeftWing, nil
	case "R", "RW":
		return PositionRightWing, nil
	case "D":
		return PositionDefense, nil
	case "G":
		return PositionGoalie, nil
	default:
		return "", fmt.Errorf("unknown position: %q", s)
	}
}

// Name returns the human-readable position name.
func (p Position) Name() string {
	switch p {
	case PositionCenter:
		return "Center"
	case PositionLeftWing:
		return "Left Wing"
	case PositionRightWing:
		return "Right Wing"
	case PositionDefense:
		return "Defense"
	case PositionGoalie:
		return "Goalie"
	default:
		return string(p)
	}
}

// IsSkater reports whether the position is any non-goalie position.
func (p Position) IsSkater() bool {
	return p != PositionGoalie && p != ""
}

// Handedness is a shoots/catches side.
type Handedness string

const (
	HandednessLeft  Handedness = "L"
	HandednessRight Handedness = "R"
)

// ParseHandedness parses an L/R handedness code.
func ParseHandedness(s string) (Handedness, error) {
	switch s {
	case "L":
		return HandednessLeft, nil
	case "R":
		return HandednessRight, nil
	default:
		return "", fmt.Errorf("unknown handedness: %q", s)
	}
}

// HomeRoad marks which side of a matchup a team or player is on.
type HomeRoad string

const (
	Home HomeRoad = "H"
	Road HomeRoad = "R"
)

// PeriodType distinguishes regulation, overtime and shootout periods.
type PeriodType string

const (
	PeriodRegulation PeriodType = "REG"
	PeriodOvertime   PeriodType = "OT"
	PeriodShootout   PeriodType = "SO"
)

// ParsePeriodType parses a period type code.
func ParsePeriodType(s string) (PeriodType, error) {
	switch s {
	case "REG":
		return PeriodRegulation, nil
	case "OT":
		return PeriodOvertime, nil
	case "SO":
		return PeriodShootout, nil
	default:
		return "", fmt.Errorf("unknown period type: %q", s)
	}
}

// ZoneCode marks the ice zone an event happened in, relative to the
// event owner's team.
type ZoneCode string

const (
	ZoneOffensive ZoneCode = "O"
	ZoneDefensive ZoneCode = "D"
	ZoneNeutral   ZoneCode = "N"
)

// GoalieDecision is the win/loss/OT-loss credit for a goalie.
type GoalieDecision string

const (
	DecisionWin          GoalieDecision = "W"
	DecisionLoss         GoalieDecision = "L"
	DecisionOvertimeLoss GoalieDecision = "O"
)
