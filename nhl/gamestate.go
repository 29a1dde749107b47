package nhl

import "fmt"

// GameState is the lifecycle state of a game as the API reports it.
type GameState string

const (
	GameStateFuture    GameState = "FUT"
	GameStatePreGame   GameState = "PRE"
	GameStateLive      GameState = "LIVE"
	GameStateFinal     GameState = "FINAL"
	GameStateOff       GameState = "OFF"
	GameStatePostponed GameState = "PPD"
	GameStateSuspended GameState = "SUSP"
	GameStateCritical  GameState = "CRIT"
)

// ParseGameState parses a game state code, case sensitively.
func ParseGameState(s string) (GameState, error) {
	switch GameState(s) {
	case GameStateFuture, GameStatePreGame, GameStateLive, GameStateFinal,
		GameStateOff, GameStatePostponed, GameStateSuspended, GameStateCritical:
		return GameState(s), nil
	default:
		return "", fmt.Errorf("unknown game state: %q", s)
	}
}

// HasStarted reports whether the game is live or completed.
func (s GameState) HasStarted() bool {
	return s.IsLive() || s.IsFinal()
}

// IsFinal reports whether the game is completed.
func (s GameState) IsFinal() bool {
	return s == GameStateFinal || s == GameStateOff
}

// IsLive reports whether the game is in progress. CRIT is the API's
// close-game marker near the end of regulation.
func (s GameState) IsLive() bool {
	return s == GameStateLive || s == GameStateCritical
}

// IsScheduled reports whether the game has not started yet.
func (s GameState) IsScheduled() bool {
	return s == GameStateFuture || s == GameStatePreGame
}
