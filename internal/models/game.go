package models

// GameState represents where the session is in a round
type GameState string

const (
	// GameStateSetup indicates the player is choosing dice and a prediction
	GameStateSetup GameState = "setup"

	// GameStateRolling indicates the dice are in the air and the result is pending
	GameStateRolling GameState = "rolling"

	// GameStateResult indicates the round has been resolved and is being shown
	GameStateResult GameState = "result"
)

// IsSetup returns true while the round can still be configured
func (s GameState) IsSetup() bool {
	return s == GameStateSetup
}

// IsRolling returns true while a roll is waiting to be resolved
func (s GameState) IsRolling() bool {
	return s == GameStateRolling
}

// IsResult returns true once the round outcome is available
func (s GameState) IsResult() bool {
	return s == GameStateResult
}
