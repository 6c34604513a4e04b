package progress

import (
	"fmt"
)

// Record is a player's cumulative progression state.
// Field order matters: it is the order of the JSON body returned to callers.
type Record struct {
	PlayerName string `json:"playerName" dynamodbav:"playerName" bson:"_id" db:"player_name"`
	Experience int64  `json:"experience" dynamodbav:"experience" bson:"experience" db:"experience"`
	Wins       int64  `json:"wins" dynamodbav:"wins" bson:"wins" db:"wins"`
	Level      int64  `json:"level" dynamodbav:"level" bson:"level" db:"level"`
}

// Default returns the zero-progress record for a player with no stored history.
// It is never written back to the store.
func Default(playerName string) Record {
	return Record{PlayerName: playerName}
}

// LookupError reports a failed point lookup against the progression store.
type LookupError struct {
	PlayerName string
	Err        error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup player progress %q: %v", e.PlayerName, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupError wraps a backend failure for the given player.
func NewLookupError(playerName string, err error) error {
	return &LookupError{PlayerName: playerName, Err: err}
}
