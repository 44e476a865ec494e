package combat

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// FighterID identifies a fighter for its whole lifetime. Two fighters are the
// same fighter iff their ids are equal.
type FighterID = uuid.UUID

// Event types emitted by the arena.
const (
	EventAttack     = "Attack"
	EventDeath      = "Death"
	EventKnockedOut = "KnockedOut"
	EventStalemate  = "Stalemate"
	EventTurnLimit  = "TurnLimit"
)

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Snapshot is a read-only copy of a fighter's observable state.
type Snapshot struct {
	ID     FighterID `json:"id"`
	Name   string    `json:"name"`
	Health int       `json:"health"`
	Alive  bool      `json:"alive"`
}

// Result summarizes a finished battle. Fighter state lives on in the arena.
type Result struct {
	Turns        int         `json:"turns"`
	Survivors    []Snapshot  `json:"survivors"`
	Winner       *Snapshot   `json:"winner,omitempty"`
	Deaths       []FighterID `json:"deaths,omitempty"`
	Stalemate    bool        `json:"stalemate,omitempty"`
	TurnLimitHit bool        `json:"turn_limit_hit,omitempty"`
	Events       []Event     `json:"events,omitempty"`
}

var (
	ErrNoFighters      = errors.New("arena has no fighters")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrUnknownWeapon   = errors.New("unknown weapon")
	ErrUnknownArmor    = errors.New("unknown armor")
)

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
