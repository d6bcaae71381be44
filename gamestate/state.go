// Package gamestate models the JSON snapshots Dota 2 emits over game state
// integration. Every section is optional: the game only includes the
// sections enabled in the data block of its gamestate_integration_*.cfg
// file, and some (like draft) only carry data while spectating.
package gamestate

import (
	"errors"
	"io"

	json "github.com/json-iterator/go"
)

type GameState struct {
	Provider  *Provider          `json:"provider"`
	Map       *Map               `json:"map"`
	Player    *Player            `json:"player"`
	Hero      *Hero              `json:"hero"`
	Abilities Abilities          `json:"abilities"`
	Items     Items              `json:"items"`
	Buildings map[Team]Buildings `json:"buildings"`
	Wearables Wearables          `json:"wearables"`
	// Draft is populated while spectating drafts only and its shape varies,
	// so it is kept raw.
	Draft json.RawMessage `json:"draft"`
	Auth  *Auth            `json:"auth"`
}

// Auth carries the opaque token configured in the game's .cfg file. The
// server passes it through; verifying it is up to the handler.
type Auth struct {
	Token string `json:"token"`
}

// Parse decodes a raw snapshot.
func Parse(event []byte) (*GameState, error) {
	state := new(GameState)

	iterator := json.ConfigDefault.BorrowIterator(event)
	iterator.ReadVal(state)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return state, nil
}
