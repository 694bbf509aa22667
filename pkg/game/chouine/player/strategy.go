// Package player provides opponent strategies for the chouine engine.
// A strategy only ever returns moves that are legal for the given
// game; the engine re-checks legality regardless.
package player

import (
	"fmt"

	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
	"github.com/mpsalisbury/chouine/pkg/game/chouine"
)

type Strategy interface {
	// ChooseLead picks the card to open a trick with.
	ChooseLead(g *chouine.Game, seat game.Seat) cards.Card
	// ChooseFollow picks the reply to the given lead card.
	ChooseFollow(g *chouine.Game, seat game.Seat, lead cards.Card) cards.Card
	// ChooseAnnounce picks an announce to declare with the next play,
	// or nil to stay quiet.
	ChooseAnnounce(g *chouine.Game, seat game.Seat) *chouine.Announce
	// WantsExchange reports whether to exchange the trump seven now.
	WantsExchange(g *chouine.Game, seat game.Seat) bool
}

// StrategyNames lists the accepted strategy flag values.
var StrategyNames = []string{"basic", "random"}

// NewStrategyFromFlag constructs a strategy from a flag value.
func NewStrategyFromFlag(name string) (Strategy, error) {
	switch name {
	case "", "basic":
		return NewBasicStrategy(), nil
	case "random":
		return NewRandomStrategy(), nil
	default:
		return nil, fmt.Errorf("invalid strategy type %s", name)
	}
}
