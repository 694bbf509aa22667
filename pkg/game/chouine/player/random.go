package player

import (
	"math/rand"
	"time"

	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
	"github.com/mpsalisbury/chouine/pkg/game/chouine"
)

// Plays a random legal card, never announces, never exchanges.

func NewRandomStrategy() Strategy {
	return &randomStrategy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRandomStrategy returns a reproducible random strategy.
func NewSeededRandomStrategy(seed int64) Strategy {
	return &randomStrategy{rng: rand.New(rand.NewSource(seed))}
}

type randomStrategy struct {
	rng *rand.Rand
}

func (s *randomStrategy) pick(cs cards.Cards) cards.Card {
	return cs[s.rng.Intn(len(cs))]
}

func (s *randomStrategy) ChooseLead(g *chouine.Game, seat game.Seat) cards.Card {
	return s.pick(g.LegalMoves(seat))
}

func (s *randomStrategy) ChooseFollow(g *chouine.Game, seat game.Seat, lead cards.Card) cards.Card {
	return s.pick(g.LegalMoves(seat))
}

func (s *randomStrategy) ChooseAnnounce(g *chouine.Game, seat game.Seat) *chouine.Announce {
	return nil
}

func (s *randomStrategy) WantsExchange(g *chouine.Game, seat game.Seat) bool {
	return false
}
