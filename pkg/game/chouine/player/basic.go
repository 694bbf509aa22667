package player

import (
	"math/rand"
	"time"

	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
	"github.com/mpsalisbury/chouine/pkg/game/chouine"
)

// BasicStrategy implements simple heuristics: win tricks cheaply,
// dump low cards otherwise, hold brisques and trumps for the closing
// phase, take every announce and the seven exchange when available.

func NewBasicStrategy() Strategy {
	return &basicStrategy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

type basicStrategy struct {
	rng *rand.Rand
}

func (s *basicStrategy) ChooseLead(g *chouine.Game, seat game.Seat) cards.Card {
	legal := g.LegalMoves(seat)
	trump := g.TrumpSuit()

	if g.TalonCount() == 0 {
		// Closing phase: lead strength, trumps and brisques first.
		return bestBy(legal, func(c cards.Card) float64 {
			score := float64(c.Rank) * 0.1
			if c.Suit == trump {
				score += 2
			}
			if c.IsBrisque() {
				score += 3
			}
			return score
		})
	}
	// While drawing, chase tricks with brisques but keep trumps cheap.
	return bestBy(legal, func(c cards.Card) float64 {
		score := float64(c.Rank) * 0.05
		if c.IsBrisque() {
			score += 2
		}
		if c.Suit == trump {
			score += 0.5
		}
		score += s.rng.Float64() * 0.01
		return score
	})
}

func (s *basicStrategy) ChooseFollow(g *chouine.Game, seat game.Seat, lead cards.Card) cards.Card {
	legal := g.LegalMoves(seat)
	trump := g.TrumpSuit()

	// Take the trick with the cheapest winner if we can.
	winning := legal.Filter(func(c cards.Card) bool { return c.Beats(lead, trump) })
	if len(winning) > 0 {
		return bestBy(winning, func(c cards.Card) float64 {
			return -(float64(c.Points())*10 + float64(c.Rank))
		})
	}
	// Otherwise dump: non-brisque, non-trump, low value first.
	return bestBy(legal, func(c cards.Card) float64 {
		score := -(float64(c.Points())*10 + float64(c.Rank))
		if c.IsBrisque() {
			score -= 1000
		}
		if c.Suit == trump {
			score -= 100
		}
		return score
	})
}

func (s *basicStrategy) ChooseAnnounce(g *chouine.Game, seat game.Seat) *chouine.Announce {
	available := g.AvailableAnnounces(seat)
	if len(available) == 0 {
		return nil
	}
	trump := g.TrumpSuit()
	best := available[0]
	bestValue := announceRank(best, trump)
	for _, a := range available[1:] {
		if v := announceRank(a, trump); v > bestValue {
			best, bestValue = a, v
		}
	}
	return &best
}

// A terminal announce outranks any point value.
func announceRank(a chouine.Announce, trump cards.Suit) int {
	if a.Kind.Terminal() {
		return 1 << 16
	}
	return chouine.AnnounceValue(a, trump)
}

func (s *basicStrategy) WantsExchange(g *chouine.Game, seat game.Seat) bool {
	return g.CanExchange(seat)
}

func bestBy(cs cards.Cards, score func(cards.Card) float64) cards.Card {
	best := cs[0]
	bestScore := score(best)
	for _, c := range cs[1:] {
		if v := score(c); v > bestScore {
			best, bestScore = c, v
		}
	}
	return best
}
