// Package server owns the running games and drives the automated
// opponent. Each game is guarded by its own mutex; intents on one game
// are serialized, distinct games proceed in parallel.
package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
	"github.com/mpsalisbury/chouine/pkg/game/chouine"
	"github.com/mpsalisbury/chouine/pkg/game/chouine/player"
)

type GameService struct {
	mu       sync.Mutex // guards games
	games    map[string]*gameEntry
	log      *zap.SugaredLogger
	strategy func() player.Strategy // opponent policy per new game
}

type gameEntry struct {
	mu       sync.Mutex // serializes intents on this game
	game     *chouine.Game
	strategy player.Strategy
}

func NewGameService(log *zap.SugaredLogger) *GameService {
	return &GameService{
		games:    make(map[string]*gameEntry),
		log:      log,
		strategy: player.NewBasicStrategy,
	}
}

// MoveReply carries the post-move snapshot plus the human announce
// outcome, which succeeds or fails independently of the card play.
type MoveReply struct {
	Snapshot *chouine.Snapshot
	Announce *chouine.AnnounceOutcome
}

// NewGame starts a round against a fresh opponent and returns the
// player-scoped snapshot.
func (s *GameService) NewGame() *chouine.Snapshot {
	id := uuid.NewString()
	e := &gameEntry{
		game:     chouine.NewGame(id),
		strategy: s.strategy(),
	}
	s.mu.Lock()
	s.games[id] = e
	s.mu.Unlock()
	s.log.Infow("game created", "game", id, "trump", e.game.TrumpSuit())
	return e.game.Snapshot(game.Player)
}

// Snapshot returns the current player-scoped view of a game.
func (s *GameService) Snapshot(gameID string) (*chouine.Snapshot, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Snapshot(game.Player), nil
}

// Lead plays the player's lead card, then lets the opponent follow
// (and lead on, if it takes the trick).
func (s *GameService) Lead(gameID string, card cards.Card, announce *chouine.Announce, auSept bool) (*MoveReply, error) {
	return s.playerMove(gameID, func(e *gameEntry) (*chouine.MoveResult, error) {
		return e.game.Lead(game.Player, card, announce, auSept)
	})
}

// Follow plays the player's reply to the open trick, then lets the
// opponent lead if it won.
func (s *GameService) Follow(gameID string, card cards.Card, announce *chouine.Announce) (*MoveReply, error) {
	return s.playerMove(gameID, func(e *gameEntry) (*chouine.MoveResult, error) {
		return e.game.Follow(game.Player, card, announce)
	})
}

// ExchangeTrumpSeven performs the player's trump-seven exchange.
func (s *GameService) ExchangeTrumpSeven(gameID string) (*chouine.Snapshot, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.game.ExchangeTrumpSeven(game.Player); err != nil {
		return e.game.Snapshot(game.Player), err
	}
	s.log.Infow("trump seven exchanged", "game", gameID, "by", game.Player)
	return e.game.Snapshot(game.Player), nil
}

func (s *GameService) lookup(gameID string) (*gameEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("unknown game %s", gameID)
	}
	return e, nil
}

func (s *GameService) playerMove(gameID string, move func(*gameEntry) (*chouine.MoveResult, error)) (*MoveReply, error) {
	e, err := s.lookup(gameID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := move(e)
	if err != nil {
		return &MoveReply{Snapshot: e.game.Snapshot(game.Player)}, err
	}
	reply := &MoveReply{Announce: result.Announce}
	if err := s.runOpponent(e); err != nil {
		s.log.Errorw("opponent move failed", "game", gameID, "err", err)
		reply.Snapshot = e.game.Snapshot(game.Player)
		return reply, err
	}
	if e.game.IsOver() {
		s.log.Infow("game over", "game", gameID, "winner", e.game.Winner())
	}
	reply.Snapshot = e.game.Snapshot(game.Player)
	return reply, nil
}

// runOpponent advances the opponent until the machine waits on the
// player again or the round ends: it follows an open player lead and
// opens the next trick whenever it holds the lead.
func (s *GameService) runOpponent(e *gameEntry) error {
	g := e.game
	for !g.IsOver() && g.NextToPlay() == game.Opponent {
		if lead, open := g.CurrentLead(); open {
			announce := e.strategy.ChooseAnnounce(g, game.Opponent)
			card := e.strategy.ChooseFollow(g, game.Opponent, lead.Card)
			if _, err := g.Follow(game.Opponent, card, announce); err != nil {
				return fmt.Errorf("opponent follow %s: %w", card, err)
			}
			continue
		}
		if e.strategy.WantsExchange(g, game.Opponent) {
			if err := g.ExchangeTrumpSeven(game.Opponent); err != nil {
				return fmt.Errorf("opponent exchange: %w", err)
			}
			s.log.Infow("trump seven exchanged", "game", g.Id(), "by", game.Opponent)
		}
		announce := e.strategy.ChooseAnnounce(g, game.Opponent)
		card := e.strategy.ChooseLead(g, game.Opponent)
		if _, err := g.Lead(game.Opponent, card, announce, true); err != nil {
			return fmt.Errorf("opponent lead %s: %w", card, err)
		}
	}
	return nil
}
