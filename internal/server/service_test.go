package server

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
	"github.com/mpsalisbury/chouine/pkg/game/chouine"
)

func newTestService() *GameService {
	return NewGameService(zap.NewNop().Sugar())
}

func (s *GameService) entry(t *testing.T, gameID string) *gameEntry {
	t.Helper()
	e, err := s.lookup(gameID)
	if err != nil {
		t.Fatalf("lookup %s: %v", gameID, err)
	}
	return e
}

func TestNewGameSnapshot(t *testing.T) {
	s := newTestService()
	snap := s.NewGame()
	if snap.GameID == "" {
		t.Error("new game should carry an id")
	}
	if len(snap.Hands.Player) != 6 || snap.Hands.OpponentCount != 6 {
		t.Errorf("hands = %d / %d, want 6 / 6", len(snap.Hands.Player), snap.Hands.OpponentCount)
	}
	if snap.TalonCount != 20 {
		t.Errorf("talon = %d, want 20", snap.TalonCount)
	}
	if !snap.YourTurn {
		t.Error("the player leads the first trick")
	}
	if snap.IsOver {
		t.Error("fresh game should be in play")
	}
	again, err := s.Snapshot(snap.GameID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if again.GameID != snap.GameID {
		t.Errorf("snapshot id = %s, want %s", again.GameID, snap.GameID)
	}
}

func TestUnknownGame(t *testing.T) {
	s := newTestService()
	if _, err := s.Snapshot("nope"); err == nil {
		t.Error("Snapshot of unknown game should fail")
	}
	if _, err := s.ExchangeTrumpSeven("nope"); err == nil {
		t.Error("ExchangeTrumpSeven on unknown game should fail")
	}
	if _, err := s.Lead("nope", cards.Cah, nil, false); err == nil {
		t.Error("Lead on unknown game should fail")
	}
}

func TestLeadRunsOpponentReply(t *testing.T) {
	s := newTestService()
	snap := s.NewGame()
	reply, err := s.Lead(snap.GameID, snap.Hands.Player[0], nil, false)
	if err != nil {
		t.Fatalf("Lead: %v", err)
	}
	after := reply.Snapshot
	// The opponent followed and both seats drew back up.
	if after.LastTrick == nil {
		t.Fatal("opponent should have completed the trick")
	}
	if after.TalonCount != 18 {
		t.Errorf("talon = %d after first trick, want 18", after.TalonCount)
	}
	if len(after.Hands.Player) != 6 || after.Hands.OpponentCount != 6 {
		t.Errorf("hands = %d / %d after draw, want 6 / 6", len(after.Hands.Player), after.Hands.OpponentCount)
	}
	if !after.YourTurn {
		t.Error("the machine should be waiting on the player again")
	}
}

func TestIllegalMoveKeepsState(t *testing.T) {
	s := newTestService()
	snap := s.NewGame()
	held := snap.Hands.Player
	unheld := cards.MakeDeck().Filter(func(c cards.Card) bool {
		return !held.ContainsCard(c)
	})
	reply, err := s.Lead(snap.GameID, unheld[0], nil, false)
	if !errors.Is(err, chouine.ErrIllegalMove) {
		t.Fatalf("lead with unheld card = %v, want ErrIllegalMove", err)
	}
	if reply == nil || reply.Snapshot == nil {
		t.Fatal("rejected move should still return the current snapshot")
	}
	if reply.Snapshot.TalonCount != 20 || len(reply.Snapshot.Hands.Player) != 6 {
		t.Error("rejected move must not advance the game")
	}
}

func TestFullGameThroughService(t *testing.T) {
	s := newTestService()
	snap := s.NewGame()
	e := s.entry(t, snap.GameID)

	steps := 0
	for !e.game.IsOver() {
		if steps++; steps > 100 {
			t.Fatal("game did not terminate")
		}
		legal := e.game.LegalMoves(game.Player)
		if len(legal) == 0 {
			t.Fatalf("machine is not waiting on the player: %s to play", e.game.NextToPlay())
		}
		var err error
		if _, open := e.game.CurrentLead(); open {
			_, err = s.Follow(snap.GameID, legal[0], nil)
		} else {
			_, err = s.Lead(snap.GameID, legal[0], nil, true)
		}
		if err != nil {
			t.Fatalf("move %d: %v", steps, err)
		}
	}

	final, err := s.Snapshot(snap.GameID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !final.IsOver {
		t.Error("final snapshot should be terminal")
	}
	if final.FinalScore == nil {
		t.Fatal("final snapshot missing the score breakdown")
	}
	for _, ss := range []chouine.SeatScore{final.FinalScore.Player, final.FinalScore.Opponent} {
		if ss.Total != ss.Cards+ss.Announces+ss.DixDeDer {
			t.Errorf("score breakdown does not add up: %+v", ss)
		}
	}
	if final.Winner == "" {
		t.Error("completed game should name a winner or a draw")
	}
	if final.YourTurn {
		t.Error("no seat is to play once the round is over")
	}
}
