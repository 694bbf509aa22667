package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mpsalisbury/chouine/pkg/game"
	"github.com/mpsalisbury/chouine/pkg/game/chouine"
	"github.com/mpsalisbury/chouine/pkg/game/chouine/player"
)

var (
	numGames     = flag.Int("n", 100, "Number of rounds to play")
	playerType   = flag.String("player", "basic", "Strategy for the player seat (basic, random)")
	opponentType = flag.String("opponent", "random", "Strategy for the opponent seat (basic, random)")
	verbose      = flag.Bool("verbose", false, "Print each round's final score")
)

func main() {
	flag.Parse()
	if err := runGames(); err != nil {
		log.Fatal(err)
	}
}

func runGames() error {
	strategies := map[game.Seat]player.Strategy{}
	for seat, name := range map[game.Seat]string{game.Player: *playerType, game.Opponent: *opponentType} {
		s, err := player.NewStrategyFromFlag(name)
		if err != nil {
			return err
		}
		strategies[seat] = s
	}

	wins := map[chouine.RoundWinner]int{}
	totals := map[game.Seat]int{}
	for i := 0; i < *numGames; i++ {
		g := chouine.NewGame(fmt.Sprintf("autoplay-%d", i))
		if err := playRound(g, strategies); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		wins[g.Winner()]++
		if fs := g.FinalScore(); fs != nil {
			totals[game.Player] += fs.Player.Total
			totals[game.Opponent] += fs.Opponent.Total
			if *verbose {
				fmt.Printf("round %d: %s wins, player %d - opponent %d\n",
					i, g.Winner(), fs.Player.Total, fs.Opponent.Total)
			}
		}
	}

	fmt.Printf("%s (player) vs %s (opponent), %d rounds\n", *playerType, *opponentType, *numGames)
	fmt.Printf("player wins:   %d\n", wins[chouine.PlayerWins])
	fmt.Printf("opponent wins: %d\n", wins[chouine.OpponentWins])
	fmt.Printf("draws:         %d\n", wins[chouine.Drawn])
	fmt.Printf("avg score: player %.1f, opponent %.1f\n",
		float64(totals[game.Player])/float64(*numGames),
		float64(totals[game.Opponent])/float64(*numGames))
	return nil
}

func playRound(g *chouine.Game, strategies map[game.Seat]player.Strategy) error {
	for !g.IsOver() {
		seat := g.NextToPlay()
		s := strategies[seat]
		if lead, open := g.CurrentLead(); open {
			announce := s.ChooseAnnounce(g, seat)
			card := s.ChooseFollow(g, seat, lead.Card)
			if _, err := g.Follow(seat, card, announce); err != nil {
				return err
			}
			continue
		}
		if s.WantsExchange(g, seat) {
			if err := g.ExchangeTrumpSeven(seat); err != nil {
				return err
			}
		}
		announce := s.ChooseAnnounce(g, seat)
		card := s.ChooseLead(g, seat)
		if _, err := g.Lead(seat, card, announce, true); err != nil {
			return err
		}
	}
	return nil
}
