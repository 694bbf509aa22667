package chouine

import (
	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
)

// HandsView scopes hand visibility to the snapshot's viewer: the
// viewer's own cards under "player", only a count for the other seat.
type HandsView struct {
	Player        cards.Cards `json:"player"`
	OpponentCount int         `json:"opponent_count"`
}

// AnnouncedView lists each seat's consumed announce kinds.
type AnnouncedView struct {
	Player   []string `json:"player"`
	Opponent []string `json:"opponent"`
}

// Snapshot is the full client-facing view of one game, scoped to a
// viewer seat. Optional facts are pointers and absent from the JSON
// when they do not apply.
type Snapshot struct {
	GameID         string           `json:"game_id"`
	Phase          game.GamePhase   `json:"phase"`
	Trump          *cards.Card      `json:"trump,omitempty"`
	TrumpSuit      cards.Suit       `json:"trump_suit"`
	TalonCount     int              `json:"talon_count"`
	Leader         game.Seat        `json:"leader"`
	YourTurn       bool             `json:"your_turn"`
	Hands          HandsView        `json:"hands"`
	CurrentLead    *Play            `json:"current_lead,omitempty"`
	LastTrick      *TrickRecord     `json:"last_trick,omitempty"`
	Scores         Score            `json:"scores"`
	FinalScore     *Score           `json:"final_score,omitempty"`
	IsOver         bool             `json:"is_over"`
	Winner         string           `json:"winner,omitempty"`
	CanExchange7   bool             `json:"can_exchange7"`
	AuSeptRequired bool             `json:"au_sept_required"`
	Announced      AnnouncedView    `json:"announced"`
	LastAnnounce   *AnnounceOutcome `json:"last_announce,omitempty"`
}

func announcedStrings(ks []AnnounceKind) []string {
	ss := []string{}
	for _, k := range ks {
		ss = append(ss, k.String())
	}
	return ss
}

// Snapshot renders the game for the given viewer seat. The viewer sees
// its own hand and everything public; the other hand only by size.
func (g *Game) Snapshot(viewer game.Seat) *Snapshot {
	s := &Snapshot{
		GameID:     g.id,
		Phase:      g.phase,
		TrumpSuit:  g.trumpSuit,
		TalonCount: len(g.talon),
		Leader:     g.leader,
		YourTurn:   g.phase == game.Playing && g.NextToPlay() == viewer,
		Hands: HandsView{
			Player:        g.Hand(viewer),
			OpponentCount: len(g.hands[viewer.Other()]),
		},
		LastTrick:      g.lastTrick,
		Scores:         g.RunningScore(),
		FinalScore:     g.final,
		IsOver:         g.IsOver(),
		Winner:         g.winner.String(),
		CanExchange7:   g.CanExchange(viewer),
		AuSeptRequired: g.AuSeptRequired(),
		Announced: AnnouncedView{
			Player:   announcedStrings(g.Announced(game.Player)),
			Opponent: announcedStrings(g.Announced(game.Opponent)),
		},
		LastAnnounce: g.lastAnnounce,
	}
	if trump, visible := g.TrumpCard(); visible {
		s.Trump = &trump
	}
	if lead, open := g.CurrentLead(); open {
		s.CurrentLead = &lead
	}
	return s
}
