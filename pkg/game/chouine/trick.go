package chouine

import (
	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
)

// One played card with the seat that played it.
type Play struct {
	By   game.Seat  `json:"by"`
	Card cards.Card `json:"card"`
}

// TrickRecord describes a completed trick. Kept for display only;
// rule enforcement never reads it back.
type TrickRecord struct {
	Lead       Play      `json:"lead"`
	Reply      Play      `json:"reply"`
	Winner     game.Seat `json:"winner"`
	Points     int       `json:"points"`
	TalonCount int       `json:"talon_count"`
}

// resolveTrick decides a trick between a lead and a reply card.
// A reply of the lead's suit wins only by outranking it. A reply of a
// different suit wins only when it is a trump cutting a non-trump lead;
// any other discard leaves the trick with the leader. The two cards'
// points always go whole to the winner.
func resolveTrick(lead, reply cards.Card, trump cards.Suit) (replyWins bool, points int) {
	return reply.Beats(lead, trump), lead.Points() + reply.Points()
}
