package chouine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
)

// An announce kind. Each kind may be credited once per seat per round.
type AnnounceKind int8

const (
	Mariage AnnounceKind = iota
	Tierce
	Quarteron
	Quinte
	Chouine
)

var AnnounceKinds = []AnnounceKind{
	Mariage,
	Tierce,
	Quarteron,
	Quinte,
	Chouine,
}

func (k AnnounceKind) String() string {
	switch k {
	case Mariage:
		return "mariage"
	case Tierce:
		return "tierce"
	case Quarteron:
		return "quarteron"
	case Quinte:
		return "quinte"
	case Chouine:
		return "chouine"
	}
	panic("Unknown AnnounceKind")
}

func ParseAnnounceKind(k string) (AnnounceKind, error) {
	switch strings.ToLower(k) {
	case "mariage", "marriage":
		return Mariage, nil
	case "tierce":
		return Tierce, nil
	case "quarteron":
		return Quarteron, nil
	case "quinte":
		return Quinte, nil
	case "chouine":
		return Chouine, nil
	}
	return Mariage, fmt.Errorf("no such announce kind '%s'", k)
}

func (k AnnounceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *AnnounceKind) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return err
	}
	parsed, err := ParseAnnounceKind(token)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// An Announce is a declaration offered alongside a card play.
// Suit is required for suit-qualified kinds and ignored otherwise.
type Announce struct {
	Kind AnnounceKind `json:"type"`
	Suit *cards.Suit  `json:"suit,omitempty"`
}

// AnnounceOutcome reports how an announce fared. A rejected announce
// never blocks the card play it accompanied.
type AnnounceOutcome struct {
	By       game.Seat    `json:"by"`
	Kind     AnnounceKind `json:"type"`
	Suit     *cards.Suit  `json:"suit,omitempty"`
	Accepted bool         `json:"accepted"`
	Points   int          `json:"points"`
	Reason   string       `json:"reason,omitempty"`
}

// Err returns the rule violation for a rejected outcome, nil otherwise.
func (o *AnnounceOutcome) Err() error {
	if o == nil || o.Accepted {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIllegalAnnounce, o.Reason)
}

// announceRule is one fixed entry of the rule table: the combination's
// value (doubled form for the trump suit where suit-qualified), whether
// a suit parameter is meaningful, whether the combination is shown to
// the table (display only), whether declaring it ends the round, and
// the predicate over the declarer's hand.
type announceRule struct {
	points        int
	trumpPoints   int
	suitQualified bool
	showable      bool
	terminal      bool
	matches       func(hand cards.Cards, suit cards.Suit) bool
}

var announceRules = map[AnnounceKind]announceRule{
	Mariage:   {20, 40, true, true, false, hasMariage},
	Tierce:    {30, 60, true, true, false, hasTierce},
	Quarteron: {40, 40, false, true, false, hasQuarteron},
	Quinte:    {50, 50, false, true, false, hasQuinte},
	Chouine:   {0, 0, true, true, true, hasChouine},
}

// AnnounceValue returns the points the announce would score against
// the given trump suit.
func AnnounceValue(a Announce, trump cards.Suit) int {
	rule, ok := announceRules[a.Kind]
	if !ok {
		return 0
	}
	if rule.suitQualified && a.Suit != nil && *a.Suit == trump {
		return rule.trumpPoints
	}
	return rule.points
}

// Terminal reports whether declaring the kind ends the round.
func (k AnnounceKind) Terminal() bool {
	return announceRules[k].terminal
}

// Showable reports whether the kind is laid out for display.
func (k AnnounceKind) Showable() bool {
	return announceRules[k].showable
}

// AvailableAnnounces lists every announce the seat could have credited
// right now: unconsumed kinds whose predicate holds over the current
// hand, one entry per matching kind and suit.
func (g *Game) AvailableAnnounces(seat game.Seat) []Announce {
	var as []Announce
	hand := g.hands[seat]
	for _, k := range AnnounceKinds {
		if g.announced[seat][k] {
			continue
		}
		rule := announceRules[k]
		if !rule.suitQualified {
			if rule.matches(hand, 0) {
				as = append(as, Announce{Kind: k})
			}
			continue
		}
		for _, s := range cards.Suits {
			if rule.matches(hand, s) {
				suit := s
				as = append(as, Announce{Kind: k, Suit: &suit})
			}
		}
	}
	return as
}

func suitedRanks(hand cards.Cards, suit cards.Suit, ranks ...cards.Rank) bool {
	suited := hand.FilterBySuit(suit)
	for _, r := range ranks {
		if !suited.ContainsRank(r) {
			return false
		}
	}
	return true
}

// King and queen of the suit.
func hasMariage(hand cards.Cards, suit cards.Suit) bool {
	return suitedRanks(hand, suit, cards.King, cards.Queen)
}

// King, queen and jack of the suit.
func hasTierce(hand cards.Cards, suit cards.Suit) bool {
	return suitedRanks(hand, suit, cards.King, cards.Queen, cards.Jack)
}

// Four cards of one rank, one per suit.
func hasQuarteron(hand cards.Cards, _ cards.Suit) bool {
	for _, r := range cards.Ranks {
		if hand.Count(func(c cards.Card) bool { return c.Rank == r }) == len(cards.Suits) {
			return true
		}
	}
	return false
}

// Five brisques anywhere in hand.
func hasQuinte(hand cards.Cards, _ cards.Suit) bool {
	return hand.CountBrisques() >= 5
}

// Ace, ten, king, queen and jack of the suit. Wins the round outright.
func hasChouine(hand cards.Cards, suit cards.Suit) bool {
	return suitedRanks(hand, suit, cards.Ace, cards.Ten, cards.King, cards.Queen, cards.Jack)
}
