package cards

import (
	"encoding/json"
	"fmt"
	"strings"
)

// A card's suit.
type Suit int8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var Suits = []Suit{
	Hearts,
	Diamonds,
	Clubs,
	Spades,
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	}
	panic("Unknown Suit")
}

func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case "H":
		return Hearts, nil
	case "D":
		return Diamonds, nil
	case "C":
		return Clubs, nil
	case "S":
		return Spades, nil
	}
	return Hearts, fmt.Errorf("no such suit '%s'", s)
}

func (s Suit) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Suit) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return err
	}
	parsed, err := ParseSuit(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// A card's rank: 7,8,9,J,Q,K,10,A, declared in increasing trick strength.
// The ten outranks the king; only the ace beats it.
type Rank int8

const (
	Seven Rank = iota
	Eight
	Nine
	Jack
	Queen
	King
	Ten
	Ace
)

var Ranks = []Rank{
	Seven,
	Eight,
	Nine,
	Jack,
	Queen,
	King,
	Ten,
	Ace,
}

func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ten:
		return "10"
	case Ace:
		return "A"
	}
	panic("Unknown Rank")
}

func ParseRank(r string) (Rank, error) {
	switch strings.ToUpper(r) {
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "10", "T":
		return Ten, nil
	case "A":
		return Ace, nil
	}
	return Seven, fmt.Errorf("no such rank '%s'", r)
}

func (r Rank) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rank) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return err
	}
	parsed, err := ParseRank(token)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Points returns the rank's card-point value.
func (r Rank) Points() int {
	switch r {
	case Ace:
		return 11
	case Ten:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	default:
		return 0
	}
}

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) Points() int {
	return c.Rank.Points()
}

// A brisque is an ace or a ten.
func (c Card) IsBrisque() bool {
	return c.Rank == Ace || c.Rank == Ten
}

func ParseCard(c string) (Card, error) {
	if len(c) < 2 {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	r, rerr := ParseRank(c[:len(c)-1])
	s, serr := ParseSuit(c[len(c)-1:])
	if rerr != nil || serr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{r, s}, nil
}

// Beats reports whether c1 takes a trick over c2 with the given trump suit.
// Cards of the same suit compare by rank strength; otherwise only a trump
// beats. Comparing two distinct non-trump suits is not meaningful here:
// the card led keeps such a trick and Beats is not consulted.
func (c1 Card) Beats(c2 Card, trump Suit) bool {
	if c1.Suit == c2.Suit {
		return c1.Rank > c2.Rank
	}
	return c1.Suit == trump
}

func (c1 Card) LessThan(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.Rank < c2.Rank
	}
	return c1.Suit < c2.Suit
}
