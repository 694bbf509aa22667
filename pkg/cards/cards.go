package cards

import (
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

type Cards []Card

// MakeDeck returns the 32-card piquet deck in canonical order.
func MakeDeck() Cards {
	d := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			d = append(d, Card{r, s})
		}
	}
	return d
}

// NewShuffledDeck returns the full deck shuffled with the given seed.
// The same seed always yields the same ordering.
func NewShuffledDeck(seed int64) Cards {
	d := MakeDeck()
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
	return d
}

// NewDeck returns the full deck shuffled with a time-based seed.
func NewDeck() Cards {
	return NewShuffledDeck(time.Now().UnixNano())
}

// Deal splits a shuffled deck into two six-card hands and the talon.
// The thirteenth card is turned to fix trump; it stays in the talon as
// its bottom card and is the last card drawn.
func Deal(deck Cards) (handA, handB Cards, turned Card, talon Cards) {
	if len(deck) != len(Suits)*len(Ranks) {
		log.Fatalf("Can't deal from deck of %d cards", len(deck))
	}
	handA = deck[0:6].Copy()
	handB = deck[6:12].Copy()
	turned = deck[12]
	talon = make(Cards, 0, len(deck)-12)
	talon = append(talon, turned)
	talon = append(talon, deck[13:]...)
	return handA, handB, turned, talon
}

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

func (cs Cards) Equals(other Cards) bool {
	sorted := cs.Copy()
	sorted.Sort()
	otherSorted := other.Copy()
	otherSorted.Sort()
	return slices.Equal(sorted, otherSorted)
}

func (cs Cards) Contains(match func(Card) bool) bool {
	for _, c := range cs {
		if match(c) {
			return true
		}
	}
	return false
}

func (cs Cards) ContainsCard(c Card) bool {
	return cs.Contains(func(oc Card) bool { return oc == c })
}

func (cs Cards) ContainsSuit(s Suit) bool {
	return cs.Contains(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) ContainsRank(r Rank) bool {
	return cs.Contains(func(c Card) bool { return c.Rank == r })
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}
func (cs Cards) CountSuit(s Suit) int {
	return cs.Count(func(c Card) bool { return c.Suit == s })
}
func (cs Cards) CountBrisques() int {
	return cs.Count(Card.IsBrisque)
}

// Points sums the card-point values.
func (cs Cards) Points() int {
	p := 0
	for _, c := range cs {
		p += c.Points()
	}
	return p
}

func (cs Cards) Remove(c Card) Cards {
	for i, f := range cs {
		if f == c {
			copy(cs[i:], cs[i+1:])
			return cs[:len(cs)-1]
		}
	}
	return cs
}

func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].LessThan(cs[j])
	})
}

// Returns a card that is better than all other cards according to the better func (is c1 better than c2).
// If no cards are present, fatal error.
func (cs Cards) GetExtreme(better func(c1, c2 Card) bool) Card {
	if len(cs) == 0 {
		log.Fatal("Can't get extreme for empty list of cards")
	}
	best := cs[0]
	for _, c := range cs {
		if better(c, best) {
			best = c
		}
	}
	return best
}
func (cs Cards) Lowest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c1.Rank < c2.Rank })
}
func (cs Cards) Highest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c1.Rank > c2.Rank })
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterBySuit(suits ...Suit) Cards {
	return cs.Filter(func(c Card) bool {
		for _, s := range suits {
			if c.Suit == s {
				return true
			}
		}
		return false
	})
}

// FilterStrongerThan keeps cards of the same suit that outrank the target.
func (cs Cards) FilterStrongerThan(target Card) Cards {
	return cs.Filter(func(c Card) bool {
		return c.Suit == target.Suit && c.Rank > target.Rank
	})
}

func Combine(cardss ...Cards) Cards {
	var cs Cards
	for _, cards := range cardss {
		for _, c := range cards {
			cs = append(cs, c)
		}
	}
	return cs
}

func (cs Cards) SplitBySuit() map[Suit]Cards {
	cbs := make(map[Suit]Cards)
	for _, c := range cs {
		cbs[c.Suit] = append(cbs[c.Suit], c)
	}
	return cbs
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	cardStrings := cs.Strings()
	return strings.Join(cardStrings, " ")
}

func (cs Cards) HandString() string {
	cbs := cs.SplitBySuit()
	suitStrings := []string{}
	for _, s := range Suits {
		scs := cbs[s]
		if len(scs) > 0 {
			scs.Sort()
			suitStrings = append(suitStrings, scs.String())
		}
	}
	return strings.Join(suitStrings, "   ")
}

func ParseCards(cs []string) (Cards, error) {
	var cards Cards
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
