// Package chouine implements the rules of two-player chouine: the
// deal, the trick state machine, announces, the trump-seven exchange,
// the au-sept obligation and round scoring. It performs no I/O; the
// serving layer owns transport and opponent policy.
package chouine

import (
	"fmt"

	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game"
)

// RoundWinner identifies the outcome of a completed round.
type RoundWinner int8

const (
	NoWinner RoundWinner = iota
	PlayerWins
	OpponentWins
	Drawn
)

func (w RoundWinner) String() string {
	switch w {
	case PlayerWins:
		return "player"
	case OpponentWins:
		return "opponent"
	case Drawn:
		return "draw"
	default:
		return ""
	}
}

func seatWins(s game.Seat) RoundWinner {
	if s == game.Player {
		return PlayerWins
	}
	return OpponentWins
}

// MoveResult reports a successful lead or follow. The announce outcome
// travels separately from the card play: a rejected announce does not
// undo the move it accompanied.
type MoveResult struct {
	Trick    *TrickRecord
	Announce *AnnounceOutcome
}

// Game holds one round's full state. Not safe for concurrent use;
// callers serialize access per game.
type Game struct {
	id        string
	phase     game.GamePhase
	trumpSuit cards.Suit
	turned    cards.Card // visible trump-adjacent card, talon[0] while the talon lasts

	// talon[0] is the turned card; draws take from the other end,
	// so the turned card is the last card drawn.
	talon cards.Cards
	hands [2]cards.Cards // indexed by game.Seat

	leader      game.Seat
	currentLead *Play

	captured        [2]cards.Cards // cards taken in resolved tricks
	lastTrick       *TrickRecord
	lastTrickWinner *game.Seat

	announcePoints [2]int
	announced      [2]map[AnnounceKind]bool
	lastAnnounce   *AnnounceOutcome

	exchangeDone bool
	winner       RoundWinner
	final        *Score
}

// NewGame deals a fresh round from a time-seeded shuffle.
// The player seat leads the first trick.
func NewGame(id string) *Game {
	return NewGameFromDeck(id, cards.NewDeck())
}

// NewGameFromSeed deals a reproducible round: the same seed always
// yields the same hands, turned card and talon.
func NewGameFromSeed(id string, seed int64) *Game {
	return NewGameFromDeck(id, cards.NewShuffledDeck(seed))
}

// NewGameFromDeck deals from an explicit 32-card ordering.
func NewGameFromDeck(id string, deck cards.Cards) *Game {
	handP, handO, turned, talon := cards.Deal(deck)
	g := &Game{
		id:        id,
		phase:     game.Playing,
		trumpSuit: turned.Suit,
		turned:    turned,
		talon:     talon,
		leader:    game.Player,
	}
	g.hands[game.Player] = handP
	g.hands[game.Opponent] = handO
	for _, s := range game.Seats {
		g.announced[s] = make(map[AnnounceKind]bool)
	}
	return g
}

func (g *Game) Id() string            { return g.id }
func (g *Game) Phase() game.GamePhase { return g.phase }
func (g *Game) TrumpSuit() cards.Suit { return g.trumpSuit }
func (g *Game) Leader() game.Seat     { return g.leader }
func (g *Game) TalonCount() int       { return len(g.talon) }
func (g *Game) IsOver() bool          { return g.phase != game.Playing }
func (g *Game) Winner() RoundWinner   { return g.winner }
func (g *Game) ExchangeDone() bool    { return g.exchangeDone }

// TrumpCard returns the visible turned card; visible is false once the
// talon (turned card included) has been drawn out.
func (g *Game) TrumpCard() (c cards.Card, visible bool) {
	return g.turned, len(g.talon) > 0
}

// Hand returns a copy of the seat's current hand.
func (g *Game) Hand(seat game.Seat) cards.Cards {
	return g.hands[seat].Copy()
}

// CurrentLead returns the open trick's lead play, if a trick is open.
func (g *Game) CurrentLead() (Play, bool) {
	if g.currentLead == nil {
		return Play{}, false
	}
	return *g.currentLead, true
}

func (g *Game) LastTrick() *TrickRecord        { return g.lastTrick }
func (g *Game) LastAnnounce() *AnnounceOutcome { return g.lastAnnounce }

// FinalScore returns the terminal breakdown, or nil while playing.
func (g *Game) FinalScore() *Score { return g.final }

// Announced lists the announce kinds the seat has already been
// credited for this round.
func (g *Game) Announced(seat game.Seat) []AnnounceKind {
	var ks []AnnounceKind
	for _, k := range AnnounceKinds {
		if g.announced[seat][k] {
			ks = append(ks, k)
		}
	}
	return ks
}

// NextToPlay returns the seat the machine is waiting on.
func (g *Game) NextToPlay() game.Seat {
	if g.currentLead != nil {
		return g.currentLead.By.Other()
	}
	return g.leader
}

// AuSeptRequired reports whether a lead must carry the au-sept
// declaration: exactly two talon cards left and no exchange made.
func (g *Game) AuSeptRequired() bool {
	return len(g.talon) == 2 && !g.exchangeDone
}

// CanExchange reports whether the seat could exchange the trump seven
// for the turned card right now.
func (g *Game) CanExchange(seat game.Seat) bool {
	return !g.exchangeDone &&
		len(g.talon) > 0 &&
		g.hands[seat].ContainsCard(cards.Card{Rank: cards.Seven, Suit: g.trumpSuit})
}

// LegalMoves lists the cards the seat may play right now. While the
// talon holds cards there is no obligation and any held card is legal.
// Once the talon is out, a follower must follow suit if able, else
// trump if able, else may discard anything.
func (g *Game) LegalMoves(seat game.Seat) cards.Cards {
	if g.phase != game.Playing || g.NextToPlay() != seat {
		return nil
	}
	hand := g.hands[seat]
	if g.currentLead == nil || len(g.talon) > 0 {
		return hand.Copy()
	}
	if suited := hand.FilterBySuit(g.currentLead.Card.Suit); len(suited) > 0 {
		return suited
	}
	if trumps := hand.FilterBySuit(g.trumpSuit); len(trumps) > 0 {
		return trumps
	}
	return hand.Copy()
}

// Lead opens a trick. Legal only for the current leader with a held
// card, and only with the au-sept declaration when that gate is up.
// An accompanying announce is validated against the hand as held at
// this moment (played card included) and reported separately.
func (g *Game) Lead(seat game.Seat, card cards.Card, announce *Announce, auSept bool) (*MoveResult, error) {
	if g.phase != game.Playing {
		return nil, fmt.Errorf("%w: round is over", ErrIllegalMove)
	}
	if g.currentLead != nil {
		return nil, fmt.Errorf("%w: trick already started", ErrIllegalMove)
	}
	if seat != g.leader {
		return nil, fmt.Errorf("%w: %s is not the leader", ErrIllegalMove, seat)
	}
	if !g.hands[seat].ContainsCard(card) {
		return nil, fmt.Errorf("%w: %s does not hold %s", ErrIllegalMove, seat, card)
	}
	if g.AuSeptRequired() && !auSept {
		return nil, fmt.Errorf("%w: talon is down to two cards", ErrAuSeptRequired)
	}

	result := &MoveResult{Announce: g.applyAnnounce(seat, announce)}
	if g.phase != game.Playing {
		// A chouine announce ends the round before the card is played.
		return result, nil
	}

	g.hands[seat] = g.hands[seat].Remove(card)
	g.currentLead = &Play{By: seat, Card: card}
	return result, nil
}

// Follow answers the open trick, resolves it, awards the points, draws
// both seats back up while the talon lasts (winner first) and passes
// the lead to the trick's winner.
func (g *Game) Follow(seat game.Seat, card cards.Card, announce *Announce) (*MoveResult, error) {
	if g.phase != game.Playing {
		return nil, fmt.Errorf("%w: round is over", ErrIllegalMove)
	}
	if g.currentLead == nil {
		return nil, fmt.Errorf("%w: no lead to follow", ErrIllegalMove)
	}
	if seat == g.currentLead.By {
		return nil, fmt.Errorf("%w: leader cannot follow own lead", ErrIllegalMove)
	}
	if !g.hands[seat].ContainsCard(card) {
		return nil, fmt.Errorf("%w: %s does not hold %s", ErrIllegalMove, seat, card)
	}
	if !g.LegalMoves(seat).ContainsCard(card) {
		return nil, fmt.Errorf("%w: %s must follow suit or trump", ErrIllegalMove, seat)
	}

	result := &MoveResult{Announce: g.applyAnnounce(seat, announce)}
	if g.phase != game.Playing {
		return result, nil
	}

	lead := *g.currentLead
	g.hands[seat] = g.hands[seat].Remove(card)

	replyWins, points := resolveTrick(lead.Card, card, g.trumpSuit)
	winner := lead.By
	if replyWins {
		winner = seat
	}
	g.captured[winner] = append(g.captured[winner], lead.Card, card)
	winnerSeat := winner
	g.lastTrickWinner = &winnerSeat
	g.leader = winner
	g.currentLead = nil

	if len(g.talon) > 0 {
		g.hands[winner] = append(g.hands[winner], g.drawFromTalon())
		if c, ok := g.drawFromTalonOk(); ok {
			g.hands[winner.Other()] = append(g.hands[winner.Other()], c)
		}
	}

	g.lastTrick = &TrickRecord{
		Lead:       lead,
		Reply:      Play{By: seat, Card: card},
		Winner:     winner,
		Points:     points,
		TalonCount: len(g.talon),
	}
	result.Trick = g.lastTrick

	if len(g.hands[game.Player]) == 0 && len(g.hands[game.Opponent]) == 0 {
		g.finish()
	}
	return result, nil
}

// ExchangeTrumpSeven swaps the seat's seven of trump for the turned
// card. Allowed once per round, only while the talon lasts.
func (g *Game) ExchangeTrumpSeven(seat game.Seat) error {
	if g.phase != game.Playing {
		return fmt.Errorf("%w: round is over", ErrIllegalExchange)
	}
	if g.exchangeDone {
		return fmt.Errorf("%w: already exchanged this round", ErrIllegalExchange)
	}
	if len(g.talon) == 0 {
		return fmt.Errorf("%w: talon is exhausted", ErrIllegalExchange)
	}
	seven := cards.Card{Rank: cards.Seven, Suit: g.trumpSuit}
	if !g.hands[seat].ContainsCard(seven) {
		return fmt.Errorf("%w: %s does not hold the %s", ErrIllegalExchange, seat, seven)
	}
	g.hands[seat] = append(g.hands[seat].Remove(seven), g.talon[0])
	g.talon[0] = seven
	g.turned = seven
	g.exchangeDone = true
	return nil
}

func (g *Game) drawFromTalon() cards.Card {
	c, _ := g.drawFromTalonOk()
	return c
}

func (g *Game) drawFromTalonOk() (cards.Card, bool) {
	if len(g.talon) == 0 {
		return cards.Card{}, false
	}
	c := g.talon[len(g.talon)-1]
	g.talon = g.talon[:len(g.talon)-1]
	return c, true
}

func (g *Game) applyAnnounce(seat game.Seat, announce *Announce) *AnnounceOutcome {
	if announce == nil {
		return nil
	}
	outcome := &AnnounceOutcome{By: seat, Kind: announce.Kind, Suit: announce.Suit}
	rule, ok := announceRules[announce.Kind]
	if !ok {
		outcome.Reason = "unknown announce kind"
		return outcome
	}
	if rule.suitQualified && announce.Suit == nil {
		outcome.Reason = fmt.Sprintf("%s requires a suit", announce.Kind)
		return outcome
	}
	if g.announced[seat][announce.Kind] {
		outcome.Reason = fmt.Sprintf("%s already announced this round", announce.Kind)
		return outcome
	}
	var suit cards.Suit
	if announce.Suit != nil {
		suit = *announce.Suit
	}
	if !rule.matches(g.hands[seat], suit) {
		outcome.Reason = fmt.Sprintf("hand does not hold a %s", announce.Kind)
		return outcome
	}

	outcome.Accepted = true
	outcome.Points = rule.points
	if rule.suitQualified && suit == g.trumpSuit {
		outcome.Points = rule.trumpPoints
	}
	g.announced[seat][announce.Kind] = true
	g.announcePoints[seat] += outcome.Points
	g.lastAnnounce = outcome

	if rule.terminal {
		g.phase = game.Completed
		g.winner = seatWins(seat)
		fs := g.finalScore()
		g.final = &fs
	}
	return outcome
}

// finish closes the round: the last trick's winner takes the dix de
// der, totals decide the winner, equal totals are a draw.
func (g *Game) finish() {
	g.phase = game.Completed
	fs := g.finalScore()
	g.final = &fs
	switch {
	case fs.Player.Total > fs.Opponent.Total:
		g.winner = PlayerWins
	case fs.Opponent.Total > fs.Player.Total:
		g.winner = OpponentWins
	default:
		g.winner = Drawn
	}
}
