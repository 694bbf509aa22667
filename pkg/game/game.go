package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

type GamePhase int8

const (
	Playing GamePhase = iota
	Completed
	Aborted
)

func (ph GamePhase) String() string {
	switch ph {
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

func (ph GamePhase) MarshalJSON() ([]byte, error) {
	return json.Marshal(ph.String())
}

// A Seat identifies one of the two sides of a game. The human side is
// Player; the automated side is Opponent.
type Seat int8

const (
	Player Seat = iota
	Opponent
)

var Seats = []Seat{Player, Opponent}

func (s Seat) String() string {
	switch s {
	case Player:
		return "player"
	case Opponent:
		return "opponent"
	}
	panic("Unknown Seat")
}

func (s Seat) Other() Seat {
	if s == Player {
		return Opponent
	}
	return Player
}

func ParseSeat(s string) (Seat, error) {
	switch strings.ToLower(s) {
	case "player":
		return Player, nil
	case "opponent":
		return Opponent, nil
	}
	return Player, fmt.Errorf("no such seat '%s'", s)
}

func (s Seat) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Seat) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return err
	}
	parsed, err := ParseSeat(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
