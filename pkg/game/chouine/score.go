package chouine

import "github.com/mpsalisbury/chouine/pkg/game"

// DixDeDer is the bonus for winning the round's last trick.
const DixDeDer = 10

// SeatScore breaks one seat's points down for display.
type SeatScore struct {
	Cards     int `json:"cards"`
	Announces int `json:"announces"`
	DixDeDer  int `json:"dix_de_der"`
	Total     int `json:"total"`
}

// Score holds both seats' breakdowns. DixDeDerPending marks a running
// score whose last-trick bonus has not been decided yet.
type Score struct {
	Player          SeatScore `json:"player"`
	Opponent        SeatScore `json:"opponent"`
	DixDeDerPending bool      `json:"dix_de_der_pending,omitempty"`
}

func (g *Game) seatScore(seat game.Seat, withBonus bool) SeatScore {
	s := SeatScore{
		Cards:     g.captured[seat].Points(),
		Announces: g.announcePoints[seat],
	}
	if withBonus && g.lastTrickWinner != nil && *g.lastTrickWinner == seat {
		s.DixDeDer = DixDeDer
	}
	s.Total = s.Cards + s.Announces + s.DixDeDer
	return s
}

// RunningScore reports points so far; the dix de der stays pending.
func (g *Game) RunningScore() Score {
	return Score{
		Player:          g.seatScore(game.Player, false),
		Opponent:        g.seatScore(game.Opponent, false),
		DixDeDerPending: true,
	}
}

func (g *Game) finalScore() Score {
	return Score{
		Player:   g.seatScore(game.Player, true),
		Opponent: g.seatScore(game.Opponent, true),
	}
}
