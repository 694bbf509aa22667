package cards

// Card literals
var (
	C7h = Card{Rank: Seven, Suit: Hearts}
	C8h = Card{Rank: Eight, Suit: Hearts}
	C9h = Card{Rank: Nine, Suit: Hearts}
	Cjh = Card{Rank: Jack, Suit: Hearts}
	Cqh = Card{Rank: Queen, Suit: Hearts}
	Ckh = Card{Rank: King, Suit: Hearts}
	Cth = Card{Rank: Ten, Suit: Hearts}
	Cah = Card{Rank: Ace, Suit: Hearts}
	C7d = Card{Rank: Seven, Suit: Diamonds}
	C8d = Card{Rank: Eight, Suit: Diamonds}
	C9d = Card{Rank: Nine, Suit: Diamonds}
	Cjd = Card{Rank: Jack, Suit: Diamonds}
	Cqd = Card{Rank: Queen, Suit: Diamonds}
	Ckd = Card{Rank: King, Suit: Diamonds}
	Ctd = Card{Rank: Ten, Suit: Diamonds}
	Cad = Card{Rank: Ace, Suit: Diamonds}
	C7c = Card{Rank: Seven, Suit: Clubs}
	C8c = Card{Rank: Eight, Suit: Clubs}
	C9c = Card{Rank: Nine, Suit: Clubs}
	Cjc = Card{Rank: Jack, Suit: Clubs}
	Cqc = Card{Rank: Queen, Suit: Clubs}
	Ckc = Card{Rank: King, Suit: Clubs}
	Ctc = Card{Rank: Ten, Suit: Clubs}
	Cac = Card{Rank: Ace, Suit: Clubs}
	C7s = Card{Rank: Seven, Suit: Spades}
	C8s = Card{Rank: Eight, Suit: Spades}
	C9s = Card{Rank: Nine, Suit: Spades}
	Cjs = Card{Rank: Jack, Suit: Spades}
	Cqs = Card{Rank: Queen, Suit: Spades}
	Cks = Card{Rank: King, Suit: Spades}
	Cts = Card{Rank: Ten, Suit: Spades}
	Cas = Card{Rank: Ace, Suit: Spades}
)
