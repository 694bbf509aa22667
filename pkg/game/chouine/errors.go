package chouine

import "errors"

// Rule violation categories. Every rejected intent wraps one of these
// and leaves the game state untouched.
var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrIllegalAnnounce = errors.New("illegal announce")
	ErrIllegalExchange = errors.New("illegal exchange")
	ErrAuSeptRequired  = errors.New("au sept declaration required")
)
