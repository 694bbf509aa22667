package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mpsalisbury/chouine/pkg/cards"
	"github.com/mpsalisbury/chouine/pkg/game/chouine"
)

// Handler exposes the game service over JSON HTTP, mirroring the
// shapes the web client consumes. Engine rule violations come back as
// a 200 with an error descriptor next to the unchanged snapshot;
// only an unknown game id is a 404.
type Handler struct {
	Service *GameService
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/game/:id", h.GetGame)
	e.POST("/game/new", h.NewGame)
	e.POST("/game/:id/lead", h.Lead)
	e.POST("/game/:id/follow", h.Follow)
	e.POST("/game/:id/exchange7", h.Exchange7)
}

type moveResponse struct {
	*chouine.Snapshot
	Error    string                   `json:"error,omitempty"`
	Announce *chouine.AnnounceOutcome `json:"announce,omitempty"`
}

// announcePayload tolerates the client's "none" announce kind; the
// engine only ever sees a concrete announce or none at all.
type announcePayload struct {
	Type string  `json:"type"`
	Suit *string `json:"suit"`
}

func (p *announcePayload) toAnnounce() (*chouine.Announce, error) {
	if p == nil || p.Type == "" || p.Type == "none" {
		return nil, nil
	}
	kind, err := chouine.ParseAnnounceKind(p.Type)
	if err != nil {
		return nil, err
	}
	a := &chouine.Announce{Kind: kind}
	if p.Suit != nil {
		suit, err := cards.ParseSuit(*p.Suit)
		if err != nil {
			return nil, err
		}
		a.Suit = &suit
	}
	return a, nil
}

type leadRequest struct {
	Card     *cards.Card      `json:"card"`
	Announce *announcePayload `json:"announce"`
	AuSept   bool             `json:"au_sept"`
}

type followRequest struct {
	Card     *cards.Card      `json:"card"`
	Announce *announcePayload `json:"announce"`
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) NewGame(c echo.Context) error {
	return c.JSON(http.StatusOK, moveResponse{Snapshot: h.Service.NewGame()})
}

func (h *Handler) GetGame(c echo.Context) error {
	snapshot, err := h.Service.Snapshot(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, moveResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, moveResponse{Snapshot: snapshot})
}

func (h *Handler) Lead(c echo.Context) error {
	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, moveResponse{Error: "malformed request"})
	}
	if req.Card == nil {
		return c.JSON(http.StatusBadRequest, moveResponse{Error: "missing card"})
	}
	announce, err := req.Announce.toAnnounce()
	if err != nil {
		return c.JSON(http.StatusBadRequest, moveResponse{Error: err.Error()})
	}
	reply, err := h.Service.Lead(c.Param("id"), *req.Card, announce, req.AuSept)
	return h.moveReply(c, reply, err)
}

func (h *Handler) Follow(c echo.Context) error {
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, moveResponse{Error: "malformed request"})
	}
	if req.Card == nil {
		return c.JSON(http.StatusBadRequest, moveResponse{Error: "missing card"})
	}
	announce, err := req.Announce.toAnnounce()
	if err != nil {
		return c.JSON(http.StatusBadRequest, moveResponse{Error: err.Error()})
	}
	reply, err := h.Service.Follow(c.Param("id"), *req.Card, announce)
	return h.moveReply(c, reply, err)
}

func (h *Handler) Exchange7(c echo.Context) error {
	snapshot, err := h.Service.ExchangeTrumpSeven(c.Param("id"))
	if err != nil {
		if snapshot == nil {
			return c.JSON(http.StatusNotFound, moveResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, moveResponse{Snapshot: snapshot, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, moveResponse{Snapshot: snapshot})
}

func (h *Handler) moveReply(c echo.Context, reply *MoveReply, err error) error {
	if reply == nil {
		return c.JSON(http.StatusNotFound, moveResponse{Error: err.Error()})
	}
	resp := moveResponse{Snapshot: reply.Snapshot, Announce: reply.Announce}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(http.StatusOK, resp)
}
