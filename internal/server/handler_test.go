package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mpsalisbury/chouine/pkg/cards"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := &Handler{Service: newTestService()}
	e := echo.New()
	h.Register(e)
	return h, e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	_, e := newTestHandler()
	rec := doJSON(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestNewGameRoute(t *testing.T) {
	_, e := newTestHandler()
	rec := doJSON(e, http.MethodPost, "/game/new", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		GameID     string          `json:"game_id"`
		TalonCount int             `json:"talon_count"`
		Hands      json.RawMessage `json:"hands"`
		Error      string          `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.GameID == "" {
		t.Error("response missing game_id")
	}
	if resp.TalonCount != 20 {
		t.Errorf("talon_count = %d, want 20", resp.TalonCount)
	}
	if resp.Error != "" {
		t.Errorf("unexpected error: %s", resp.Error)
	}
}

func TestGetGameRoutes(t *testing.T) {
	h, e := newTestHandler()
	snap := h.Service.NewGame()
	rec := doJSON(e, http.MethodGet, "/game/"+snap.GameID, "")
	if rec.Code != http.StatusOK {
		t.Errorf("known game status = %d, want 200", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/game/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown game status = %d, want 404", rec.Code)
	}
}

func TestLeadRoute(t *testing.T) {
	h, e := newTestHandler()
	snap := h.Service.NewGame()
	body := fmt.Sprintf(`{"card":{"rank":%q,"suit":%q}}`,
		snap.Hands.Player[0].Rank, snap.Hands.Player[0].Suit)
	rec := doJSON(e, http.MethodPost, "/game/"+snap.GameID+"/lead", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var resp struct {
		TalonCount int    `json:"talon_count"`
		YourTurn   bool   `json:"your_turn"`
		Error      string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("lead rejected: %s", resp.Error)
	}
	if resp.TalonCount != 18 {
		t.Errorf("talon_count = %d after first trick, want 18", resp.TalonCount)
	}
	if !resp.YourTurn {
		t.Error("server should be waiting on the player again")
	}
}

func TestLeadRouteRejectsRuleViolation(t *testing.T) {
	h, e := newTestHandler()
	snap := h.Service.NewGame()
	// A card from the opponent's hand or the talon: the engine refuses
	// it but the route still answers 200 with the snapshot.
	held := snap.Hands.Player
	var body string
	for _, c := range cards.MakeDeck() {
		if !held.ContainsCard(c) {
			body = fmt.Sprintf(`{"card":{"rank":%q,"suit":%q}}`, c.Rank, c.Suit)
			break
		}
	}
	rec := doJSON(e, http.MethodPost, "/game/"+snap.GameID+"/lead", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Error      string `json:"error"`
		TalonCount int    `json:"talon_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Error == "" {
		t.Error("response should describe the rule violation")
	}
	if resp.TalonCount != 20 {
		t.Errorf("talon_count = %d, want untouched 20", resp.TalonCount)
	}
}

func TestLeadRouteBadRequests(t *testing.T) {
	h, e := newTestHandler()
	snap := h.Service.NewGame()
	for name, body := range map[string]string{
		"no card":        `{}`,
		"bad announce":   `{"card":{"rank":"A","suit":"H"},"announce":{"type":"flush"}}`,
		"malformed json": `{"card":`,
	} {
		rec := doJSON(e, http.MethodPost, "/game/"+snap.GameID+"/lead", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

func TestExchangeRouteUnknownGame(t *testing.T) {
	_, e := newTestHandler()
	rec := doJSON(e, http.MethodPost, "/game/nope/exchange7", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
