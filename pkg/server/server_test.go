package server

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/ChizhovVadim/chessai/pkg/common"
	"github.com/ChizhovVadim/chessai/pkg/engine"
	"github.com/ChizhovVadim/chessai/pkg/eval"
)

func newTestServer(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()
	var s = New(DefaultConfig(), log.New(io.Discard, "", 0), func() engine.IEvaluator {
		return eval.NewEvaluationService()
	})
	var ts = httptest.NewServer(s.Handler())
	var wsURL = "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("websocket dial failed: %v", err)
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSwitchingProtocols)
	}
	return ws, func() {
		ws.Close()
		s.cancel()
		ts.Close()
	}
}

func exchange(t *testing.T, ws *websocket.Conn, msg Message) Response {
	t.Helper()
	if err := ws.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp Response
	if err := ws.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.ID != msg.ID {
		t.Errorf("id = %q, want %q", resp.ID, msg.ID)
	}
	return resp
}

func TestGame(t *testing.T) {
	ws, closeAll := newTestServer(t)
	defer closeAll()

	resp := exchange(t, ws, Message{Type: "new", ID: "1", Difficulty: "easy"})
	if resp.Type != "state" || resp.State == nil {
		t.Fatalf("new: %+v", resp)
	}
	if resp.State.FEN != common.InitialPositionFen || len(resp.State.LegalMoves) != 20 ||
		resp.State.Difficulty != "easy" || resp.State.Result != "*" {
		t.Errorf("new: %+v", resp.State)
	}

	resp = exchange(t, ws, Message{Type: "move", ID: "2", Move: "e2e4"})
	if resp.Type != "state" || resp.State.WhiteMove || resp.State.LastMove != "e2e4" {
		t.Errorf("move: %+v", resp)
	}

	resp = exchange(t, ws, Message{Type: "think", ID: "3"})
	if resp.Type != "move" || resp.State == nil || !resp.State.WhiteMove {
		t.Fatalf("think: %+v", resp)
	}
	b := common.NewInitialBoard()
	b.ApplyMove(common.Move{From: common.SquareE2, To: common.SquareE4})
	if _, err := b.ParseMoveLAN(resp.Move); err != nil {
		t.Errorf("engine move %v: %v", resp.Move, err)
	}
	if resp.State.LastMove != resp.Move {
		t.Errorf("last move %v, want %v", resp.State.LastMove, resp.Move)
	}

	resp = exchange(t, ws, Message{Type: "state", ID: "4"})
	if resp.Type != "state" || resp.State.Result != "*" {
		t.Errorf("state: %+v", resp)
	}
}

func TestErrors(t *testing.T) {
	ws, closeAll := newTestServer(t)
	defer closeAll()

	tests := []struct {
		msg  Message
		want string
	}{
		{Message{Type: "state", ID: "a"}, errNoGame.Error()},
		{Message{Type: "new", ID: "b", Difficulty: "expert"}, "unknown difficulty"},
		{Message{Type: "new", ID: "c", FEN: "8/8/8/8/8/8/8/4K3 w - - 0 1"}, "invalid board"},
		{Message{Type: "dance", ID: "d"}, "unknown message type"},
	}
	for _, test := range tests {
		resp := exchange(t, ws, test.msg)
		if resp.Type != "error" || !strings.Contains(resp.Error, test.want) {
			t.Errorf("%v: %+v", test.msg.Type, resp)
		}
	}

	exchange(t, ws, Message{Type: "new", ID: "e", FEN: "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"})
	if resp := exchange(t, ws, Message{Type: "move", ID: "f", Move: "a1a9"}); resp.Type != "error" {
		t.Errorf("bad move: %+v", resp)
	}
	resp := exchange(t, ws, Message{Type: "move", ID: "g", Move: "a1a8"})
	if resp.Type != "state" || resp.State.Result != "1-0" || resp.State.Reason != "checkmate" {
		t.Errorf("mate: %+v", resp)
	}
	resp = exchange(t, ws, Message{Type: "think", ID: "h"})
	if resp.Type != "error" || !strings.Contains(resp.Error, engine.ErrGameOver.Error()) {
		t.Errorf("think after mate: %+v", resp)
	}
}
