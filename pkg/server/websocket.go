package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is a client request.
type Message struct {
	Type       string `json:"type"` // "new", "move", "think", "state"
	ID         string `json:"id,omitempty"`
	FEN        string `json:"fen,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Move       string `json:"move,omitempty"`
}

// Response answers one Message. ID echoes the request.
type Response struct {
	Type  string     `json:"type"` // "state", "move", "error"
	ID    string     `json:"id,omitempty"`
	Move  string     `json:"move,omitempty"`
	State *GameState `json:"state,omitempty"`
	Error string     `json:"error,omitempty"`
}

type client struct {
	conn     *websocket.Conn
	server   *Server
	session  *session
	sendChan chan Response
}

// WebSocket serves one game per connection.
func (s *Server) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade error: %v", err)
		return
	}
	c := &client{
		conn:     conn,
		server:   s,
		session:  newSession(s.newEngine()),
		sendChan: make(chan Response, 16),
	}
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go c.writePump()
	c.readPump(ctx)
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *client) readPump(ctx context.Context) {
	defer func() { close(c.sendChan); c.conn.Close() }()
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		c.sendChan <- c.handleMessage(ctx, msg)
	}
}

func (c *client) handleMessage(ctx context.Context, msg Message) Response {
	var err error
	var resp = Response{Type: "state", ID: msg.ID}
	switch msg.Type {
	case "new":
		err = c.session.newGame(msg.FEN, msg.Difficulty)
	case "move":
		err = c.session.play(msg.Move)
	case "think":
		move, thinkErr := c.session.think(ctx)
		if thinkErr == nil {
			resp.Type = "move"
			resp.Move = move.String()
		}
		err = thinkErr
	case "state":
	default:
		return Response{Type: "error", ID: msg.ID, Error: "unknown message type " + msg.Type}
	}
	if err != nil {
		c.server.logger.Printf("session %v: %v", msg.Type, err)
		return Response{Type: "error", ID: msg.ID, Error: err.Error()}
	}
	state, err := c.session.state()
	if err != nil {
		return Response{Type: "error", ID: msg.ID, Error: err.Error()}
	}
	resp.State = &state
	return resp
}
