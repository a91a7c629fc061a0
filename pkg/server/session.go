package server

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/app"
	"github.com/vango-dev/vmini/pkg/dom"
)

// Message is a client event.
type Message struct {
	ID    uint64 `json:"id"`
	Event string `json:"event"`
}

// Reply is sent after the session starts and after every message.
type Reply struct {
	HTML    string `json:"html,omitempty"`
	Renders int    `json:"renders,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Session is one live connection and the app it drives. Messages are
// handled one at a time on the read loop, which is the only goroutine that
// touches the app.
type Session struct {
	id     uint64
	conn   *websocket.Conn
	root   *dom.Element
	app    *app.App
	config *Config
	logger *slog.Logger
}

func (s *Server) newSession(conn *websocket.Conn) (*Session, error) {
	root, a, err := s.mountFresh()
	if err != nil {
		return nil, err
	}
	id := s.nextID.Add(1)
	return &Session{
		id:     id,
		conn:   conn,
		root:   root,
		app:    a,
		config: s.config,
		logger: s.logger.With("session", id),
	}, nil
}

// ReadLoop sends the initial snapshot, then reads and handles messages
// until the connection is closed or an error occurs.
func (s *Session) ReadLoop() {
	defer s.Close()
	s.logger.Info("session open")

	if err := s.sendSnapshot(); err != nil {
		s.logger.Error("write error", "error", err)
		return
	}

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		if err := s.handle(msg); err != nil {
			s.logger.Error("write error", "error", err)
			return
		}
	}
}

// handle dispatches one message and writes the reply. Only write failures
// are returned; message errors are reported to the client.
func (s *Session) handle(msg []byte) error {
	var m Message
	if err := json.Unmarshal(msg, &m); err != nil || m.Event == "" {
		verr := errors.New("E302")
		if err != nil {
			verr = verr.Wrap(err)
		}
		s.logger.Warn("invalid message", "error", verr)
		return s.sendError(verr)
	}

	target := dom.Find(s.root, m.ID)
	if target == nil {
		verr := errors.New("E303").WithDetailf("no element with id %d", m.ID)
		s.logger.Warn("event target missing", "id", m.ID, "event", m.Event)
		return s.sendError(verr)
	}

	prevErr := s.app.Err()
	delivered := target.Dispatch(m.Event)
	s.logger.Debug("event dispatched", "id", m.ID, "event", m.Event, "listeners", delivered)

	if err := s.app.Err(); err != nil && err != prevErr {
		return s.sendError(errors.FromError(err, "E104"))
	}
	return s.sendSnapshot()
}

func (s *Session) sendSnapshot() error {
	html, err := snapshot(s.root)
	if err != nil {
		return err
	}
	return s.write(Reply{HTML: html, Renders: s.app.Renders()})
}

func (s *Session) sendError(err *errors.VminiError) error {
	return s.write(Reply{Error: err.Error(), Code: err.Code})
}

func (s *Session) write(r Reply) error {
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteJSON(r)
}

// Close releases the connection and the session's app.
func (s *Session) Close() {
	s.conn.Close()
	s.config.Metrics.AppClosed()
	s.logger.Info("session closed", "renders", s.app.Renders())
}

// ID returns the session ID.
func (s *Session) ID() uint64 {
	return s.id
}
