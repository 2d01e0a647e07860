package controllers

import (
	"encoding/json"
	"io"
	"net"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// Session. one websocket client receiving a playback stream.
type Session struct {
	io     sync.Mutex
	conn   net.Conn
	reader io.Reader

	id  uint
	hub *Hub
}

func (s *Session) ID() uint {
	return s.id
}

func (s *Session) write(x interface{}) error {
	w := wsutil.NewWriter(s.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	s.io.Lock()
	defer s.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

// drain. reads client frames until the connection closes, answering control frames. onClose runs once reading stops.
func (s *Session) drain(onClose func()) {
	defer onClose()
	for {
		h, r, err := wsutil.NextReader(s.reader, ws.StateServerSide)
		if err != nil {
			return
		}
		if h.OpCode.IsControl() {
			s.io.Lock()
			err = wsutil.ControlFrameHandler(s.conn, ws.StateServerSide)(h, r)
			s.io.Unlock()
			if err != nil {
				return
			}
			continue
		}
		// clients have nothing to say during playback
		if _, err := io.Copy(io.Discard, r); err != nil {
			return
		}
	}
}

func (s *Session) close(code ws.StatusCode, reason string) {
	s.io.Lock()
	defer s.io.Unlock()
	_ = ws.WriteFrame(s.conn, ws.NewCloseFrame(ws.NewCloseFrameBody(code, reason)))
	_ = s.conn.Close()
}

// Hub. registry of open playback sessions so shutdown can close them.
type Hub struct {
	mu       sync.RWMutex
	seq      uint
	sessions map[uint]*Session
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[uint]*Session),
	}
}

// Register. reader is where client frames are read from, it may hold bytes buffered during the handshake.
func (h *Hub) Register(conn net.Conn, reader io.Reader) *Session {
	if reader == nil {
		reader = conn
	}
	session := &Session{
		hub:    h,
		conn:   conn,
		reader: reader,
	}

	h.mu.Lock()
	session.id = h.seq
	h.sessions[session.id] = session
	h.seq++
	h.mu.Unlock()

	return session
}

func (h *Hub) Remove(session *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, session.id)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// CloseAll. sends a going-away close frame to every session and forgets them.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	sessions := make([]*Session, 0, len(h.sessions))
	for id, s := range h.sessions {
		sessions = append(sessions, s)
		delete(h.sessions, id)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		s.close(ws.StatusGoingAway, "server shutting down")
	}
}
