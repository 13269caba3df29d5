package web

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"time"

	lnet "DrawingPad/internal/net"

	"github.com/gorilla/websocket"
)

//go:embed static/index.html
var indexHTML []byte

// Server serves the page shell and one pad session per WebSocket.
type Server struct {
	peers    *lnet.PeerManager
	upgrader websocket.Upgrader
	mux      *http.ServeMux
	log      *slog.Logger
}

func NewServer(peers *lnet.PeerManager) *Server {
	s := &Server{
		peers: peers,
		mux:   http.NewServeMux(),
		log:   slog.Default().With("component", "web"),
	}
	s.mux.HandleFunc("GET /{$}", s.serveIndex)
	s.mux.HandleFunc("GET /ws", s.serveWS)
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe runs until ctx is cancelled, then closes every session.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.peers.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(indexHTML); err != nil {
		s.log.Warn("index write failed", "err", err)
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	sess := NewSession()
	s.peers.Add(&lnet.Peer{ID: sess.ID, Conn: conn})
	defer s.peers.Remove(sess.ID)

	if err := s.send(conn, sess); err != nil {
		s.log.Warn("initial frame failed", "session", sess.ID, "err", err)
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("session read failed", "session", sess.ID, "err", err)
			}
			return
		}

		changed, err := sess.Handle(msg)
		if err != nil {
			s.log.Warn("event ignored", "session", sess.ID, "err", err)
			continue
		}
		if !changed {
			continue
		}
		if err := s.send(conn, sess); err != nil {
			s.log.Warn("frame write failed", "session", sess.ID, "err", err)
			return
		}
	}
}

func (s *Server) send(conn *websocket.Conn, sess *Session) error {
	frame, err := sess.Frame()
	if err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}
