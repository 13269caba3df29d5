package net

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Peer is a connected browser.
type Peer struct {
	ID   string
	Conn *websocket.Conn
}

// PeerManager tracks the live WebSocket connections of the web pad.
type PeerManager struct {
	peers map[string]*Peer
	mu    sync.RWMutex
	log   *slog.Logger
}

func NewPeerManager() *PeerManager {
	return &PeerManager{
		peers: make(map[string]*Peer),
		log:   slog.Default().With("component", "peers"),
	}
}

func (pm *PeerManager) Add(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.peers[peer.ID] = peer
	pm.log.Info("peer connected", "peer", peer.ID, "remote", peer.Conn.RemoteAddr().String())
}

func (pm *PeerManager) Remove(id string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if _, ok := pm.peers[id]; !ok {
		return
	}
	delete(pm.peers, id)
	pm.log.Info("peer disconnected", "peer", id)
}

func (pm *PeerManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// CloseAll sends a close frame to every peer and drops the connections.
func (pm *PeerManager) CloseAll() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for id, p := range pm.peers {
		if err := p.Conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
			pm.log.Warn("close frame not sent", "peer", id, "err", err)
		}
		if err := p.Conn.Close(); err != nil {
			pm.log.Warn("close failed", "peer", id, "err", err)
		}
		delete(pm.peers, id)
	}
}
