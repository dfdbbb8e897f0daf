package websocketPkg

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	redisPkg "PortfolioBackend/pkg/redis"
)

// IHub fans comment change events out to connected browser clients. The
// content feed endpoint registers each websocket connection; the content
// service broadcasts every event it reconciles.
type IHub interface {
	Register(conn *websocket.Conn) func()
	Broadcast(event redisPkg.CommentEvent)
	CloseConnections()
}

type hub struct {
	conns        map[*websocket.Conn]struct{}
	mu           sync.Mutex
	writeTimeout time.Duration
	log          *logrus.Logger
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewHub(log *logrus.Logger) IHub {
	return &hub{
		conns:        make(map[*websocket.Conn]struct{}),
		writeTimeout: 5 * time.Second,
		log:          log,
	}
}

func (h *hub) Register(conn *websocket.Conn) func() {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()

	h.log.WithFields(logrus.Fields{
		"clients": total,
	}).Debug("Feed client connected")

	return func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
	}
}

func (h *hub) Broadcast(event redisPkg.CommentEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"kind":  event.Kind,
			"error": err.Error(),
		}).Error("Failed to encode feed event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
			delete(h.conns, conn)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Debugf("Dropping dead feed client: %v", err)
			delete(h.conns, conn)
		}
	}
}

func (h *hub) CloseConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.Close(); err != nil {
			h.log.Debugf("Failed to close feed client: %v", err)
		}
		delete(h.conns, conn)
	}
}
