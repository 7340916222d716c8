package site

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// reloadMessage is sent to every connected page after a rebuild.
const reloadMessage = "reload"

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks the live reload websocket connections.
type reloadHub struct {
	log     logrus.FieldLogger
	metrics *metrics

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newReloadHub(log logrus.FieldLogger, m *metrics) *reloadHub {
	return &reloadHub{
		log:     log,
		metrics: m,
		conns:   make(map[*websocket.Conn]struct{}),
	}
}

func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("reload: websocket upgrade")
		return
	}
	h.add(conn)
	defer h.remove(conn)

	// Pages never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Debug("reload: websocket read")
			}
			return
		}
	}
}

func (h *reloadHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
	h.metrics.reloadClients.Set(float64(len(h.conns)))
}

func (h *reloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[conn]; !ok {
		return
	}
	delete(h.conns, conn)
	conn.Close()
	h.metrics.reloadClients.Set(float64(len(h.conns)))
}

// count returns the number of connected clients.
func (h *reloadHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// broadcast sends msg to every client and drops the ones that fail. It
// returns how many clients received it.
func (h *reloadHub) broadcast(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for conn := range h.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			h.log.WithError(err).Debug("reload: websocket write")
			delete(h.conns, conn)
			conn.Close()
			continue
		}
		sent++
	}
	h.metrics.reloadClients.Set(float64(len(h.conns)))
	h.metrics.reloadsSent.Add(float64(sent))
	return sent
}

// closeAll disconnects every client.
func (h *reloadHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
		conn.Close()
		delete(h.conns, conn)
	}
	h.metrics.reloadClients.Set(0)
}
