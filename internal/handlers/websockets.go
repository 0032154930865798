package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMsgSize      = 1 << 12 // 4 KB
	defaultInterval = 1 * time.Second
	maxInterval     = 10 * time.Second
)

const wsTypeCharts = "charts"

type wsEnvelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live chart catalog
// @Description  WebSocket feed of {"type":"charts","data":[...]}, sent on connect and then every interval (?interval=2s, at most 10s).
// @Tags         charts
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.wsLog("ws_upgrade_failed", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go h.drain(conn, closed)

	h.pushCatalog(c.Request.Context(), conn, interval, closed)
}

// pushCatalog sends the catalog immediately and then on every tick until
// the peer goes away or a write fails.
func (h *Handler) pushCatalog(ctx context.Context, conn *websocket.Conn, interval time.Duration, closed <-chan struct{}) {
	push := time.NewTicker(interval)
	defer push.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := h.sendCatalog(ctx, conn); err != nil {
		h.wsLog("ws_write_failed_initial", err)
		return
	}
	for {
		var err error
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			err = conn.WriteMessage(websocket.PingMessage, nil)
		case <-push.C:
			err = h.sendCatalog(ctx, conn)
		}
		if err != nil {
			h.wsLog("ws_write_failed", err)
			return
		}
	}
}

// parseInterval reads ?interval=2s (0 < d <= 10s), else the configured period.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if d, err := time.ParseDuration(c.Query("interval")); err == nil && d > 0 && d <= maxInterval {
		return d
	}
	if h.wsInterval > 0 {
		return h.wsInterval
	}
	return defaultInterval
}

// drain reads (and discards) client frames so pongs and close frames are processed.
func (h *Handler) drain(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.wsLog("ws_read_closed", err)
			return
		}
	}
}

func (h *Handler) sendCatalog(ctx context.Context, conn *websocket.Conn) error {
	list, err := h.services.Catalog.List(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_list_charts_failed", "err", err)
		}
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: wsTypeCharts, Data: list})
}

func (h *Handler) wsLog(key string, err error) {
	if h.log != nil {
		h.log.Infow(key, "err", err)
	}
}
