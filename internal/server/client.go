package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"gloomdelve-server/internal/input"
	"gloomdelve-server/pkg/api"
	"gloomdelve-server/pkg/logger"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// client - посредник между websocket-соединением и ядром: команды
// уходят в очередь ввода, снапшоты приходят из хаба.
type client struct {
	server *Server
	conn   *websocket.Conn
	id     string
	send   chan api.Snapshot
}

func newClient(s *Server, conn *websocket.Conn) *client {
	return &client{
		server: s,
		conn:   conn,
		id:     newClientID(),
		send:   make(chan api.Snapshot, 64),
	}
}

// newClientID выдает случайный идентификатор подписчика.
func newClientID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("server: failed to generate client id: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// readPump читает команды клиента и переправляет их в очередь ввода.
func (c *client) readPump() {
	defer func() {
		c.server.hub.Unregister(c.id)
		if err := c.conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close websocket in readPump")
		}
		logger.Log.WithField("client", c.id).Info("client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Первый снимок кладется в send ДО подписки на хаб: канал один,
	// поэтому клиент гарантированно увидит INIT раньше любого UPDATE.
	c.server.mu.Lock()
	init := c.server.buildSnapshot("INIT")
	c.server.mu.Unlock()
	c.send <- init

	// После регистрации в send пишет только хаб, и пишет неблокирующе:
	// зависший клиент теряет кадры, а не копит горутины и буферы.
	c.server.hub.Register(c.id, c.send)

	logger.Log.WithField("client", c.id).Info("client connected")

	for {
		var cmd api.ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Error("websocket read failed")
			}
			return
		}
		c.dispatch(cmd)
	}
}

// dispatch переводит сетевую команду во внутреннее событие ввода.
// Всё, что не прошло распознание или валидацию, уходит планировщику
// как KindUnknown: политика "ignore and wait" живет в ядре, а не тут.
func (c *client) dispatch(cmd api.ClientCommand) {
	event := input.Command{Kind: input.KindUnknown}

	if cmd.Action == "MOVE" {
		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil && p.Validate() == nil {
			event = input.Command{Kind: input.KindMove, Dx: p.Dx, Dy: p.Dy}
		}
	}

	if !c.server.session.Input.Push(event) {
		logger.Log.WithField("client", c.id).Warn("input queue full, command dropped")
	}
}

// writePump отправляет снапшоты клиенту и поддерживает соединение ping'ами.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close websocket in writePump")
		}
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("set write deadline")
			}
			if !ok {
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message")
				}
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Log.WithError(err).Debug("write snapshot")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("set ping write deadline")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
