package api

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kawertyff-source/Simungboxing-128/internal/arena"
	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/game"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
	"github.com/kawertyff-source/Simungboxing-128/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	helloWait      = 10 * time.Second
	maxMessageSize = 4 << 10
	sendBuffer     = 128
)

var (
	errConnClosed = errors.New("connection closed")
	errSendFull   = errors.New("send buffer full")
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The session cookie already authenticates the request.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn adapts a websocket to arena.Conn. Writes go through a single pump
// goroutine so the arena never blocks on a slow client.
type wsConn struct {
	conn *websocket.Conn
	out  chan []byte
	done chan struct{}
	once sync.Once
}

func newWSConn(conn *websocket.Conn) *wsConn {
	w := &wsConn{conn: conn, out: make(chan []byte, sendBuffer), done: make(chan struct{})}
	go w.writePump()
	return w
}

func (w *wsConn) Send(b []byte) error {
	select {
	case <-w.done:
		return errConnClosed
	default:
	}
	select {
	case w.out <- b:
		return nil
	default:
		return errSendFull
	}
}

func (w *wsConn) Close() error {
	w.once.Do(func() { close(w.done) })
	return nil
}

func (w *wsConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = w.conn.Close()
	}()
	for {
		select {
		case b := <-w.out:
			_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				w.Close()
				return
			}
		case <-ticker.C:
			_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				w.Close()
				return
			}
		case <-w.done:
			_ = w.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		}
	}
}

// readHello waits for the client's hello and checks its protocol version.
func readHello(conn *websocket.Conn) error {
	_ = conn.SetReadDeadline(time.Now().Add(helloWait))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		return err
	}
	env, err := protocol.DecodeEnvelope(payload)
	if err != nil {
		return err
	}
	if env.T != protocol.MsgHello {
		return errors.New("expected hello")
	}
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		return err
	}
	if hello.V != protocol.Version {
		return errors.New("unsupported protocol version")
	}
	return nil
}

// FightSocket upgrades to a websocket bound to the session owner's arena.
func (h *Handler) FightSocket(c *gin.Context) {
	owner := ownerFromContext(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.Warn(constants.ErrFailedUpgradeSocket, logging.Fields{constants.LogFieldOwner: owner, "error": err.Error()})
		return
	}
	conn.SetReadLimit(maxMessageSize)

	if err := readHello(conn); err != nil {
		logging.Warn("rejected fight connection", logging.Fields{constants.LogFieldOwner: owner, "error": err.Error()})
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	wc := newWSConn(conn)
	a, joined, err := h.arenas.Join(c.Request.Context(), owner, wc)
	if err != nil {
		logging.Error("failed to join arena", err, logging.Fields{constants.LogFieldOwner: owner})
		wc.Close()
		return
	}
	logging.Info("fight connection opened", logging.Fields{constants.LogFieldOwner: owner, constants.LogFieldConn: joined.ConnID})

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		env, err := protocol.DecodeEnvelope(payload)
		if err != nil {
			logging.Warn("discarding malformed message", logging.Fields{constants.LogFieldOwner: owner, "error": err.Error()})
			continue
		}
		switch env.T {
		case protocol.MsgAttack:
			msg, err := protocol.DecodePayload[protocol.Attack](env)
			if err != nil {
				continue
			}
			tech, ok := game.ParseTechnique(msg.Technique)
			if !ok {
				logging.Warn("unknown technique", logging.Fields{constants.LogFieldOwner: owner, constants.LogFieldTechnique: msg.Technique})
				continue
			}
			if err := a.Submit(arena.Attack{ConnID: joined.ConnID, Technique: tech}); err != nil {
				wc.Close()
				return
			}
		default:
			logging.Warn("unknown message type", logging.Fields{constants.LogFieldOwner: owner, "type": env.T})
		}
	}

	_ = a.Submit(arena.Leave{ConnID: joined.ConnID})
	wc.Close()
	logging.Info("fight connection closed", logging.Fields{constants.LogFieldOwner: owner, constants.LogFieldConn: joined.ConnID})
}
