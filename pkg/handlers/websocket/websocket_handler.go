package websocket

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultHandshakeTimeout = 15 * time.Second
	frameBufferSize         = 1024
)

// Handler serves one upgraded connection until the client goes away.
type Handler interface {
	Handle(c *websocket.Conn)
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

// HandlerTransportDTO carries the websocket endpoints and the upgrade
// settings they share.
type HandlerTransportDTO struct {
	AnalyzeHandler   Handler
	HandshakeTimeout time.Duration
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}

// Upgrade mounts h behind the websocket handshake. It must run after the
// middlewares that reject non-upgrade requests.
func (t *HandlerTransportDTO) Upgrade(h Handler) fiber.Handler {
	return websocket.New(h.Handle, t.upgradeConfig())
}

func (t *HandlerTransportDTO) upgradeConfig() websocket.Config {
	timeout := t.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	return websocket.Config{
		HandshakeTimeout: timeout,
		ReadBufferSize:   frameBufferSize,
		WriteBufferSize:  frameBufferSize,
	}
}
