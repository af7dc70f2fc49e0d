package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport is an ordered middleware chain for one route group.
type Transport struct {
	Middlewares []Middleware
}

func NewTransport(middlewares ...Middleware) *Transport {
	return &Transport{
		Middlewares: middlewares,
	}
}

// Handlers returns the chain in the form fiber's Use expects. Nil entries,
// left by optional middlewares the container did not build, are skipped.
func (t *Transport) Handlers() []interface{} {
	handlers := make([]interface{}, 0, len(t.Middlewares))
	for _, m := range t.Middlewares {
		if m == nil {
			continue
		}
		handlers = append(handlers, m.Middleware())
	}
	return handlers
}
