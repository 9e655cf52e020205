// http/handlers.go
package http

import (
	"context"
	"time"

	"github.com/ViniZap4/groupboard/metrics"
	"github.com/ViniZap4/groupboard/render"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Renderer produces the group listing page for a search term.
type Renderer interface {
	Render(ctx context.Context, term string) (render.Page, error)
}

type Server struct {
	renderer Renderer
	logger   zerolog.Logger
}

func NewServer(renderer Renderer, logger zerolog.Logger) *Server {
	return &Server{renderer: renderer, logger: logger}
}

// HandleIndex lists every group.
func (s *Server) HandleIndex(c *fiber.Ctx) error {
	return s.renderPage(c, "/", "")
}

// HandleSearch lists the groups matching the term query parameter. A
// missing parameter behaves like HandleIndex.
func (s *Server) HandleSearch(c *fiber.Ctx) error {
	return s.renderPage(c, "/search", c.Query("term"))
}

func (s *Server) renderPage(c *fiber.Ctx, route, term string) error {
	start := time.Now()
	page, err := s.renderer.Render(c.UserContext(), term)
	metrics.ObserveRender(route, start, page.Matched, err)
	if err != nil {
		return err
	}

	s.logger.Debug().
		Str("request_id", requestID(c)).
		Str("term", term).
		Int("matched", page.Matched).
		Int("total", page.Total).
		Msg("Rendered groups")

	c.Type("html", "utf-8")
	return c.SendString(page.HTML)
}
