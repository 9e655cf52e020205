// http/server.go
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDKey = "requestid"

// NewApp wires the page routes and the operational endpoints.
func NewApp(s *Server, health healthcheck.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "groupboard",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(requestLogger(s.logger))
	app.Use(recover.New())
	app.Use(compress.New())

	app.Get("/", s.HandleIndex)
	app.Get("/search", s.HandleSearch)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/live", adaptor.HTTPHandler(health))
	app.Get("/ready", adaptor.HTTPHandler(health))

	return app
}

// errorHandler turns a failed render into a 500. Nothing about the failure
// is exposed to the client; it is logged by requestLogger.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
