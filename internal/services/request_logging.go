package services

import (
	"errors"
	"time"

	"github.com/Design-Arena-Gens/agentic-bd57676b/utils"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

const (
	reqIDKey    = "reqId"
	reqIDHeader = "X-Request-Id"
	maxReqIDLen = 64
)

// RequestLogger tags every request with an id (the caller's X-Request-Id when
// it is short enough, a fresh uuid otherwise) and logs its outcome.
func RequestLogger() fiber.Handler {
	base := log.With("component", "http")

	return func(c *fiber.Ctx) error {
		reqID := c.Get(reqIDHeader)
		if reqID == "" || len(reqID) > maxReqIDLen {
			reqID = utils.NewRequestID()
		}
		c.Locals(reqIDKey, reqID)
		c.Set(reqIDHeader, reqID)

		start := time.Now()
		method := c.Method()
		path := c.Path()

		base.Debug("request started", "reqId", reqID, "method", method, "path", path, "ip", c.IP(), "bytes", len(c.Body()))

		err := c.Next()
		dur := time.Since(start).String()

		if err != nil {
			status := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			base.Error("request failed", "reqId", reqID, "method", method, "path", path, "status", status, "dur", dur, "err", err)
			return err
		}

		base.Info("request completed", "reqId", reqID, "method", method, "path", path, "status", c.Response().StatusCode(), "dur", dur)
		return nil
	}
}

func ReqID(c *fiber.Ctx) string {
	if s, ok := c.Locals(reqIDKey).(string); ok {
		return s
	}
	return ""
}

func HttpLogger(action string, c *fiber.Ctx) *log.Logger {
	return log.With(
		"component", "api",
		"action", action,
		"reqId", ReqID(c),
	)
}
