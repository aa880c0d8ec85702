package services

import (
	"errors"

	"github.com/Design-Arena-Gens/agentic-bd57676b/types"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler keeps the status of framework errors (404, 405, 413...) and
// turns anything else, recovered panics included, into a 500.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ctx.Status(fe.Code).JSON(types.ErrorResponse{Error: fe.Message})
	}

	log.With("component", "http").Error("unhandled error", "reqId", ReqID(ctx), "method", ctx.Method(), "path", ctx.Path(), "err", err)
	return internalError(ctx)
}

func internalError(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
		Error: types.ErrInternalServer,
	})
}
