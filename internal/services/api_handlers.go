package services

import (
	"io"
	"time"

	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/generation"
	"github.com/Design-Arena-Gens/agentic-bd57676b/types"
	"github.com/Design-Arena-Gens/agentic-bd57676b/utils"

	"github.com/gofiber/fiber/v2"
)

func (a *Api) Health() fiber.Handler {
	return func(ctx *fiber.Ctx) error {

		return ctx.Status(fiber.StatusOK).JSON(types.HealthResponse{
			Status:    fiber.StatusOK,
			TimeStamp: time.Now().Unix(),
		})
	}
}

func (a *Api) Index() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return ctx.Status(fiber.StatusOK).Send(indexHTML)
	}
}

// GenerateVideo accepts a multipart upload with an "image" file part and a
// "prompt" field and hands both to the configured generator.
func (a *Api) GenerateVideo() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		logger := HttpLogger("generate-video", ctx)

		form, err := ctx.MultipartForm()
		if err != nil {
			logger.Error("failed to parse multipart form", "err", err)
			return internalError(ctx)
		}

		var prompt string
		if values := form.Value["prompt"]; len(values) > 0 {
			prompt = values[0]
		}
		images := form.File["image"]
		if len(images) == 0 || prompt == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Error: types.ErrImageAndPromptRequired,
			})
		}
		image := images[0]

		file, err := image.Open()
		if err != nil {
			logger.Error("failed to open image part", "err", err)
			return internalError(ctx)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			logger.Error("failed to read image part", "err", err)
			return internalError(ctx)
		}

		imageName := utils.DisplayName(image.Filename)
		logger.Info("generation request received", "imageName", imageName, "prompt", prompt)

		result, err := a.generator.GenerateVideo(ctx.UserContext(), generation.Submission{
			ImageName: imageName,
			ImageType: image.Header.Get(fiber.HeaderContentType),
			Image:     data,
			Prompt:    prompt,
		})
		if err != nil {
			logger.Error("generator failed", "err", err)
			return internalError(ctx)
		}

		return ctx.Status(fiber.StatusOK).JSON(types.GenerateVideoResponse{
			VideoUrl: result.VideoUrl,
		})
	}
}
