package services

import (
	_ "embed"
	"fmt"

	"github.com/Design-Arena-Gens/agentic-bd57676b/config"
	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/generation"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const GenerateVideoPath = "/api/generate-video"

//go:embed static/index.html
var indexHTML []byte

type Api struct {
	server    *fiber.App
	generator generation.Generator
	port      string
}

// NewApi expects config to have been through Config.ApplyDefaults.
func NewApi(generator generation.Generator, config config.ApiConfig) *Api {
	a := &Api{
		server: fiber.New(fiber.Config{
			BodyLimit:             config.BodyLimitMB << 20,
			ErrorHandler:          ErrorHandler,
			DisableStartupMessage: true,
		}),
		generator: generator,
		port:      config.Port,
	}

	allowCredentials := config.AllowedOrigins != "*"

	a.server.Use(RequestLogger())
	a.server.Use(recover.New())
	a.server.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowCredentials: allowCredentials,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Origin",
	}))

	a.addRoutes()
	return a
}

func (a *Api) Start() error {
	log.With("component", "api").Info("listening", "port", a.port)
	return a.server.Listen(fmt.Sprint(":", a.port))
}

func (a *Api) Shutdown() error {
	return a.server.Shutdown()
}

func (a *Api) addRoutes() {
	a.server.Add("GET", "/", a.Index())
	a.server.Add("GET", "/health", a.Health())
	a.server.Add("POST", GenerateVideoPath, a.GenerateVideo())
}
