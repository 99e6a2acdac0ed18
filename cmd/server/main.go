package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrCatsup554/EjemploCrud/internal/application"
	"github.com/MrCatsup554/EjemploCrud/internal/config"
	"github.com/MrCatsup554/EjemploCrud/internal/infrastructure/remote"
	handlers "github.com/MrCatsup554/EjemploCrud/internal/interfaces/http"
	"github.com/MrCatsup554/EjemploCrud/internal/interfaces/web"
	"github.com/MrCatsup554/EjemploCrud/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zl, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer zl.Sync()

	engine, err := web.NewEngine()
	if err != nil {
		zl.Fatal("Error al cargar las vistas", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Personas
	personaStore := remote.NewPersonaStore(cfg.APIBaseURL, cfg.APITimeout, zl)
	personaService := application.NewPersonaService(personaStore)
	personaHandler := handlers.NewPersonaHandler(personaService, zl)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/", personaHandler.Tabla)

	personas := app.Group("/personas")
	personas.Get("/nueva", personaHandler.Nueva)
	personas.Post("/", personaHandler.Guardar)
	personas.Get("/:id/editar", personaHandler.Editar)
	personas.Get("/:id/eliminar", personaHandler.ConfirmarEliminar)
	personas.Post("/:id/eliminar", personaHandler.Eliminar)

	zl.Info("Servidor de administración iniciado",
		zap.String("port", cfg.ServerPort),
		zap.String("api_base_url", cfg.APIBaseURL),
	)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		zl.Fatal("Error al iniciar el servidor", zap.Error(err))
	}
}
