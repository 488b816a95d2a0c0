package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/resource-api/pkg/logger"
)

// DefaultDocsPath ubicación de la especificación OpenAPI generada con swag.
const DefaultDocsPath = "./docs/swagger.json"

// ServerOptions parámetros comunes de los binarios REST.
type ServerOptions struct {
	Name     string
	DocsPath string // vacío o inexistente: no se monta /docs
	Log      *logger.Logger
}

// NewApp crea la aplicación Fiber con recover, log de peticiones, /health, / y Swagger UI.
func NewApp(opts ServerOptions) *fiber.App {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(opts.Log))

	// Swagger UI en local: http://localhost:<port>/docs
	if opts.DocsPath != "" {
		if _, err := os.Stat(opts.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: opts.DocsPath,
				Path:     "docs",
				Title:    opts.Name,
			}))
		} else {
			opts.Log.Warn().Str("path", opts.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World!")
	})
	return app
}

// Serve escucha en addr hasta recibir SIGINT/SIGTERM y apaga con un margen de 10s.
func Serve(app *fiber.App, addr string, log *logger.Logger) {
	go func() {
		log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
