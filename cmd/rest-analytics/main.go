// rest-analytics captura eventos views, actions y goals en MongoDB.
package main

import (
	"context"

	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/infrastructure/mongodb"
	httpRouter "github.com/jhoicas/resource-api/internal/interfaces/http"
	"github.com/jhoicas/resource-api/pkg/config"
	"github.com/jhoicas/resource-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db", cfg.Mongo.Database).
		Msg("iniciando rest-analytics")

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	app := httpRouter.NewApp(httpRouter.ServerOptions{
		Name:     cfg.App.Name,
		DocsPath: httpRouter.DefaultDocsPath,
		Log:      log,
	})
	httpRouter.Router(app, httpRouter.RouterDeps{
		EventUC: usecase.NewEventUseCase(mongodb.NewEventRepository(db)),
	})

	httpRouter.Serve(app, cfg.HTTP.Addr(), log)
	log.Info().Msg("aplicación detenida")
}
