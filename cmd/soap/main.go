// soap expone ProductsService (CreateProduct, SOAP 1.2) sobre PostgreSQL.
package main

import (
	"context"

	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/resource-api/internal/interfaces/http"
	"github.com/jhoicas/resource-api/internal/interfaces/soap"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Sin Swagger: el contrato es el WSDL
	app := httpRouter.NewApp(httpRouter.ServerOptions{Name: cfg.App.Name, Log: log})
	soap.NewHandler(usecase.NewProductUseCase(postgres.NewProductRepository(pool)), log).Register(app)

	log.Info().Str("wsdl", "http://"+cfg.HTTP.Addr()+"/products?wsdl").Msg("servicio SOAP listo")
	httpRouter.Serve(app, cfg.HTTP.Addr(), log)
	log.Info().Msg("aplicación detenida")
}
