// rest-postgres expone products, categories, users, orders, auth y el proxy de juegos sobre PostgreSQL.
package main

import (
	"context"

	"github.com/jhoicas/resource-api/internal/application/auth"
	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/infrastructure/freetogame"
	infrapdf "github.com/jhoicas/resource-api/internal/infrastructure/pdf"
	"github.com/jhoicas/resource-api/internal/infrastructure/postgres"
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
		Str("app", cfg.App.Name).
		Msg("iniciando rest-postgres")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: comprobante del pedido
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)
	games := freetogame.NewClient(cfg.FreeToGame.BaseURL, cfg.FreeToGame.Timeout)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if !authUC.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: /orders sin autenticación y /auth/login deshabilitado")
	}

	app := httpRouter.NewApp(httpRouter.ServerOptions{
		Name:     cfg.App.Name,
		DocsPath: httpRouter.DefaultDocsPath,
		Log:      log,
	})
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(productRepo),
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo),
		UserUC:     usecase.NewUserUseCase(userRepo),
		OrderUC:    usecase.NewOrderUseCase(orderRepo, txRunner, receipts),
		GameUC:     usecase.NewGameUseCase(games),
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	httpRouter.Serve(app, cfg.HTTP.Addr(), log)
	log.Info().Msg("aplicación detenida")
}
