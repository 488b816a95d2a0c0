package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resource-api/internal/application/auth"
	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/domain/entity"
)

// RouterDeps dependencias para el router. Los use cases nil no registran rutas,
// así cada binario monta solo su familia de recursos.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	UserUC     *usecase.UserUseCase
	OrderUC    *usecase.OrderUseCase
	EventUC    *usecase.EventUseCase
	GameUC     *usecase.GameUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string // vacío: /orders queda público
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		app.Post("/auth/login", authHandler.Login)
	}

	if deps.ProductUC != nil {
		products := app.Group("/products")
		productHandler := NewProductHandler(deps.ProductUC)
		products.Post("/", productHandler.Create)
		products.Get("/", productHandler.List)
		products.Get("/:id", productHandler.GetByID)
		products.Put("/:id", productHandler.Replace)
		products.Patch("/:id", productHandler.Patch)
		products.Delete("/:id", productHandler.Delete)
	}

	if deps.CategoryUC != nil {
		categories := app.Group("/categories")
		categoryHandler := NewCategoryHandler(deps.CategoryUC)
		categories.Post("/", categoryHandler.Create)
		categories.Get("/", categoryHandler.List)
	}

	if deps.UserUC != nil {
		users := app.Group("/users")
		userHandler := NewUserHandler(deps.UserUC)
		users.Post("/", userHandler.Create)
		users.Get("/", userHandler.List)
		users.Get("/:id", userHandler.GetByID)
		users.Put("/:id", userHandler.Replace)
		users.Patch("/:id", userHandler.Patch)
		users.Delete("/:id", userHandler.Delete)
	}

	if deps.OrderUC != nil {
		// Pedidos: protegidos con Bearer Token solo si hay secreto configurado
		var orders fiber.Router
		if deps.JWTSecret != "" {
			orders = app.Group("/orders", AuthMiddleware(deps.JWTSecret))
		} else {
			orders = app.Group("/orders")
		}
		orderHandler := NewOrderHandler(deps.OrderUC)
		orders.Post("/", orderHandler.Create)
		orders.Get("/", orderHandler.List)
		orders.Get("/:id", orderHandler.GetByID)
		orders.Get("/:id/receipt", orderHandler.Receipt)
		orders.Put("/:id", orderHandler.Replace)
		orders.Patch("/:id", orderHandler.Patch)
		orders.Delete("/:id", orderHandler.Delete)
	}

	if deps.EventUC != nil {
		eventHandler := NewEventHandler(deps.EventUC)
		app.Post("/views", eventHandler.CreateView)
		app.Get("/views", eventHandler.List(entity.EventView))
		app.Post("/actions", eventHandler.CreateAction)
		app.Get("/actions", eventHandler.List(entity.EventAction))
		app.Post("/goals", eventHandler.CreateGoal)
		app.Get("/goals", eventHandler.List(entity.EventGoal))
	}

	if deps.GameUC != nil {
		games := app.Group("/f2p-games")
		gameHandler := NewGameHandler(deps.GameUC)
		games.Get("/", gameHandler.List)
		games.Get("/:id", gameHandler.GetByID)
	}
}
