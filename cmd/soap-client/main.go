// soap-client invoca CreateProduct en el servicio SOAP (SOAP_ENDPOINT).
//
// Uso: go run ./cmd/soap-client -name "My product" -about "A great product" -price 99.99
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/interfaces/soap"
	"github.com/jhoicas/resource-api/pkg/config"
	"github.com/jhoicas/resource-api/pkg/logger"
)

func main() {
	name := flag.String("name", "My product", "nombre del producto")
	about := flag.String("about", "A great product", "descripción")
	price := flag.String("price", "99.99", "precio")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	p, err := decimal.NewFromString(*price)
	if err != nil {
		log.Fatal().Err(err).Str("price", *price).Msg("precio inválido")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := soap.NewClient(cfg.SOAP.Endpoint, 30*time.Second)
	out, err := client.CreateProduct(ctx, dto.CreateProductRequest{Name: *name, About: *about, Price: p})
	if err != nil {
		var fault *soap.Fault
		if errors.As(err, &fault) {
			log.Fatal().
				Str("code", fault.Code).
				Str("subcode", fault.Subcode).
				Str("reason", fault.Reason).
				Interface("detail", fault.Detail).
				Msg("soap fault")
		}
		log.Fatal().Err(err).Msg("llamada SOAP")
	}
	log.Info().
		Str("id", out.ID).
		Str("name", out.Name).
		Str("about", out.About).
		Str("price", out.Price.String()).
		Msg("producto creado")
}
