// Package main is the entry point for the checkout-service application.
//
// @title           Checkout Service API
// @version         1.0.0
// @description     Product catalog and stateless shopping cart with a threshold discount.
//
//	Clients own their cart state and send it with every action; the service never stores carts.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/checkout-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Checkout
// @tag.description Cart loading, quantity actions and order summary
//
// @tag.name        Catalog
// @tag.description Product catalog source and maintenance
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/guttosm/checkout-service/docs" // swagger docs

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/app"
	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := server.Run(ctx)
	stop()

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := application.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
