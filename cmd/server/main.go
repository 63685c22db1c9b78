package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/codingconcepts/env"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/opls-parking/gateway/internal/cookies"
	"github.com/opls-parking/gateway/internal/dispatch"
	"github.com/opls-parking/gateway/internal/health"
	"github.com/opls-parking/gateway/internal/opls"
	"github.com/opls-parking/gateway/internal/server"
	"github.com/opls-parking/gateway/internal/tokens"
)

type Config struct {
	BindAddr   string `env:"BIND_ADDR"`
	ListenPort uint16 `env:"LISTEN_PORT" default:"5000"`

	AllowedOrigins string `env:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	Opls opls.Config
}

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("error loading .env file")
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	if err := env.Set(&config.Opls); err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	ctx, close := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill, syscall.SIGTERM)
	defer close()

	srv := server.New(config.Opls)
	r := mux.NewRouter()
	srv.RegisterRoutes(r)

	// The health probe gets its own credential store so its grants never mix
	// with browser sessions
	grants := tokens.NewClient(config.Opls.BackendUrl, config.Opls.ClientId, config.Opls.ClientSecret)
	probeAuth := tokens.NewAuthenticator(grants, cookies.NewJar())
	probeClient := opls.NewClient(dispatch.New(config.Opls.BackendUrl, probeAuth))
	r.Path("/status").Methods("GET").Handler(health.NewServer(grants, probeClient))

	withCors := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(config.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf("%s:%d", config.BindAddr, config.ListenPort)
	httpServer := &http.Server{Addr: addr, Handler: withCors.Handler(server.LoggingMiddleware(r))}

	log.Info().Str("addr", addr).Msg("listening")
	var wg errgroup.Group
	wg.Go(httpServer.ListenAndServe)

	select {
	case <-ctx.Done():
		log.Info().Msg("received signal; closing server")
		httpServer.Shutdown(context.Background())
	}

	err = wg.Wait()
	if err == http.ErrServerClosed {
		log.Info().Msg("server closed")
	} else {
		log.Fatal().Err(err).Msg("error running server")
	}
}
