package handler

import (
	"net/http"
	"sync"

	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"

	"github.com/rs/zerolog/log"
)

var (
	app     http.Handler
	initErr error
	once    sync.Once
)

// Handler serves the application as a single serverless function. The
// dependency graph is built on the first invocation and reused while the
// instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app, _, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	app.ServeHTTP(w, r)
}
