package router

import (
	"net/http"
	"strings"

	"hotelier/config"
	"hotelier/infras/metrics"
	"hotelier/internal/handlers/hotel"
	"hotelier/internal/handlers/room"
	"hotelier/transport/http/middleware"

	_ "hotelier/docs" // swagger spec

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Hotel hotel.Handler
	Room  room.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	config         *config.Config
	middleware     middleware.AppMiddleware
	metrics        *metrics.Metrics
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		chiMiddleware.Recoverer,
	)

	if r.config.App.CORS.Enable {
		corsConfig := r.config.App.CORS

		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	router.Use(
		r.middleware.Tracing,
		r.middleware.Logger,
		r.middleware.Metrics,
	)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.middleware.RateLimit())

		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
	})

	if r.config.Storage.Driver == config.StorageDriverLocal {
		publicPath := "/" + strings.Trim(r.config.Storage.Local.PublicPath, "/")

		router.Handle(publicPath+"/*", http.StripPrefix(publicPath, staticFiles(r.config.Storage.Local.Directory)))
	}

	router.Handle("/metrics", r.metrics.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

// staticFiles serves stored uploads read-only without directory listings.
func staticFiles(directory string) http.Handler {
	fileServer := http.FileServer(http.Dir(directory))

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasSuffix(req.URL.Path, "/") {
			http.NotFound(w, req)

			return
		}

		fileServer.ServeHTTP(w, req)
	})
}

func New(cfg *config.Config, domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, metrics *metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		config:         cfg,
		middleware:     appMiddleware,
		metrics:        metrics,
	}
}
