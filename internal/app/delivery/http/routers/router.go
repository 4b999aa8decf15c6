package routers

import (
	"telecheck-service/internal/app/config"
	"telecheck-service/internal/app/delivery/http/controllers"
	"telecheck-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	portalController *controllers.PortalController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.CreateRateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.SessionScope)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, authController)
		})

		r.Route("/portal", func(r chi.Router) {
			attachPortalRoutes(r, middlewares, portalController)
		})
	})
}
