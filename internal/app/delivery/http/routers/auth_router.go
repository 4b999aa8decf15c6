package routers

import (
	"telecheck-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/logout", authController.Logout)
	router.Post("/switch-role", authController.SwitchRole)
	router.Get("/session", authController.Session)
}
