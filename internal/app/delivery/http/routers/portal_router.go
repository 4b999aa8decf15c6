package routers

import (
	"telecheck-service/internal/app/delivery/http/controllers"
	"telecheck-service/internal/app/delivery/http/middlewares"
	"telecheck-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachPortalRoutes(router chi.Router, middlewares *middlewares.Middlewares, portalController *controllers.PortalController) {
	router.With(middlewares.Guard(models.AccessRequirement{})).
		Get("/dashboard", portalController.Dashboard)

	router.With(middlewares.Guard(models.AccessRequirement{
		AllowedRoles:        []models.Role{models.RoleDoctor, models.RoleNurse, models.RoleAdmin},
		RequiredPermissions: []string{"view_all_patients"},
	})).Get("/patients", portalController.PatientRecords)

	router.With(middlewares.Guard(models.AccessRequirement{
		AllowedRoles:        []models.Role{models.RolePharmacist, models.RoleAdmin},
		RequiredPermissions: []string{"review_prescriptions", "dispense_medications"},
	})).Get("/prescriptions", portalController.Prescriptions)

	router.With(middlewares.RequireRoles(models.RoleAdmin)).
		With(middlewares.RequirePermissions("system_settings")).
		Get("/admin/settings", portalController.AdminSettings)
}
