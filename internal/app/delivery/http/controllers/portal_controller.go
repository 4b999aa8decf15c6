package controllers

import (
	"net/http"

	"telecheck-service/internal/app/models"
	"telecheck-service/internal/pkg/constvars"
	"telecheck-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// PortalController serves the protected portal views. Every handler runs
// behind the access guard, so a request that reaches one already holds a
// rendered session snapshot in its context.
type PortalController struct {
	Log *zap.Logger
}

func NewPortalController(logger *zap.Logger) *PortalController {
	return &PortalController{Log: logger}
}

func sessionFromContext(r *http.Request) models.Session {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_SNAPSHOT_KEY).(models.Session)
	return session
}

func (ctrl *PortalController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Successfully fetched dashboard", map[string]interface{}{
		"role":        session.Identity.Role,
		"name":        session.Identity.Name,
		"permissions": session.Identity.Permissions,
	})
}

func (ctrl *PortalController) PatientRecords(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r)
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Successfully fetched patient records", map[string]interface{}{
		"viewer_role": session.Identity.Role,
		"records":     []interface{}{},
	})
}

func (ctrl *PortalController) Prescriptions(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Successfully fetched prescriptions", map[string]interface{}{
		"prescriptions": []interface{}{},
	})
}

func (ctrl *PortalController) AdminSettings(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Successfully fetched system settings", map[string]interface{}{
		"settings": map[string]interface{}{},
	})
}
