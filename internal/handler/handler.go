package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/config"
	"github.com/Arittroskr32/CyberPiT-backend/internal/logger"
	"github.com/Arittroskr32/CyberPiT-backend/internal/service"
)

type Handler struct {
	auth          service.AuthService
	blog          service.BlogService
	contact       service.ContactService
	report        service.ReportService
	feedback      service.FeedbackService
	project       service.ProjectService
	team          service.TeamService
	subscriptions service.SubscriptionService
	videos        service.VideoService
	dashboard     service.DashboardService
	cfg           *config.Config
}

func New(
	auth service.AuthService,
	blog service.BlogService,
	contact service.ContactService,
	report service.ReportService,
	feedback service.FeedbackService,
	project service.ProjectService,
	team service.TeamService,
	subscriptions service.SubscriptionService,
	videos service.VideoService,
	dashboard service.DashboardService,
	cfg *config.Config,
) *Handler {
	return &Handler{auth, blog, contact, report, feedback, project, team, subscriptions, videos, dashboard, cfg}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
