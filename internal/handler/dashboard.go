package handler

import (
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.DashboardStatsResponse{Success: true, Stats: stats})
}
