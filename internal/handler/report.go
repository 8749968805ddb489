package handler

import (
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

func (h *Handler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var body api.ReportRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	report, err := h.report.Submit(domain.Report{
		Title:         body.Title,
		Description:   body.Description,
		ReporterName:  body.ReporterName,
		ReporterEmail: body.ReporterEmail,
		Category:      body.Category,
		ProjectURL:    body.ProjectURL,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.ReportResponse{Success: true, Report: report})
}

// GetFeaturedReports serves the public list of approved community findings.
func (h *Handler) GetFeaturedReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.report.Featured()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	writeJSON(w, api.ReportListResponse{Success: true, Reports: reports})
}

func (h *Handler) GetReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.report.List(r.URL.Query().Get("status"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	writeJSON(w, api.ReportListResponse{Success: true, Reports: reports})
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	report, err := h.report.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.ReportResponse{Success: true, Report: report})
}

func (h *Handler) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateReportStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	report, err := h.report.UpdateStatus(id, body.Status, body.AdminNotes)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.ReportResponse{Success: true, Report: report})
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.report.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Report deleted"})
}

func (h *Handler) ClearReports(w http.ResponseWriter, r *http.Request) {
	if _, err := h.report.DeleteAll(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "All reports cleared successfully"})
}
