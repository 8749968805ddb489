package handler

import (
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var body api.FeedbackRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	feedback, err := h.feedback.Submit(domain.Feedback{
		Name:      body.Name,
		Email:     body.Email,
		Role:      body.Role,
		Workplace: body.Workplace,
		Comment:   body.Comment,
		Rating:    body.Rating,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.FeedbackResponse{Success: true, Feedback: feedback})
}

// GetPublicFeedback serves the testimonials page, curated entries first.
func (h *Handler) GetPublicFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedback.Public()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if entries == nil {
		entries = []domain.Feedback{}
	}
	writeJSON(w, api.FeedbackListResponse{Success: true, Feedback: entries})
}

func (h *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedback.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if entries == nil {
		entries = []domain.Feedback{}
	}
	writeJSON(w, api.FeedbackListResponse{Success: true, Feedback: entries})
}

func (h *Handler) SetFeedbackFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.SetFeaturedRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	feedback, err := h.feedback.SetFeatured(id, body.Featured)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.FeedbackResponse{Success: true, Feedback: feedback})
}

func (h *Handler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.feedback.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Feedback deleted"})
}
