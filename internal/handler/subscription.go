package handler

import (
	"fmt"
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/service"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body api.SubscribeRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	_, status, err := h.subscriptions.Subscribe(body.Email)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var message string
	switch status {
	case service.SubscribedAlready:
		message = "You are already subscribed!"
	case service.SubscribedAgain:
		message = "Welcome back! You have been resubscribed."
	default:
		message = "Thank you for subscribing!"
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: message})
}

func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if err := h.subscriptions.Unsubscribe(token); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Unsubscribed successfully"})
}

func (h *Handler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptions.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	writeJSON(w, api.SubscriptionListResponse{Success: true, Subscriptions: subs})
}

// ToggleSubscription flips a subscriber active or inactive from the admin panel.
func (h *Handler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.SubscriptionToggleRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	sub, err := h.subscriptions.SetActive(id, body.IsActive)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.SubscriptionResponse{Success: true, Subscription: sub})
}

func (h *Handler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.subscriptions.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Subscription deleted"})
}

// DeleteSubscriptionsBatch removes a selected set of subscribers in one call.
func (h *Handler) DeleteSubscriptionsBatch(w http.ResponseWriter, r *http.Request) {
	var body api.BatchDeleteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	deleted, err := h.subscriptions.DeleteBatch(body.Ids)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: fmt.Sprintf("%d subscriptions deleted successfully", deleted)})
}

func (h *Handler) DeleteAllSubscriptions(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.subscriptions.DeleteAll()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.DeletedCountResponse{Success: true, Deleted: deleted})
}

// SendNewsletter pushes a bulk email to all active subscribers. Partial
// failures still return 200: the body carries per-recipient counts.
func (h *Handler) SendNewsletter(w http.ResponseWriter, r *http.Request) {
	var body api.NewsletterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	outcome, err := h.subscriptions.SendNewsletter(r.Context(), body.Subject, body.Message)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	message := "Newsletter sent"
	if !outcome.Success {
		message = "Newsletter sent with failures"
	}
	writeJSON(w, api.NewNewsletterResponse(outcome, message))
}
