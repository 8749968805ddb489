package handler

import (
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var body api.ContactRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	contact, err := h.contact.Submit(domain.Contact{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.ContactResponse{Success: true, Contact: contact})
}

func (h *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contact.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	writeJSON(w, api.ContactListResponse{Success: true, Contacts: contacts})
}

func (h *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateContactStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	contact, err := h.contact.UpdateStatus(id, body.Status, body.AdminResponse)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.ContactResponse{Success: true, Contact: contact})
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.contact.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Contact deleted"})
}

func (h *Handler) ClearContacts(w http.ResponseWriter, r *http.Request) {
	if _, err := h.contact.DeleteAll(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "All contacts cleared successfully"})
}
