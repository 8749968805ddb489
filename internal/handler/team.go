package handler

import (
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

// GetTeamMembers serves the public roster: active members only.
func (h *Handler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.Members(true)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if members == nil {
		members = []domain.TeamMember{}
	}
	writeJSON(w, api.TeamMemberListResponse{Success: true, Members: members})
}

// GetAdminTeamMembers lists every member, hidden ones included.
func (h *Handler) GetAdminTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.Members(false)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if members == nil {
		members = []domain.TeamMember{}
	}
	writeJSON(w, api.TeamMemberListResponse{Success: true, Members: members})
}

func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var body api.TeamMemberRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	member, err := h.team.CreateMember(teamMemberFromRequest(body, 0))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.TeamMemberResponse{Success: true, Member: member})
}

func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.TeamMemberRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	member, err := h.team.UpdateMember(teamMemberFromRequest(body, id))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.TeamMemberResponse{Success: true, Member: member})
}

func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.team.DeleteMember(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Team member deleted"})
}

func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var body api.ApplicationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	application, err := h.team.Apply(domain.TeamApplication{
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
		Linkedin: body.Linkedin,
		Interest: body.Interest,
		Comment:  body.Comment,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.ApplicationResponse{Success: true, Application: application})
}

func (h *Handler) GetApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.team.Applications(r.URL.Query().Get("status"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if applications == nil {
		applications = []domain.TeamApplication{}
	}
	writeJSON(w, api.ApplicationListResponse{Success: true, Applications: applications})
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	application, err := h.team.Application(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.ApplicationResponse{Success: true, Application: application})
}

func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateApplicationStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	application, err := h.team.UpdateApplicationStatus(id, body.Status, body.AdminNotes)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.ApplicationResponse{Success: true, Application: application})
}

func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.team.DeleteApplication(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Application deleted"})
}

func teamMemberFromRequest(body api.TeamMemberRequest, id int64) domain.TeamMember {
	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}
	return domain.TeamMember{
		Id:        id,
		Name:      body.Name,
		Role:      body.Role,
		Image:     body.Image,
		Bio:       body.Bio,
		SortOrder: body.SortOrder,
		IsActive:  active,
	}
}

func (h *Handler) ClearApplications(w http.ResponseWriter, r *http.Request) {
	if _, err := h.team.DeleteAllApplications(); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "All applications cleared successfully"})
}
