package handler

import (
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.project.List(r.URL.Query().Get("status"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	writeJSON(w, api.ProjectListResponse{Success: true, Projects: projects})
}

// GetFeaturedProjects serves the highlighted projects for the landing page.
func (h *Handler) GetFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.project.Featured()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	writeJSON(w, api.ProjectListResponse{Success: true, Projects: projects})
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	project, err := h.project.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.ProjectResponse{Success: true, Project: project})
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var body api.ProjectRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	project, err := h.project.Create(projectFromRequest(body, 0))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.ProjectResponse{Success: true, Project: project})
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.ProjectRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	project, err := h.project.Update(projectFromRequest(body, id))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.ProjectResponse{Success: true, Project: project})
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.project.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Project deleted"})
}

func projectFromRequest(body api.ProjectRequest, id int64) domain.Project {
	return domain.Project{
		Id:          id,
		Title:       body.Title,
		Date:        body.Date,
		Category:    body.Category,
		Description: body.Description,
		Image:       body.Image,
		Tags:        body.Tags,
		Link:        body.Link,
		Featured:    body.Featured,
		Status:      body.Status,
		SortOrder:   body.SortOrder,
	}
}
