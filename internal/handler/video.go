package handler

import (
	"fmt"
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
	"github.com/Arittroskr32/CyberPiT-backend/internal/validation"
)

// GetCurrentVideos serves the hero-video paths for the public landing page.
func (h *Handler) GetCurrentVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.Current()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.CurrentVideosResponse{Success: true, Videos: videos})
}

// UploadVideo accepts a multipart form with a "video" file field plus
// "type" and optional "name" fields. The upload becomes the active video
// for its category.
func (h *Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	maxRequestSize := validation.CalculateMaxRequestSize(h.cfg.Public.MaxVideoUploadSize, 1<<20)
	if err := validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		maxSizeMB := validation.FormatSizeMB(h.cfg.Public.MaxVideoUploadSize)
		utils.WriteError(w, fmt.Sprintf("Video exceeds the limit of %.0f MB", maxSizeMB), http.StatusRequestEntityTooLarge)
		return
	}

	category := r.FormValue("type")
	if !domain.IsValidVideoCategory(category) {
		utils.WriteError(w, "Invalid video category", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["video"]
	if len(files) != 1 {
		utils.WriteError(w, "Exactly one video file is required", http.StatusBadRequest)
		return
	}

	upload, err := validation.ValidateUpload(files[0], h.cfg.Public.AllowedVideoMimeTypes)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer func() {
		if closer, ok := upload.Data.(interface{ Close() error }); ok {
			closer.Close()
		}
	}()

	video, err := h.videos.Upload(category, r.FormValue("name"), upload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, api.VideoResponse{Success: true, Video: video})
}

func (h *Handler) GetVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	writeJSON(w, api.VideoListResponse{Success: true, Videos: videos})
}

func (h *Handler) ToggleVideo(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.VideoToggleRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	video, err := h.videos.SetActive(id, body.IsActive)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.VideoResponse{Success: true, Video: video})
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.videos.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{Success: true, Message: "Video deleted"})
}
