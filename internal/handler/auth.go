package handler

import (
	"net/http"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/middleware"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, admin, err := h.auth.Login(body.Email, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	cookie := &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)

	writeJSON(w, api.LoginResponse{Success: true, Token: token, Admin: admin})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)

	writeJSON(w, api.MessageResponse{Success: true, Message: "Logged out"})
}

// Me returns the account behind the presented token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetAdminFromContext(r)
	if admin == nil {
		utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	writeJSON(w, api.AdminResponse{Success: true, Admin: *admin})
}
