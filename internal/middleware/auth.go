package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	jwt_internal "github.com/Arittroskr32/CyberPiT-backend/internal/jwt"
	"github.com/Arittroskr32/CyberPiT-backend/internal/logger"
	"github.com/Arittroskr32/CyberPiT-backend/internal/utils"
)

// AdminProvider looks up the admin account behind a token so revoked or
// deactivated accounts lose access immediately, not at token expiry.
type AdminProvider interface {
	Admin(id int64) (domain.Admin, error)
}

// Key to store the admin claims in the request context
type key int

const AdminClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
	admins     AdminProvider
}

func NewAuth(jwtService jwt_internal.JwtService, admins AdminProvider) *Auth {
	return &Auth{jwtService: jwtService, admins: admins}
}

// AdminOnly returns middleware that requires a valid token of an active admin.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, err := a.extractAdmin(r)
			if err != nil {
				switch err {
				case errNoToken:
					utils.WriteError(w, "No token provided", http.StatusUnauthorized)
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
				case errInactive:
					utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
				default:
					utils.WriteErrorAndStatusCode(w, err)
				}
				return
			}

			if !admin.HasAdminRole() {
				utils.WriteError(w, "Access denied. Admin privileges required", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), AdminClaimsKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractAdmin validates the bearer token and re-checks the account state.
func (a *Auth) extractAdmin(r *http.Request) (*domain.Admin, error) {
	var tokenString string
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	} else if accessCookie, err := r.Cookie("accessToken"); err == nil {
		tokenString = accessCookie.Value
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	aidFloat, ok := claims["aid"].(float64)
	if !ok {
		return nil, errInvalidClaims
	}

	admin, err := a.admins.Admin(int64(aidFloat))
	if err != nil {
		return nil, errInactive
	}
	if !admin.IsActive {
		return nil, errInactive
	}

	return &admin, nil
}

// Sentinel errors for extractAdmin
var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
	errInactive      = errorString("inactive admin")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// GetAdminFromContext retrieves the authenticated admin from the context
func GetAdminFromContext(r *http.Request) *domain.Admin {
	admin, ok := r.Context().Value(AdminClaimsKey).(*domain.Admin)
	if !ok {
		return nil
	}
	return admin
}
