package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
	"github.com/Arittroskr32/CyberPiT-backend/internal/logger"
)

type AuthService interface {
	Login(email, password string) (string, domain.Admin, error)
	Admin(id int64) (domain.Admin, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	Admin(id int64) (domain.Admin, error)
	AdminByEmail(email string) (domain.Admin, error)
	TouchLastLogin(id int64) error
}

type Jwt interface {
	NewToken(admin domain.Admin) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Login verifies credentials and issues a signed token. Lookup failures and
// bad passwords collapse into one message so the endpoint doesn't leak
// which emails have accounts.
func (a *Auth) Login(email, password string) (string, domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := a.storage.AdminByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", domain.Admin{}, errors.Unauthorized("Invalid credentials")
		}
		return "", domain.Admin{}, err
	}

	if !admin.IsActive {
		return "", domain.Admin{}, errors.Unauthorized("Invalid credentials")
	}
	if !admin.HasAdminRole() {
		return "", domain.Admin{}, errors.Unauthorized("Access denied. Admin privileges required")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", domain.Admin{}, errors.Unauthorized("Invalid credentials")
	}

	token, err := a.jwt.NewToken(admin)
	if err != nil {
		return "", domain.Admin{}, err
	}

	if err := a.storage.TouchLastLogin(admin.Id); err != nil {
		// Login still succeeds, the stamp is advisory.
		logger.Log.Error("failed to update last login", "admin_id", admin.Id, "error", err)
	}

	return token, admin, nil
}

func (a *Auth) Admin(id int64) (domain.Admin, error) {
	return a.storage.Admin(id)
}
