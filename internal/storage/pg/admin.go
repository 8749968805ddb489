package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"

	_ "github.com/lib/pq"
)

const adminColumns = "id, email, password_hash, name, role, last_login, is_active, created, updated"

func scanAdmin(row *sql.Row) (domain.Admin, error) {
	var a domain.Admin
	var lastLogin sql.NullTime
	err := row.Scan(&a.Id, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &lastLogin, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Admin{}, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		a.LastLogin = &t
	}
	return a, nil
}

// Admin fetches an admin account by id.
func (s *Storage) Admin(id int64) (domain.Admin, error) {
	row := s.db.QueryRow("SELECT "+adminColumns+" FROM admins WHERE id = $1", id)
	admin, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Admin{}, internal_errors.NotFound("Admin not found")
		}
		return domain.Admin{}, fmt.Errorf("failed to query admin: %w", err)
	}
	return admin, nil
}

// AdminByEmail fetches an admin account by email. Lookup is case-insensitive.
func (s *Storage) AdminByEmail(email string) (domain.Admin, error) {
	row := s.db.QueryRow("SELECT "+adminColumns+" FROM admins WHERE LOWER(email) = LOWER($1)", email)
	admin, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Admin{}, internal_errors.NotFound("Admin not found")
		}
		return domain.Admin{}, fmt.Errorf("failed to query admin by email: %w", err)
	}
	return admin, nil
}

// SaveAdmin inserts a new admin account. Existing email upserts the
// password hash, name and role so the bootstrap tool stays idempotent.
func (s *Storage) SaveAdmin(admin domain.Admin) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
        INSERT INTO admins(email, password_hash, name, role)
        VALUES(LOWER($1), $2, $3, $4)
        ON CONFLICT (email) DO UPDATE
            SET password_hash = EXCLUDED.password_hash,
                name = EXCLUDED.name,
                role = EXCLUDED.role,
                updated = NOW()
        RETURNING id`,
		strings.TrimSpace(admin.Email), admin.PasswordHash, admin.Name, admin.Role).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save admin: %w", err)
	}
	return id, nil
}

// TouchLastLogin stamps a successful login.
func (s *Storage) TouchLastLogin(id int64) error {
	result, err := s.db.Exec("UPDATE admins SET last_login = NOW(), updated = NOW() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for last login update: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Admin not found")
	}
	return nil
}
