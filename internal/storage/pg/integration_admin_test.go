package pg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

func clearTable(t *testing.T, table string) {
	t.Helper()
	_, err := storage.db.Exec(fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", table))
	require.NoError(t, err)
}

func TestAdminStorage(t *testing.T) {
	t.Run("save and fetch", func(t *testing.T) {
		clearTable(t, "admins")

		id, err := storage.SaveAdmin(domain.Admin{
			Email:        "Root@CyberPiT.com",
			PasswordHash: "hash1",
			Name:         "Root",
			Role:         domain.RoleSuperAdmin,
		})
		require.NoError(t, err)

		admin, err := storage.Admin(id)
		require.NoError(t, err)
		assert.Equal(t, "root@cyberpit.com", admin.Email)
		assert.Equal(t, domain.RoleSuperAdmin, admin.Role)
		assert.True(t, admin.IsActive)
		assert.Nil(t, admin.LastLogin)
	})

	t.Run("save is idempotent per email", func(t *testing.T) {
		clearTable(t, "admins")

		first, err := storage.SaveAdmin(domain.Admin{Email: "ops@cyberpit.com", PasswordHash: "old", Name: "Ops", Role: domain.RoleAdmin})
		require.NoError(t, err)
		second, err := storage.SaveAdmin(domain.Admin{Email: "ops@cyberpit.com", PasswordHash: "new", Name: "Ops Renamed", Role: domain.RoleSuperAdmin})
		require.NoError(t, err)
		assert.Equal(t, first, second)

		admin, err := storage.Admin(first)
		require.NoError(t, err)
		assert.Equal(t, "new", admin.PasswordHash)
		assert.Equal(t, "Ops Renamed", admin.Name)
		assert.Equal(t, domain.RoleSuperAdmin, admin.Role)
	})

	t.Run("lookup by email ignores case", func(t *testing.T) {
		clearTable(t, "admins")

		_, err := storage.SaveAdmin(domain.Admin{Email: "lead@cyberpit.com", PasswordHash: "h", Name: "Lead", Role: domain.RoleAdmin})
		require.NoError(t, err)

		admin, err := storage.AdminByEmail("LEAD@cyberpit.COM")
		require.NoError(t, err)
		assert.Equal(t, "lead@cyberpit.com", admin.Email)
	})

	t.Run("touch last login", func(t *testing.T) {
		clearTable(t, "admins")

		id, err := storage.SaveAdmin(domain.Admin{Email: "a@cyberpit.com", PasswordHash: "h", Name: "A", Role: domain.RoleAdmin})
		require.NoError(t, err)

		require.NoError(t, storage.TouchLastLogin(id))

		admin, err := storage.Admin(id)
		require.NoError(t, err)
		assert.NotNil(t, admin.LastLogin)
	})

	t.Run("missing admin", func(t *testing.T) {
		clearTable(t, "admins")

		_, err := storage.Admin(123)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.True(t, internal_errors.IsNotFound(storage.TouchLastLogin(123)))
	})
}
