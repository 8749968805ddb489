// Command create-admin bootstraps (or resets) an admin account. Safe to run
// repeatedly: an existing email gets its password and role updated.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Arittroskr32/CyberPiT-backend/internal/config"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/logger"
	"github.com/Arittroskr32/CyberPiT-backend/internal/storage/pg"
)

func main() {
	var configFolder, email, password, name, role string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&email, "email", "", "admin email")
	flag.StringVar(&password, "password", "", "admin password")
	flag.StringVar(&name, "name", "Admin", "display name")
	flag.StringVar(&role, "role", domain.RoleAdmin, "admin role")
	flag.Parse()

	_ = godotenv.Load()

	if email == "" || password == "" {
		logger.Log.Error("email and password are required")
		os.Exit(1)
	}
	if role != domain.RoleAdmin && role != domain.RoleSuperAdmin {
		logger.Log.Error("invalid role", "role", role)
		os.Exit(1)
	}

	cfg := config.MustLoad(configFolder)

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	id, err := storage.SaveAdmin(domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	})
	if err != nil {
		logger.Log.Error("failed to save admin", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("admin account ready", "id", id, "email", email, "role", role)
}
