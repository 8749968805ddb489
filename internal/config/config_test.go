package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeTestConfig(t,
		"port: 9090\njwt_ttl: 24h\nblogs_per_page: 9\nmedia_root: media\n",
		"jwt_key: 'file-key'\npg:\n  host: localhost\n  port: 5432\n  user: u\n  password: p\n  dbname: d\n")

	cfg := MustLoad(dir)

	if cfg.Public.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Public.Port)
	}
	if cfg.JwtTTL() != 24*time.Hour {
		t.Errorf("jwt_ttl = %s, want 24h", cfg.JwtTTL())
	}
	if cfg.JwtKey() != "file-key" {
		t.Errorf("jwt_key = %q, want file-key", cfg.JwtKey())
	}
	if cfg.Private.Pg.Host != "localhost" {
		t.Errorf("pg host = %q, want localhost", cfg.Private.Pg.Host)
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for missing config file")
		}
	}()

	_ = MustLoad(t.TempDir())
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	dir := writeTestConfig(t,
		"port: 8080\n",
		"jwt_key: 'file-key'\npg:\n  password: file-pass\nbrevo:\n  api_key: file-api\n")

	t.Setenv("JWT_KEY", "env-key")
	t.Setenv("PG_PASSWORD", "env-pass")
	t.Setenv("BREVO_API_KEY", "env-api")

	cfg := MustLoad(dir)

	if cfg.JwtKey() != "env-key" {
		t.Errorf("jwt_key = %q, want env override", cfg.JwtKey())
	}
	if cfg.Private.Pg.Password != "env-pass" {
		t.Errorf("pg password = %q, want env override", cfg.Private.Pg.Password)
	}
	if cfg.Private.Brevo.APIKey != "env-api" {
		t.Errorf("brevo api key = %q, want env override", cfg.Private.Brevo.APIKey)
	}
}
