package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port               int           `yaml:"port"`
	FrontendURL        string        `yaml:"frontend_url"`
	MediaRoot          string        `yaml:"media_root"`
	JwtTTL             time.Duration `yaml:"jwt_ttl"`
	BlogsPerPage       int           `yaml:"blogs_per_page"`
	AdminBlogsPerPage  int           `yaml:"admin_blogs_per_page"`
	MaxVideoUploadSize int64         `yaml:"max_video_upload_size"`
	MaxImageUploadSize int64         `yaml:"max_image_upload_size"`

	AllowedImageMimeTypes []string `yaml:"allowed_image_mime_types"`
	AllowedVideoMimeTypes []string `yaml:"allowed_video_mime_types"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Brevo struct {
	APIKey      string `yaml:"api_key"`
	SenderName  string `yaml:"sender_name"`
	SenderEmail string `yaml:"sender_email"`
	BaseURL     string `yaml:"base_url"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
	Brevo  Brevo  `yaml:"brevo"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyEnvOverrides()
	return cfg
}

// applyEnvOverrides lets deployment secrets injected through the environment
// (or a .env file loaded by the caller) win over the private yaml file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("JWT_KEY"); v != "" {
		c.Private.JwtKey = v
	}
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		c.Private.Pg.Password = v
	}
	if v := os.Getenv("BREVO_API_KEY"); v != "" {
		c.Private.Brevo.APIKey = v
	}
	if v := os.Getenv("BREVO_SENDER_EMAIL"); v != "" {
		c.Private.Brevo.SenderEmail = v
	}
	if v := os.Getenv("BREVO_SENDER_NAME"); v != "" {
		c.Private.Brevo.SenderName = v
	}
}
