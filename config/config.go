package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPageSize is used when the config file does not set one.
const DefaultPageSize = 10

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // computed after load
	} `yaml:"server"`

	Data struct {
		BaseDir       string `yaml:"base_dir"`
		ProjectFile   string `yaml:"project_file"`   // JSON-lines project catalog
		ResultPattern string `yaml:"result_pattern"` // per-user results file, {uid} placeholder
		UsersFile     string `yaml:"users_file"`     // persisted user profiles
		PageSize      int    `yaml:"page_size"`
	} `yaml:"data"`

	Login struct {
		Placeholder string   `yaml:"placeholder"` // first selector entry, means "not logged in"
		UserIDs     []string `yaml:"user_ids"`    // closed set of selectable accounts
	} `yaml:"login"`

	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
}

func Load() *Config {
	// .env is optional; fall through to the process environment.
	_ = godotenv.Load()

	var cfg Config

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")
		applyEnvOverrides(&cfg)
		applyDefaults(&cfg)
		return &cfg
	}

	return loadFromEnv()
}

func loadFromEnv() *Config {
	var cfg Config
	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	log.Println("Configuration loaded from environment, some settings may be missing")
	return &cfg
}

func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if dir := os.Getenv("DATA_BASE_DIR"); dir != "" {
		cfg.Data.BaseDir = dir
	}
	if f := os.Getenv("USERS_FILE"); f != "" {
		cfg.Data.UsersFile = f
	}
	if f := os.Getenv("PROJECT_FILE"); f != "" {
		cfg.Data.ProjectFile = f
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.Data.BaseDir == "" {
		cfg.Data.BaseDir = "."
	}
	if cfg.Data.ProjectFile == "" {
		cfg.Data.ProjectFile = "project_textified.jsonl"
	}
	if cfg.Data.ResultPattern == "" {
		cfg.Data.ResultPattern = "hybrid_results_{uid}.json"
	}
	if cfg.Data.UsersFile == "" {
		cfg.Data.UsersFile = "users.json"
	}
	if cfg.Data.PageSize <= 0 {
		cfg.Data.PageSize = DefaultPageSize
	}
	if cfg.Login.Placeholder == "" {
		cfg.Login.Placeholder = "select an account"
	}
	if len(cfg.Login.UserIDs) == 0 {
		cfg.Login.UserIDs = []string{"u00001", "u00002", "u00003"}
	}
}

// ProjectPath returns the path of the project catalog file.
func (c *Config) ProjectPath() string {
	return filepath.Join(c.Data.BaseDir, c.Data.ProjectFile)
}

// ResultPath returns the results file path for the given login id.
func (c *Config) ResultPath(uid string) string {
	name := strings.ReplaceAll(c.Data.ResultPattern, "{uid}", uid)
	return filepath.Join(c.Data.BaseDir, name)
}

// UsersPath returns the user store file path.
func (c *Config) UsersPath() string {
	return filepath.Join(c.Data.BaseDir, c.Data.UsersFile)
}

// IsKnownLogin reports whether uid is one of the selectable accounts.
func (c *Config) IsKnownLogin(uid string) bool {
	for _, id := range c.Login.UserIDs {
		if id == uid {
			return true
		}
	}
	return false
}
