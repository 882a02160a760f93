package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var AppConfig *Config

type (
	// Config -.
	Config struct {
		App     `yaml:"app"`
		HTTP    `yaml:"http"`
		Log     `yaml:"logger"`
		DB      `yaml:"db"`
		Auth    `yaml:"auth"`
		License `yaml:"license"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level"   env:"LOG_LEVEL"`
	}

	// DB holds the database pool settings. URL picks the backend: a
	// postgres:// URL selects PostgreSQL, anything else is treated as a
	// SQLite file path. Empty means an on-disk SQLite db next to the binary.
	DB struct {
		PoolMax int    `env-required:"true" yaml:"pool_max" env:"DB_POOL_MAX"`
		URL     string `env:"DB_URL"`
	}

	// Auth -.
	Auth struct {
		Disabled      bool          `yaml:"disabled" env:"AUTH_DISABLED"`
		AdminUsername string        `yaml:"adminUsername" env:"AUTH_ADMIN_USERNAME"`
		AdminPassword string        `yaml:"adminPassword" env:"AUTH_ADMIN_PASSWORD"`
		JWTKey        string        `env-required:"true" yaml:"jwtKey" env:"AUTH_JWT_KEY"`
		JWTExpiration time.Duration `yaml:"jwtExpiration" env:"AUTH_JWT_EXPIRATION"`
	}

	// License tunes the session lifecycle. KeepAliveTimeout is how long a
	// session may go without a keep-alive before the sweeper reclaims it,
	// SweepInterval is how often the sweeper runs, and KeyInfoCacheTTL
	// bounds staleness of cached key-info lookups (zero disables caching).
	License struct {
		KeepAliveTimeout time.Duration `yaml:"keep_alive_timeout" env:"LICENSE_KEEP_ALIVE_TIMEOUT"`
		SweepInterval    time.Duration `yaml:"sweep_interval" env:"LICENSE_SWEEP_INTERVAL"`
		KeyInfoCacheTTL  time.Duration `yaml:"key_info_cache_ttl" env:"LICENSE_KEY_INFO_CACHE_TTL"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "keyserve",
			Repo:    "license-management-toolkit/keyserve",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8181",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		DB: DB{
			PoolMax: 2,
			URL:     "",
		},
		Auth: Auth{
			AdminUsername: "standalone",
			AdminPassword: "G@ppm0ym",
			JWTKey:        "your_secret_jwt_key",
			JWTExpiration: 24 * time.Hour,
		},
		License: License{
			KeepAliveTimeout: 60 * time.Second,
			SweepInterval:    15 * time.Second,
			KeyInfoCacheTTL:  5 * time.Second,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		// Write config file out to disk
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	// set defaults
	AppConfig = defaultConfig()

	// Define a command line flag for the config path
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	// Determine the config path
	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, AppConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(AppConfig); err != nil {
		return nil, err
	}

	return AppConfig, nil
}
