package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	OAuth    OAuthConfig
	Gateway  GatewayConfig
	Sports   SportsConfig
	Redis    RedisConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port         string
	MetricsPort  string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// OAuthConfig points at the game-account (UCP) OAuth provider used for player
// login. Ledger operations never talk to it; identity arrives pre-validated in
// the session token.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	UserURL      string
}

// GatewayConfig configures the Fleeca payment gateway. GatewayURL, TokenURL
// and AuthKey are all required before deposits can run; Load does not fail
// here so the startup path can report the problem itself.
type GatewayConfig struct {
	GatewayURL string
	TokenURL   string
	AuthKey    string
	Timeout    time.Duration
}

type SportsConfig struct {
	APIKey  string
	BaseURL string
}

type RedisConfig struct {
	Addr string
}

// AdminConfig seeds the adjudication account on first boot.
type AdminConfig struct {
	Username string
	Password string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			MetricsPort:  getEnv("METRICS_PORT", "9090"),
			Env:          getEnv("ENV", "development"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DATABASE_DSN", "host=localhost user=lsbets password=lsbets dbname=lsbets port=5432 sslmode=disable"),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
			Expiry: getDuration("JWT_EXPIRY", 24*time.Hour),
			Issuer: getEnv("JWT_ISSUER", "lsbets"),
		},
		OAuth: OAuthConfig{
			ClientID:     getEnv("UCP_CLIENT_ID", ""),
			ClientSecret: getEnv("UCP_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("UCP_REDIRECT_URL", "https://ls-betting.vercel.app/callback"),
			AuthURL:      getEnv("UCP_AUTH_URL", "https://ucp.gta.world/oauth/authorize"),
			TokenURL:     getEnv("UCP_TOKEN_URL", "https://ucp.gta.world/oauth/token"),
			UserURL:      getEnv("UCP_USER_URL", "https://ucp.gta.world/api/user"),
		},
		Gateway: GatewayConfig{
			GatewayURL: getEnv("FLEECA_GATEWAY_URL", ""),
			TokenURL:   getEnv("FLEECA_TOKEN_URL", ""),
			AuthKey:    getEnv("FLEECA_AUTH_KEY", ""),
			Timeout:    getDuration("FLEECA_TIMEOUT", 15*time.Second),
		},
		Sports: SportsConfig{
			APIKey:  getEnv("SPORTS_API_KEY", ""),
			BaseURL: getEnv("SPORTS_API_BASE_URL", "https://v3.football.api-sports.io"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
