package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every externally supplied setting of the service.
// Secrets have no defaults: a missing value stops the process at startup.
type Config struct {
	Env       string
	Port      string
	LogLevel  string
	LogFormat string

	DatabaseURL string
	Timezone    *time.Location

	JWTSecret         string
	TokenTTL          time.Duration
	AdminUsername     string
	AdminPasswordHash string

	CORSOrigins []string

	LoginRatePerMinute  int
	ReviewRatePerMinute int

	AI     AIConfig
	Places PlacesConfig
	R2     R2Config
}

type AIConfig struct {
	Provider       string
	OpenAIKey      string
	OpenAIModel    string
	OpenAIBaseURL  string
	AnthropicKey   string
	AnthropicModel string
}

type PlacesConfig struct {
	SerpAPIKey string
	PlaceID    string
}

type R2Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// Enabled reports whether every R2 setting is present.
func (r R2Config) Enabled() bool {
	return r.Endpoint != "" && r.AccessKey != "" && r.SecretKey != "" && r.Bucket != ""
}

var required = []string{
	"DATABASE_URL",
	"JWT_SECRET",
	"ADMIN_USERNAME",
}

// Load reads .env (outside production) and the process environment.
func Load() (*Config, error) {
	return fromViper(newViper())
}

// OperatorConfig is the subset gallopinctl needs. It does not require the
// admin credentials or the token secret.
type OperatorConfig struct {
	DatabaseURL string
	LogLevel    string
	LogFormat   string
	R2          R2Config
}

func LoadOperator() (*OperatorConfig, error) {
	return operatorFromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	if v.GetString("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	return v
}

func operatorFromViper(v *viper.Viper) (*OperatorConfig, error) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	dsn := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if dsn == "" {
		return nil, errors.New("missing env vars: DATABASE_URL")
	}

	return &OperatorConfig{
		DatabaseURL: dsn,
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		R2:          r2FromViper(v),
	}, nil
}

func r2FromViper(v *viper.Viper) R2Config {
	return R2Config{
		Endpoint:  v.GetString("R2_ENDPOINT"),
		AccessKey: v.GetString("R2_ACCESS_KEY"),
		SecretKey: v.GetString("R2_SECRET_KEY"),
		Bucket:    v.GetString("R2_BUCKET_NAME"),
	}
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("TOKEN_TTL", "12h")
	v.SetDefault("TIMEZONE", "Europe/Paris")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 5)
	v.SetDefault("REVIEW_RATE_PER_MINUTE", 30)
	v.SetDefault("AI_PROVIDER", "openai")
	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514")

	var missing []string
	for _, k := range required {
		if strings.TrimSpace(v.GetString(k)) == "" {
			missing = append(missing, k)
		}
	}
	if v.GetString("ADMIN_PASSWORD_HASH") == "" && v.GetString("ADMIN_PASSWORD") == "" {
		missing = append(missing, "ADMIN_PASSWORD_HASH or ADMIN_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing env vars: %s", strings.Join(missing, ", "))
	}

	hash, err := adminPasswordHash(v.GetString("ADMIN_PASSWORD_HASH"), v.GetString("ADMIN_PASSWORD"))
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", v.GetString("TOKEN_TTL"))
	}

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	loginRate, err := rateBudget(v, "LOGIN_RATE_PER_MINUTE")
	if err != nil {
		return nil, err
	}
	reviewRate, err := rateBudget(v, "REVIEW_RATE_PER_MINUTE")
	if err != nil {
		return nil, err
	}

	provider := strings.ToLower(v.GetString("AI_PROVIDER"))
	if provider != "openai" && provider != "anthropic" {
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", provider)
	}

	return &Config{
		Env:               v.GetString("APP_ENV"),
		Port:              v.GetString("PORT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		Timezone:          loc,
		JWTSecret:         v.GetString("JWT_SECRET"),
		TokenTTL:          ttl,
		AdminUsername:     strings.TrimSpace(v.GetString("ADMIN_USERNAME")),
		AdminPasswordHash: hash,
		CORSOrigins:       splitList(v.GetString("CORS_ORIGINS")),

		LoginRatePerMinute:  loginRate,
		ReviewRatePerMinute: reviewRate,

		AI: AIConfig{
			Provider:       provider,
			OpenAIKey:      v.GetString("OPENAI_API_KEY"),
			OpenAIModel:    v.GetString("OPENAI_MODEL"),
			OpenAIBaseURL:  strings.TrimRight(v.GetString("OPENAI_BASE_URL"), "/"),
			AnthropicKey:   v.GetString("ANTHROPIC_API_KEY"),
			AnthropicModel: v.GetString("ANTHROPIC_MODEL"),
		},
		Places: PlacesConfig{
			SerpAPIKey: v.GetString("SERPAPI_API_KEY"),
			PlaceID:    v.GetString("PLACE_ID"),
		},
		R2: r2FromViper(v),
	}, nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func adminPasswordHash(hash, plain string) (string, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return "", errors.New("ADMIN_PASSWORD_HASH is not a bcrypt hash")
		}
		return hash, nil
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// rateBudget reads a per-minute budget. 0 turns the limiter off.
func rateBudget(v *viper.Viper, key string) (int, error) {
	n := v.GetInt(key)
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %d: must be 0 or more", key, n)
	}
	return n, nil
}
