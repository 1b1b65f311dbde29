package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://localhost/gallopin")
	v.Set("JWT_SECRET", "test-secret")
	v.Set("ADMIN_USERNAME", "admin")
	v.Set("ADMIN_PASSWORD", "Password@123")
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := fromViper(baseViper())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "Europe/Paris", cfg.Timezone.String())
	assert.Equal(t, 5, cfg.LoginRatePerMinute)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.False(t, cfg.R2.Enabled())
	assert.Len(t, cfg.CORSOrigins, 2)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte("Password@123")))
}

func TestLoad_MissingSecrets(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://localhost/gallopin")

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "ADMIN_USERNAME")
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD_HASH or ADMIN_PASSWORD")
}

func TestLoad_RejectsBadHash(t *testing.T) {
	v := baseViper()
	v.Set("ADMIN_PASSWORD", "")
	v.Set("ADMIN_PASSWORD_HASH", "not-a-hash")

	_, err := fromViper(v)
	require.Error(t, err)
}

func TestLoad_UnknownProvider(t *testing.T) {
	v := baseViper()
	v.Set("AI_PROVIDER", "mistral")

	_, err := fromViper(v)
	require.Error(t, err)
}

func TestLoad_RateBudgets(t *testing.T) {
	v := baseViper()
	v.Set("LOGIN_RATE_PER_MINUTE", 0)
	v.Set("REVIEW_RATE_PER_MINUTE", 12)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LoginRatePerMinute)
	assert.Equal(t, 12, cfg.ReviewRatePerMinute)

	v.Set("LOGIN_RATE_PER_MINUTE", -1)
	_, err = fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOGIN_RATE_PER_MINUTE")
}

func TestOperatorConfig(t *testing.T) {
	_, err := operatorFromViper(viper.New())
	require.Error(t, err)

	v := viper.New()
	v.Set("DATABASE_URL", "postgres://localhost/gallopin")
	v.Set("R2_ENDPOINT", "https://acct.r2.cloudflarestorage.com")

	cfg, err := operatorFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.R2.Enabled())
}
