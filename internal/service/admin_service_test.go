package service

import (
	"ai_eng_tam_backend/internal/config"
	"ai_eng_tam_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminConfig(admin config.AdminConfig) *config.Config {
	return &config.Config{Admin: admin}
}

func TestVerifyPasswordPlaintext(t *testing.T) {
	svc := NewAdminService(adminConfig(config.AdminConfig{Password: "admin2025"}))

	assert.True(t, svc.VerifyPassword("admin2025"))
	assert.False(t, svc.VerifyPassword("wrong"))
	assert.False(t, svc.VerifyPassword(""))
}

func TestVerifyPasswordBcryptTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAdminService(adminConfig(config.AdminConfig{
		Password:     "admin2025",
		PasswordHash: string(hash),
	}))

	assert.True(t, svc.VerifyPassword("s3cret"))
	// 配置了哈希后明文口令不再生效
	assert.False(t, svc.VerifyPassword("admin2025"))
}

func TestConfiguredDiagnostics(t *testing.T) {
	svc := NewAdminService(adminConfig(config.AdminConfig{}))

	err := svc.Configured()
	var cfgErr *util.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, false, cfgErr.Diagnostics["password_set"])
	assert.Equal(t, false, cfgErr.Diagnostics["password_hash_set"])
	// 诊断信息只含布尔值，绝不回显口令本身
	for k, v := range cfgErr.Diagnostics {
		_, isBool := v.(bool)
		assert.True(t, isBool, "diagnostic %q should be a boolean", k)
	}

	assert.NoError(t, NewAdminService(adminConfig(config.AdminConfig{Password: "x"})).Configured())
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAdminService(adminConfig(config.AdminConfig{
		Password:   "admin2025",
		JWTSecret:  "test-secret",
		TokenHours: 1,
	}))

	token, expiresAt, err := svc.IssueToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	_, err = svc.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenAuthDisabledWithoutSecret(t *testing.T) {
	svc := NewAdminService(adminConfig(config.AdminConfig{Password: "admin2025"}))

	token, _, err := svc.IssueToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	_, err = svc.ParseToken("anything")
	assert.ErrorIs(t, err, ErrTokenAuthDisabled)
}

func TestUpdateConfigSwapsCredentials(t *testing.T) {
	svc := NewAdminService(adminConfig(config.AdminConfig{Password: "old"}))
	svc.UpdateConfig(adminConfig(config.AdminConfig{Password: "new"}))

	assert.False(t, svc.VerifyPassword("old"))
	assert.True(t, svc.VerifyPassword("new"))
}
