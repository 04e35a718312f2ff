package service

import (
	"ai_eng_tam_backend/internal/config"
	"ai_eng_tam_backend/internal/util"
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminService authenticates dashboard access. The contractual credential is
// the shared admin password; a JWT is issued on login so clients do not have
// to resend the password on every call.
type AdminService struct {
	mu  sync.RWMutex
	cfg config.AdminConfig
}

func NewAdminService(cfg *config.Config) *AdminService {
	return &AdminService{cfg: cfg.Admin}
}

// UpdateConfig 配置热更新回调。
func (s *AdminService) UpdateConfig(cfg *config.Config) {
	s.mu.Lock()
	s.cfg = cfg.Admin
	s.mu.Unlock()
}

func (s *AdminService) snapshot() config.AdminConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Configured reports whether any admin credential is set. When it returns
// false, endpoints surface a ConfigurationError with safe diagnostics rather
// than a bare 401, so a misdeployed backend is distinguishable from a wrong
// password.
func (s *AdminService) Configured() error {
	cfg := s.snapshot()
	if cfg.Password != "" || cfg.PasswordHash != "" {
		return nil
	}
	return &util.ConfigurationError{
		Message: "admin credentials are not configured",
		Diagnostics: map[string]interface{}{
			"password_set":      false,
			"password_hash_set": false,
			"jwt_secret_set":    cfg.JWTSecret != "",
		},
	}
}

// VerifyPassword 口令比对：设置了 bcrypt 哈希则走哈希，否则常数时间比较明文。
func (s *AdminService) VerifyPassword(password string) bool {
	cfg := s.snapshot()
	if cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(password)) == nil
	}
	if cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cfg.Password), []byte(password)) == 1
}

// IssueToken returns a signed admin JWT, or an empty token when no JWT
// secret is configured (header auth still works without one).
func (s *AdminService) IssueToken() (string, time.Time, error) {
	cfg := s.snapshot()
	if cfg.JWTSecret == "" {
		return "", time.Time{}, nil
	}
	ttl := time.Duration(cfg.TokenHours) * time.Hour
	token, err := util.GenerateAdminJWT(cfg.JWTSecret, ttl)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, time.Now().Add(ttl), nil
}

var ErrTokenAuthDisabled = errors.New("admin token auth is not configured")

func (s *AdminService) ParseToken(token string) (*util.AdminClaims, error) {
	cfg := s.snapshot()
	if cfg.JWTSecret == "" {
		return nil, ErrTokenAuthDisabled
	}
	return util.ParseAdminJWT(token, cfg.JWTSecret)
}
