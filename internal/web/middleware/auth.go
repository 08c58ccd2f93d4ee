package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/JonMunkholm/pharmacatalog/internal/config"
	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

// PasswordHeader carries the operator secret on admin requests.
const PasswordHeader = "X-Admin-Password"

var (
	// ErrMissingPassword is returned when no operator secret was sent.
	ErrMissingPassword = errors.New("missing operator password")

	// ErrInvalidPassword is returned when the secret does not match, or
	// when the server has no secret configured at all.
	ErrInvalidPassword = errors.New("invalid operator password")
)

// OperatorAuth checks the shared operator secret. A bcrypt hash wins over
// a plain password when both are configured.
type OperatorAuth struct {
	password []byte
	hash     []byte
}

// NewOperatorAuth builds the checker from the security settings.
func NewOperatorAuth(cfg *config.SecurityConfig) *OperatorAuth {
	return &OperatorAuth{
		password: []byte(cfg.AdminPassword),
		hash:     []byte(cfg.AdminPasswordHash),
	}
}

// Check validates a submitted secret.
func (a *OperatorAuth) Check(secret string) error {
	if secret == "" {
		return ErrMissingPassword
	}
	if len(a.hash) > 0 {
		if err := bcrypt.CompareHashAndPassword(a.hash, []byte(secret)); err != nil {
			return ErrInvalidPassword
		}
		return nil
	}
	if len(a.password) == 0 {
		return ErrInvalidPassword
	}
	if subtle.ConstantTimeCompare([]byte(secret), a.password) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// Middleware rejects requests whose X-Admin-Password header fails Check.
// Missing secrets get 401, wrong secrets 403.
func (a *OperatorAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := a.Check(r.Header.Get(PasswordHeader))
		if err == nil {
			next.ServeHTTP(w, r)
			return
		}

		status := http.StatusForbidden
		if errors.Is(err, ErrMissingPassword) {
			status = http.StatusUnauthorized
		}
		slog.Warn("auth: operator check failed",
			"path", r.URL.Path,
			"method", r.Method,
			"remote_addr", r.RemoteAddr,
			"error", err,
		)
		writeAuthError(w, err, status)
	})
}

func writeAuthError(w http.ResponseWriter, err error, status int) {
	msg := core.MapError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   msg.Message,
		"message": msg.Message,
		"action":  msg.Action,
		"code":    msg.Code,
	})
}
