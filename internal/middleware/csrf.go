package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"fitness-club/pkg/logger"

	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// LoadCSRFKey decodes a hex encoded 32 byte key. Outside production an empty key yields a random one.
func LoadCSRFKey(keyHex string, production bool) ([]byte, error) {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return nil, errors.New("CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key, nil
	}
	if production {
		return nil, errors.New("CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate CSRF key: %w", err)
	}
	logger.WithComponent("http").Warn("using random CSRF key, forms will not survive a restart")
	return key, nil
}

// CSRF protects form submissions. Requests over plain HTTP are marked as such outside production.
func CSRF(authKey []byte, production bool) func(http.Handler) http.Handler {
	csrfProtect := csrf.Protect(
		authKey,
		csrf.Secure(production),
		csrf.Path("/"),
		csrf.FieldName("csrf_token"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.WithComponent("http").Warn("csrf rejected", logFailure(r)...)
			http.Error(w, "Forbidden - invalid or missing CSRF token", http.StatusForbidden)
		})),
	)

	return func(next http.Handler) http.Handler {
		protected := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !production && r.TLS == nil {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

func logFailure(r *http.Request) []zap.Field {
	return []zap.Field{
		zap.String("path", r.URL.Path),
		zap.String("reason", fmt.Sprint(csrf.FailureReason(r))),
	}
}
