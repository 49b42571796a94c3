package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/joestump/worklog/internal/logger"
)

// BearerTokenMiddleware rejects every request that does not carry
// "Authorization: Bearer <token>" for the configured account.
type BearerTokenMiddleware struct {
	expected []byte
}

// NewBearerTokenMiddleware derives the expected token from password once.
func NewBearerTokenMiddleware(password string) *BearerTokenMiddleware {
	return &BearerTokenMiddleware{expected: []byte("Bearer " + NewPasswordToken(password))}
}

// Authenticate compares the Authorization header verbatim against the
// expected value. WHEN it differs or is missing: 401 and next is not called.
func (m *BearerTokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if subtle.ConstantTimeCompare([]byte(header), m.expected) != 1 {
			logger.FromRequest(r).Warn().
				Bool("header_present", header != "").
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Msg("rejected request: bad bearer token")
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeUnauthorized writes a 401 JSON response.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"msg": "unauthorized", "code": "UNAUTHORIZED"})
}
