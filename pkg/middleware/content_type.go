package middleware

import (
	"mime"
	"net/http"

	"github.com/vfg2006/marketing-insights-api/pkg/apiErrors"
)

// RequireJSON recusa corpos que não sejam application/json
func RequireJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Content-Type deve ser application/json", map[string]string{
					"content_type": r.Header.Get("Content-Type"),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
