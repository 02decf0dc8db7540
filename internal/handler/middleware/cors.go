package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"hall-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
		AllowHeaders: withHeaders(cfg.AllowHeaders, RequestIDHeader),
		// the booking UI follows Location after a create
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, "Location", RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "ExposeHeaders", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

// withHeaders returns base plus extra in canonical form, each header name once
// regardless of how it was cased in configuration.
func withHeaders(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	for _, h := range slices.Concat(base, extra) {
		h = http.CanonicalHeaderKey(h)
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
