package middleware

import (
	"net/http"
	"strings"

	"github.com/rolodexhq/rolodex-backend/api/responses"
	pkgAuth "github.com/rolodexhq/rolodex-backend/pkg/auth"
	"github.com/rolodexhq/rolodex-backend/pkg/config"
	pkgerrors "github.com/rolodexhq/rolodex-backend/pkg/errors"
	"github.com/rolodexhq/rolodex-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// verified claims. Every route that touches user or contact state sits
// behind this guard; only register and login bypass it.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithCaller(r.Context(), CallerIdentity{
				UserID:   claims.UserID.String(),
				Username: claims.Username,
				Email:    claims.Email,
			})

			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
				ctx = logg.WithUserEmail(ctx, claims.Email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
