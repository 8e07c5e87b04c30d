package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type contextKey string

const callerKey contextKey = "caller"

// Identity extrai a identidade injetada pelo gateway da plataforma
// (autenticação acontece lá fora; aqui os headers já chegam validados).
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := entity.Caller{
			UserID:         r.Header.Get("X-User-Id"),
			Role:           r.Header.Get("X-User-Role"),
			OrganizationID: r.Header.Get("X-Organization-Id"),
		}

		if caller.OrganizationID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error":   "MISSING_IDENTITY",
				"message": "X-Organization-Id header é obrigatório",
			})
			return
		}

		ctx := context.WithValue(r.Context(), callerKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CallerFrom(ctx context.Context) entity.Caller {
	caller, _ := ctx.Value(callerKey).(entity.Caller)
	return caller
}
