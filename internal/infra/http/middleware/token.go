package middleware

import (
	"encoding/json"
	"net/http"
)

// APIToken barra chamadas sem o token de serviço (header X-Api-Token).
// Token esperado vazio desliga a checagem — ambiente local sem gateway.
func APIToken(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected != "" && r.Header.Get("X-Api-Token") != expected {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error":   "INVALID_TOKEN",
					"message": "token de API inválido ou ausente",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
