package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError converte a taxonomia de erros do usecase em status HTTP.
// Erro técnico nunca vaza detalhe de banco para o cliente.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case usecase.CodeLeadNotFound:
			status = http.StatusNotFound
		case usecase.CodeForbidden:
			status = http.StatusForbidden
		case usecase.CodeAlreadyInFunnel:
			status = http.StatusConflict
		}
		writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeDatabase, "Ocorreu um erro inesperado. Tente novamente.")
}
