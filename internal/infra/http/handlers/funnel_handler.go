package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type FunnelHandler struct {
	PromoteUC *usecase.PromoteToFunnelUseCase
}

func NewFunnelHandler(promoteUC *usecase.PromoteToFunnelUseCase) *FunnelHandler {
	return &FunnelHandler{PromoteUC: promoteUC}
}

// Promote (POST /funnel, corpo {leadId})
// 201 quando a membership foi criada; 409 quando o lead já estava no funil —
// conflito é aviso, não erro fatal, e o corpo traz created=false.
func (h *FunnelHandler) Promote(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	var input struct {
		LeadID string `json:"leadId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.PromoteUC.Execute(r.Context(), caller, input.LeadID)
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok && domainErr.Code == usecase.CodeAlreadyInFunnel {
			middleware.RecordFunnelPromotion("conflict")
			writeJSON(w, http.StatusConflict, usecase.PromoteOutput{
				Created: false,
				Message: domainErr.Message,
			})
			return
		}
		middleware.RecordFunnelPromotion("error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordFunnelPromotion("created")
	writeJSON(w, http.StatusCreated, output)
}
