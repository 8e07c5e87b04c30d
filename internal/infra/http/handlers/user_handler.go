package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
)

type UserHandler struct {
	Repo entity.UserRepositoryInterface
}

func NewUserHandler(repo entity.UserRepositoryInterface) *UserHandler {
	return &UserHandler{Repo: repo}
}

// List (GET /users?organizationId) — candidatos a responsável na
// transferência. O escopo é sempre a organização do caller; pedir outra
// organização é recusado.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	orgID := r.URL.Query().Get("organizationId")
	if orgID != "" && orgID != caller.OrganizationID {
		writeErrorResponse(w, http.StatusForbidden, "FORBIDDEN", "organização fora do escopo do caller")
		return
	}

	users, err := h.Repo.ListByOrganization(r.Context(), caller.OrganizationID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar usuários")
		return
	}

	writeJSON(w, http.StatusOK, users)
}
