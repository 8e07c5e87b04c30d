package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type LeadHandler struct {
	Repo         entity.LeadRepositoryInterface
	ListUC       *usecase.ListLeadsUseCase
	CreateUC     *usecase.CreateLeadUseCase
	UpdateUC     *usecase.UpdateLeadUseCase
	DeleteUC     *usecase.DeleteLeadUseCase
	BulkDeleteUC *usecase.BulkDeleteLeadsUseCase
	TransferUC   *usecase.TransferLeadUseCase
	ImportUC     *usecase.ImportLeadsUseCase
}

func NewLeadHandler(
	repo entity.LeadRepositoryInterface,
	listUC *usecase.ListLeadsUseCase,
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	bulkDeleteUC *usecase.BulkDeleteLeadsUseCase,
	transferUC *usecase.TransferLeadUseCase,
	importUC *usecase.ImportLeadsUseCase,
) *LeadHandler {
	return &LeadHandler{
		Repo:         repo,
		ListUC:       listUC,
		CreateUC:     createUC,
		UpdateUC:     updateUC,
		DeleteUC:     deleteUC,
		BulkDeleteUC: bulkDeleteUC,
		TransferUC:   transferUC,
		ImportUC:     importUC,
	}
}

// List (GET /leads?page&limit&search&startDate&endDate)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	page := entity.PageRequest{
		Page:  intQuery(r, "page", 1),
		Limit: intQuery(r, "limit", 10),
	}

	filter := entity.FilterCriteria{
		Search: r.URL.Query().Get("search"),
	}
	if d, ok := dateQuery(r, "startDate"); ok {
		filter.StartDate = &d
	}
	if d, ok := dateQuery(r, "endDate"); ok {
		filter.EndDate = &d
	}

	result, err := h.ListUC.Execute(r.Context(), caller, filter, page)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get (GET /leads/{id})
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "id is required")
		return
	}

	lead, err := h.Repo.FindByID(r.Context(), caller.OrganizationID, id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, usecase.CodeLeadNotFound, "lead não encontrado")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// Create (POST /leads)
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), caller, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

// Update (PUT /leads/{id}) — corpo parcial. Se vier {ownerUserId}, a
// requisição é uma transferência e passa pelo gate de papel.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "id is required")
		return
	}

	var patch usecase.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if patch.OwnerUserID != nil {
		lead, err := h.TransferUC.Execute(r.Context(), caller, id, *patch.OwnerUserID)
		if err != nil {
			writeUseCaseError(w, err)
			return
		}
		middleware.RecordTransfer()
		writeJSON(w, http.StatusOK, lead)
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), caller, id, patch)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// Delete (DELETE /leads/{id})
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "id is required")
		return
	}

	if err := h.DeleteUC.Execute(r.Context(), caller, id); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordDeletedLeads(1)
	w.WriteHeader(http.StatusNoContent)
}

// BulkDelete (DELETE /leads, corpo {ids: [...]})
// Resposta 200 quando tudo foi removido, 207 quando houve falha parcial.
func (h *LeadHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	var input struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	report, err := h.BulkDeleteUC.Execute(r.Context(), caller, input.IDs)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordDeletedLeads(len(report.Deleted))

	status := http.StatusOK
	if len(report.Failed) > 0 {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, report)
}

// Import (POST /leads/import, multipart com campo "file")
func (h *LeadHandler) Import(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, usecase.MaxImportSize)
	if err := r.ParseMultipartForm(usecase.MaxImportSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeErrorResponse(w, http.StatusBadRequest, usecase.CodeInvalidFile, "arquivo excede o limite de 10MB")
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeInvalidFile, "corpo multipart inválido")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeInvalidFile, "campo 'file' é obrigatório")
		return
	}
	defer file.Close()

	summary, err := h.ImportUC.Execute(r.Context(), caller, header.Filename, header.Size, file)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordImportedLeads(summary.Imported)
	writeJSON(w, http.StatusOK, summary)
}

func intQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func dateQuery(r *http.Request, key string) (time.Time, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
