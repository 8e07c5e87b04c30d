package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func TestPromoteHandlerCreated(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockFunnel := new(MockFunnelRepository)

	lead, _ := entity.NewLead("Maria", "", "", "", "org-1")

	mockLeads.On("FindByID", mock.Anything, "org-1", lead.ID).Return(lead, nil)
	mockFunnel.On("ExistsForLead", mock.Anything, lead.ID).Return(false, nil)
	mockFunnel.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewFunnelHandler(usecase.NewPromoteToFunnelUseCase(mockLeads, mockFunnel, nil))

	body, _ := json.Marshal(map[string]string{"leadId": lead.ID})
	req := withIdentity(httptest.NewRequest("POST", "/funnel", bytes.NewReader(body)), entity.RoleAgent)
	w := serve(handler.Promote, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var output usecase.PromoteOutput
	json.NewDecoder(w.Body).Decode(&output)
	assert.True(t, output.Created)
}

// Lead já no funil: 409 com created=false — aviso, não erro fatal.
func TestPromoteHandlerConflict(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockFunnel := new(MockFunnelRepository)

	lead, _ := entity.NewLead("Maria", "", "", "", "org-1")

	mockLeads.On("FindByID", mock.Anything, "org-1", lead.ID).Return(lead, nil)
	mockFunnel.On("ExistsForLead", mock.Anything, lead.ID).Return(true, nil)

	handler := NewFunnelHandler(usecase.NewPromoteToFunnelUseCase(mockLeads, mockFunnel, nil))

	body, _ := json.Marshal(map[string]string{"leadId": lead.ID})
	req := withIdentity(httptest.NewRequest("POST", "/funnel", bytes.NewReader(body)), entity.RoleAgent)
	w := serve(handler.Promote, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var output usecase.PromoteOutput
	json.NewDecoder(w.Body).Decode(&output)
	assert.False(t, output.Created)
	assert.NotEmpty(t, output.Message)
}

func TestPromoteHandlerMissingLeadID(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockFunnel := new(MockFunnelRepository)

	handler := NewFunnelHandler(usecase.NewPromoteToFunnelUseCase(mockLeads, mockFunnel, nil))

	body := []byte(`{}`)
	req := withIdentity(httptest.NewRequest("POST", "/funnel", bytes.NewReader(body)), entity.RoleAgent)
	w := serve(handler.Promote, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockFunnel.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserHandlerScopedToCallerOrganization(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("ListByOrganization", mock.Anything, "org-1").Return([]*entity.User{
		{ID: "user-2", Name: "Ana", OrganizationID: "org-1"},
	}, nil)

	handler := NewUserHandler(mockUsers)

	req := withIdentity(httptest.NewRequest("GET", "/users?organizationId=org-1", nil), entity.RoleManager)
	w := serve(handler.List, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var users []*entity.User
	json.NewDecoder(w.Body).Decode(&users)
	assert.Len(t, users, 1)
}

func TestUserHandlerRejectsForeignOrganization(t *testing.T) {
	mockUsers := new(MockUserRepository)
	handler := NewUserHandler(mockUsers)

	req := withIdentity(httptest.NewRequest("GET", "/users?organizationId=org-2", nil), entity.RoleManager)
	w := serve(handler.List, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUsers.AssertNotCalled(t, "ListByOrganization", mock.Anything, mock.Anything)
}
