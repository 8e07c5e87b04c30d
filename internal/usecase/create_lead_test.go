package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateLeadSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockEvents := new(MockEventPublisher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("PublishLeadEvent", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, mockEvents)
	lead, err := uc.Execute(context.Background(), testCaller(), LeadInput{
		Name:    "Maria",
		Surname: "Silva",
		Email:   "maria@example.com",
		Phone:   "(11) 99999-9999",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "org-1", lead.OrganizationID)
	assert.Nil(t, lead.OwnerUserID)
}

func TestCreateLeadValidationError(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := NewCreateLeadUseCase(mockRepo, nil)
	_, err := uc.Execute(context.Background(), testCaller(), LeadInput{
		Name:  "",
		Email: "email-invalido",
	})

	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeValidation, err.(*DomainError).Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
