package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo   LeadRepositoryInterface
	Events EventPublisherInterface
}

func NewCreateLeadUseCase(repo LeadRepositoryInterface, events EventPublisherInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo, Events: events}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, caller entity.Caller, input LeadInput) (*entity.Lead, error) {
	validationErrors := ValidateLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: errMsg,
		}
	}

	lead, err := entity.NewLead(input.Name, input.Surname, input.Email, input.Phone, caller.OrganizationID)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "falha ao salvar lead: " + err.Error(),
		}
	}

	if uc.Events != nil {
		if err := uc.Events.PublishLeadEvent(ctx, queue.LeadEvent{
			Type:           queue.EventLeadCreated,
			LeadID:         lead.ID,
			LeadName:       lead.Name,
			OrganizationID: caller.OrganizationID,
			ActorUserID:    caller.UserID,
		}); err != nil {
			// Lead já está no banco; evento perdido não derruba a operação.
			log.Printf("⚠️ Evento lead.created não publicado: %v", err)
		}
	}

	return lead, nil
}
