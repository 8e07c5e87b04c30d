package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type DeleteLeadUseCase struct {
	Repo   LeadRepositoryInterface
	Events EventPublisherInterface
}

func NewDeleteLeadUseCase(repo LeadRepositoryInterface, events EventPublisherInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo, Events: events}
}

// Execute remove um único lead (hard delete).
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, caller entity.Caller, leadID string) error {
	if leadID == "" {
		return &DomainError{Code: CodeValidation, Message: "id is required"}
	}

	if err := uc.Repo.Delete(ctx, caller.OrganizationID, leadID); err != nil {
		if err == entity.ErrLeadNotFound {
			return &DomainError{Code: CodeLeadNotFound, Message: "lead não encontrado: " + leadID}
		}
		return &TechnicalError{
			Code:    CodeDatabase,
			Message: "falha ao remover lead: " + err.Error(),
		}
	}

	if uc.Events != nil {
		if err := uc.Events.PublishLeadEvent(ctx, queue.LeadEvent{
			Type:           queue.EventLeadDeleted,
			LeadID:         leadID,
			OrganizationID: caller.OrganizationID,
			ActorUserID:    caller.UserID,
			Count:          1,
		}); err != nil {
			log.Printf("⚠️ Evento lead.deleted não publicado: %v", err)
		}
	}

	return nil
}
