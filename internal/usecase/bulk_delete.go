package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type BulkDeleteLeadsUseCase struct {
	Repo   LeadRepositoryInterface
	Events EventPublisherInterface
}

func NewBulkDeleteLeadsUseCase(repo LeadRepositoryInterface, events EventPublisherInterface) *BulkDeleteLeadsUseCase {
	return &BulkDeleteLeadsUseCase{Repo: repo, Events: events}
}

// Execute deleta um conjunto de ids. O banco não garante atomicidade entre
// linhas, então cada id vira uma operação independente e o relatório diz
// exatamente quais falharam.
func (uc *BulkDeleteLeadsUseCase) Execute(ctx context.Context, caller entity.Caller, ids []string) (*BulkDeleteReport, error) {
	if len(ids) == 0 {
		return nil, &DomainError{Code: CodeValidation, Message: "ids must not be empty"}
	}

	run := NewBulkRun()
	for _, id := range ids {
		leadID := id
		run.Add(leadID, func(ctx context.Context) error {
			return uc.Repo.Delete(ctx, caller.OrganizationID, leadID)
		})
	}

	deleted, failed := run.Execute(ctx)

	if len(deleted) > 0 && uc.Events != nil {
		if err := uc.Events.PublishLeadEvent(ctx, queue.LeadEvent{
			Type:           queue.EventLeadDeleted,
			OrganizationID: caller.OrganizationID,
			ActorUserID:    caller.UserID,
			Count:          len(deleted),
		}); err != nil {
			log.Printf("⚠️ Evento lead.deleted (bulk) não publicado: %v", err)
		}
	}

	return &BulkDeleteReport{Deleted: deleted, Failed: failed}, nil
}
