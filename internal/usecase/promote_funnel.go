package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type PromoteToFunnelUseCase struct {
	Leads  LeadRepositoryInterface
	Funnel FunnelRepositoryInterface
	Events EventPublisherInterface
}

func NewPromoteToFunnelUseCase(
	leads LeadRepositoryInterface,
	funnel FunnelRepositoryInterface,
	events EventPublisherInterface,
) *PromoteToFunnelUseCase {
	return &PromoteToFunnelUseCase{
		Leads:  leads,
		Funnel: funnel,
		Events: events,
	}
}

// Execute cria a membership do lead no funil. Lead já presente não é erro
// fatal: devolve DomainError ALREADY_IN_FUNNEL e o handler responde 409 com
// created=false. Nunca duplica membership — o unique index segura a corrida.
func (uc *PromoteToFunnelUseCase) Execute(ctx context.Context, caller entity.Caller, leadID string) (*PromoteOutput, error) {
	if leadID == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "leadId is required"}
	}

	lead, err := uc.Leads.FindByID(ctx, caller.OrganizationID, leadID)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeLeadNotFound,
			Message: "lead não encontrado: " + leadID,
		}
	}

	// Pré-checagem para conflito limpo; a corrida entre duas promoções
	// simultâneas ainda é segurada pelo unique index lá embaixo.
	exists, err := uc.Funnel.ExistsForLead(ctx, lead.ID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "falha ao consultar funil: " + err.Error(),
		}
	}
	if exists {
		return nil, &DomainError{
			Code:    CodeAlreadyInFunnel,
			Message: "lead já está no funil",
		}
	}

	membership := &entity.FunnelMembership{
		ID:             uuid.New().String(),
		LeadID:         lead.ID,
		OrganizationID: caller.OrganizationID,
		CreatedAt:      time.Now(),
	}

	if err := uc.Funnel.Create(ctx, membership); err != nil {
		if err == entity.ErrAlreadyInFunnel {
			return nil, &DomainError{
				Code:    CodeAlreadyInFunnel,
				Message: "lead já está no funil",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "falha ao promover lead: " + err.Error(),
		}
	}

	if uc.Events != nil {
		if err := uc.Events.PublishLeadEvent(ctx, queue.LeadEvent{
			Type:           queue.EventFunnelPromoted,
			LeadID:         lead.ID,
			LeadName:       lead.Name,
			OrganizationID: caller.OrganizationID,
			ActorUserID:    caller.UserID,
		}); err != nil {
			log.Printf("⚠️ Evento funnel.promoted não publicado: %v", err)
		}
	}

	return &PromoteOutput{Created: true, Message: "Lead promovido para o funil"}, nil
}
