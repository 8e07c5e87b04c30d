package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type TransferLeadUseCase struct {
	Leads  LeadRepositoryInterface
	Users  UserRepositoryInterface
	Events EventPublisherInterface
}

func NewTransferLeadUseCase(
	leads LeadRepositoryInterface,
	users UserRepositoryInterface,
	events EventPublisherInterface,
) *TransferLeadUseCase {
	return &TransferLeadUseCase{
		Leads:  leads,
		Users:  users,
		Events: events,
	}
}

// Execute reatribui o responsável do lead. O gate de papel no front é só
// conveniência; a autoridade é esta checagem.
func (uc *TransferLeadUseCase) Execute(ctx context.Context, caller entity.Caller, leadID, targetUserID string) (*entity.Lead, error) {
	if !caller.CanTransfer() {
		return nil, &DomainError{
			Code:    CodeForbidden,
			Message: "papel '" + caller.Role + "' não pode transferir leads",
		}
	}

	if strings.TrimSpace(targetUserID) == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "targetUserId is required"}
	}

	lead, err := uc.Leads.FindByID(ctx, caller.OrganizationID, leadID)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeLeadNotFound,
			Message: "lead não encontrado: " + leadID,
		}
	}

	// O alvo precisa existir na mesma organização do caller.
	candidates, err := uc.Users.ListByOrganization(ctx, caller.OrganizationID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "falha ao buscar usuários da organização: " + err.Error(),
		}
	}

	var target *entity.User
	for _, u := range candidates {
		if u.ID == targetUserID {
			target = u
			break
		}
	}
	if target == nil {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "usuário alvo não pertence à organização",
		}
	}

	// Só ownerUserId muda; nenhum outro campo do lead é tocado.
	lead.OwnerUserID = &target.ID
	lead.UpdatedAt = time.Now()

	if err := uc.Leads.Update(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "falha ao transferir lead: " + err.Error(),
		}
	}

	if uc.Events != nil {
		if err := uc.Events.PublishLeadEvent(ctx, queue.LeadEvent{
			Type:           queue.EventLeadTransferred,
			LeadID:         lead.ID,
			LeadName:       lead.Name,
			OrganizationID: caller.OrganizationID,
			ActorUserID:    caller.UserID,
			TargetUserID:   target.ID,
			TargetName:     target.Name,
			TargetEmail:    target.Email,
		}); err != nil {
			log.Printf("⚠️ Evento lead.transferred não publicado: %v", err)
		}
	}

	return lead, nil
}
