package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type UpdateLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewUpdateLeadUseCase(repo LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

// Execute aplica um patch parcial de campos textuais. Troca de owner NÃO
// passa por aqui: o handler roteia {ownerUserId} para o TransferLeadUseCase,
// que tem a checagem de papel.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, caller entity.Caller, leadID string, patch LeadPatch) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, caller.OrganizationID, leadID)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeLeadNotFound,
			Message: "lead não encontrado: " + leadID,
		}
	}

	if patch.Name != nil {
		lead.Name = *patch.Name
	}
	if patch.Surname != nil {
		lead.Surname = *patch.Surname
	}
	if patch.Email != nil {
		lead.Email = *patch.Email
	}
	if patch.Phone != nil {
		lead.Phone = *patch.Phone
	}

	validationErrors := ValidateLeadInput(LeadInput{
		Name:    lead.Name,
		Surname: lead.Surname,
		Email:   lead.Email,
		Phone:   lead.Phone,
	})
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{Code: CodeValidation, Message: errMsg}
	}

	lead.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "falha ao atualizar lead: " + err.Error(),
		}
	}

	return lead, nil
}
