package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute aplica filtro + paginação dentro do escopo da organização do caller.
// Conjunto vazio é resposta válida: total=0, pages=1, data=[].
func (uc *ListLeadsUseCase) Execute(ctx context.Context, caller entity.Caller, filter entity.FilterCriteria, page entity.PageRequest) (*entity.PageResult, error) {
	page = page.Normalize()

	leads, total, err := uc.Repo.List(ctx, caller.OrganizationID, filter, page)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "falha ao listar leads: " + err.Error(),
		}
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}

	return &entity.PageResult{
		Data: leads,
		Pagination: entity.Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: entity.PageCount(total, page.Limit),
		},
	}, nil
}
