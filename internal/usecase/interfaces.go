package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

// LeadInput cobre criação e linhas de importação.
type LeadInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// LeadPatch é o corpo parcial do update. Ponteiro nil = campo não enviado.
type LeadPatch struct {
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	OwnerUserID *string `json:"ownerUserId"`
}

type ImportSummary struct {
	Imported int    `json:"imported"`
	Rejected int    `json:"rejected"`
	Message  string `json:"message"`
}

type PromoteOutput struct {
	Created bool   `json:"created"`
	Message string `json:"message,omitempty"`
}

type BulkFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkDeleteReport expõe falha parcial explicitamente: o caller pode
// retentar só o subconjunto que falhou.
type BulkDeleteReport struct {
	Deleted []string      `json:"deleted"`
	Failed  []BulkFailure `json:"failed"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, orgID, id string) (*entity.Lead, error)
	List(ctx context.Context, orgID string, filter entity.FilterCriteria, page entity.PageRequest) ([]*entity.Lead, int, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, orgID, id string) error
}

type UserRepositoryInterface interface {
	ListByOrganization(ctx context.Context, orgID string) ([]*entity.User, error)
}

type FunnelRepositoryInterface interface {
	Create(ctx context.Context, m *entity.FunnelMembership) error
	ExistsForLead(ctx context.Context, leadID string) (bool, error)
}

type EventPublisherInterface interface {
	PublishLeadEvent(ctx context.Context, event queue.LeadEvent) error
}
