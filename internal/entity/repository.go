package entity

import "context"

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, orgID, id string) (*Lead, error)
	List(ctx context.Context, orgID string, filter FilterCriteria, page PageRequest) ([]*Lead, int, error)
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, orgID, id string) error
}

type UserRepositoryInterface interface {
	ListByOrganization(ctx context.Context, orgID string) ([]*User, error)
}

type FunnelRepositoryInterface interface {
	Create(ctx context.Context, m *FunnelMembership) error
	ExistsForLead(ctx context.Context, leadID string) (bool, error)
}
