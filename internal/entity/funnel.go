package entity

import "time"

// FunnelMembership liga um Lead ao funil de vendas.
// Invariante: no máximo UMA membership ativa por lead (unique index em lead_id).
type FunnelMembership struct {
	ID             string    `json:"id"`
	LeadID         string    `json:"leadId"`
	OrganizationID string    `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`
}
