package leadstore

import "github.com/xavierca1/ligue-leads/internal/entity"

// pageEnvelope é o formato "rico" da API de leads.
type pageEnvelope struct {
	Data       []*entity.Lead     `json:"data"`
	Pagination *entity.Pagination `json:"pagination"`
}

type CreateLeadInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type BulkDeleteInput struct {
	IDs []string `json:"ids"`
}

type BulkDeleteReport struct {
	Deleted []string `json:"deleted"`
	Failed  []struct {
		ID     string `json:"id"`
		Reason string `json:"reason"`
	} `json:"failed"`
}

type PromoteOutput struct {
	Created bool   `json:"created"`
	Message string `json:"message,omitempty"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
