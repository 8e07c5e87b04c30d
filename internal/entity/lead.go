package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// Entidade: Lead
type Lead struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	OwnerUserID    *string   `json:"ownerUserId"`
	OrganizationID string    `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Factory
func NewLead(name, surname, email, phone, organizationID string) (*Lead, error) {
	lead := &Lead{
		ID:             uuid.New().String(),
		Name:           name,
		Surname:        surname,
		Email:          email,
		Phone:          phone,
		OrganizationID: organizationID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.OrganizationID == "" {
		return errors.New("organization id is required")
	}
	return nil
}

// FilterCriteria é um value object, nunca persistido.
// search casa substring (case-insensitive) com name, surname, email e phone.
// StartDate/EndDate limitam created_at na granularidade de dia local:
// início do dia de StartDate até 23:59:59.999... do dia de EndDate.
type FilterCriteria struct {
	Search    string     `json:"search,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

func (f FilterCriteria) IsEmpty() bool {
	return f.Search == "" && f.StartDate == nil && f.EndDate == nil
}

// DayBounds expande as datas do filtro para limites inclusivos de timestamp.
func (f FilterCriteria) DayBounds() (start, end *time.Time) {
	if f.StartDate != nil {
		s := time.Date(f.StartDate.Year(), f.StartDate.Month(), f.StartDate.Day(), 0, 0, 0, 0, f.StartDate.Location())
		start = &s
	}
	if f.EndDate != nil {
		e := time.Date(f.EndDate.Year(), f.EndDate.Month(), f.EndDate.Day(), 23, 59, 59, 999999999, f.EndDate.Location())
		end = &e
	}
	return start, end
}

type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

func (p PageRequest) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type PageResult struct {
	Data       []*Lead    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PageCount garante pages = ceil(total/limit), mínimo 1.
func PageCount(total, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}
