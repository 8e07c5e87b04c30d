package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, surname, email, phone, owner_user_id, organization_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.Surname),
		nullString(lead.Email),
		nullString(lead.Phone),
		lead.OwnerUserID,
		lead.OrganizationID,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao inserir lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, orgID, id string) (*entity.Lead, error) {
	query := `
		SELECT id, name, surname, email, phone, owner_user_id, organization_id, created_at, updated_at
		FROM leads
		WHERE organization_id = $1 AND id = $2
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, orgID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return lead, nil
}

// List aplica o filtro composto por AND: busca textual case-insensitive em
// name/surname/email/phone e limites inclusivos de created_at. Ordenação
// estável: created_at DESC com desempate por id.
func (r *LeadRepository) List(ctx context.Context, orgID string, filter entity.FilterCriteria, page entity.PageRequest) ([]*entity.Lead, int, error) {
	page = page.Normalize()

	where := []string{"organization_id = $1"}
	args := []interface{}{orgID}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern)
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(name ILIKE $%d OR surname ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", n, n, n, n))
	}

	start, end := filter.DayBounds()
	if start != nil {
		args = append(args, *start)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM leads WHERE " + whereClause
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("falha ao contar leads: %w", err)
	}

	args = append(args, page.Limit, page.Offset())
	listQuery := fmt.Sprintf(`
		SELECT id, name, surname, email, phone, owner_user_id, organization_id, created_at, updated_at
		FROM leads
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao listar leads: %w", err)
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	// organization_id e created_at são imutáveis e ficam fora do SET.
	query := `
		UPDATE leads
		SET name = $1, surname = $2, email = $3, phone = $4, owner_user_id = $5, updated_at = $6
		WHERE organization_id = $7 AND id = $8
	`

	result, err := r.DB.ExecContext(ctx, query,
		lead.Name,
		nullString(lead.Surname),
		nullString(lead.Email),
		nullString(lead.Phone),
		lead.OwnerUserID,
		lead.UpdatedAt,
		lead.OrganizationID,
		lead.ID,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar lead: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, orgID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("falha ao remover lead: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var surname, email, phone, owner sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&surname,
		&email,
		&phone,
		&owner,
		&lead.OrganizationID,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Surname = surname.String
	lead.Email = email.String
	lead.Phone = phone.String
	if owner.Valid {
		lead.OwnerUserID = &owner.String
	}

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
