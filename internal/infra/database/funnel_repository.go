package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

type FunnelRepository struct {
	DB *sql.DB
}

func NewFunnelRepository(db *sql.DB) *FunnelRepository {
	return &FunnelRepository{DB: db}
}

// Create insere a membership. O unique index em lead_id é quem garante
// "no máximo uma por lead" mesmo com duas promoções concorrentes.
func (r *FunnelRepository) Create(ctx context.Context, m *entity.FunnelMembership) error {
	query := `
		INSERT INTO funnel_memberships (id, lead_id, organization_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID,
		m.LeadID,
		m.OrganizationID,
		m.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return entity.ErrAlreadyInFunnel
			}
		}

		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *FunnelRepository) ExistsForLead(ctx context.Context, leadID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM funnel_memberships WHERE lead_id = $1)`, leadID,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return false, err
	}
	return exists, nil
}
