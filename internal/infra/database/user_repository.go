package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// ListByOrganization devolve os candidatos a responsável, sempre no escopo
// da organização do caller.
func (r *UserRepository) ListByOrganization(ctx context.Context, orgID string) ([]*entity.User, error) {
	query := `
		SELECT id, name, email, role, organization_id
		FROM users
		WHERE organization_id = $1
		ORDER BY name
	`

	rows, err := r.DB.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := []*entity.User{}
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.OrganizationID); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}

	return users, rows.Err()
}
