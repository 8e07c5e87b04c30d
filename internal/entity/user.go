package entity

// Papéis com permissão de transferir leads. O gateway da plataforma é a
// autoridade sobre o papel do caller; aqui só repetimos a checagem.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAgent   = "agent"
)

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organizationId"`
}

// Caller é a identidade injetada pelo gateway via headers confiáveis.
type Caller struct {
	UserID         string
	Role           string
	OrganizationID string
}

func (c Caller) CanTransfer() bool {
	switch c.Role {
	case RoleOwner, RoleAdmin, RoleManager:
		return true
	}
	return false
}
