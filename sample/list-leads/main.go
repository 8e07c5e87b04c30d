// Ferramenta de teste manual: pagina leads via API usando o motor de
// sessão, igual o front faz. Útil para validar filtro/paginação sem UI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/leadstore"
	"github.com/xavierca1/ligue-leads/internal/session"
)

func main() {
	baseURL := os.Getenv("LEADS_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	caller := entity.Caller{
		UserID:         os.Getenv("LEADS_USER_ID"),
		Role:           entity.RoleAdmin,
		OrganizationID: os.Getenv("LEADS_ORG_ID"),
	}

	client := leadstore.NewClient(baseURL, os.Getenv("LEADS_API_TOKEN"), caller)
	state := session.NewState(10)

	search := ""
	if len(os.Args) > 1 {
		search = os.Args[1]
	}
	state = state.ApplyFilter(entity.FilterCriteria{Search: search})

	for {
		state2, token := state.BeginFetch()
		state = state2

		result, err := client.ListLeads(state.Filter, state.Page)
		if err != nil {
			log.Fatalf("❌ Falha ao listar leads: %v", err)
		}

		state, _ = state.AcceptResult(token, result)

		fmt.Printf("— Página %d/%d (%d leads no total)\n",
			result.Pagination.Page, result.Pagination.Pages, result.Pagination.Total)
		for _, lead := range result.Data {
			owner := "sem dono"
			if lead.OwnerUserID != nil {
				owner = *lead.OwnerUserID
			}
			fmt.Printf("  %s  %s %s  <%s>  [%s]\n", lead.ID, lead.Name, lead.Surname, lead.Email, owner)
		}

		if result.Pagination.Page >= result.Pagination.Pages {
			break
		}
		state = state.NextPage()
	}
}
