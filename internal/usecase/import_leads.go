package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

// MaxImportSize limita o upload a 10 MB.
const MaxImportSize = 10 << 20

type ImportLeadsUseCase struct {
	Repo   LeadRepositoryInterface
	Events EventPublisherInterface
}

func NewImportLeadsUseCase(repo LeadRepositoryInterface, events EventPublisherInterface) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{Repo: repo, Events: events}
}

// Execute lê a planilha, valida linha a linha e persiste os leads aceitos.
// Linha inválida não derruba a importação: entra no contador de rejeitadas.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, caller entity.Caller, filename string, size int64, file io.Reader) (*ImportSummary, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, &DomainError{
			Code:    CodeInvalidFile,
			Message: "apenas planilhas .xlsx ou .xls são aceitas",
		}
	}
	if size > MaxImportSize {
		return nil, &DomainError{
			Code:    CodeInvalidFile,
			Message: "arquivo excede o limite de 10MB",
		}
	}

	sheet, err := excelize.OpenReader(file)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeInvalidFile,
			Message: "não foi possível ler a planilha: " + err.Error(),
		}
	}
	defer sheet.Close()

	sheets := sheet.GetSheetList()
	if len(sheets) == 0 {
		return nil, &DomainError{Code: CodeInvalidFile, Message: "planilha vazia"}
	}

	rows, err := sheet.GetRows(sheets[0])
	if err != nil {
		return nil, &DomainError{
			Code:    CodeInvalidFile,
			Message: "não foi possível ler as linhas: " + err.Error(),
		}
	}
	if len(rows) < 2 {
		return &ImportSummary{Message: "Planilha sem linhas de dados"}, nil
	}

	columns := mapColumns(rows[0])
	if _, ok := columns["name"]; !ok {
		return nil, &DomainError{
			Code:    CodeInvalidFile,
			Message: "coluna obrigatória 'name' não encontrada no cabeçalho",
		}
	}

	imported := 0
	rejected := 0

	for i, row := range rows[1:] {
		input := LeadInput{
			Name:    cellAt(row, columns, "name"),
			Surname: cellAt(row, columns, "surname"),
			Email:   cellAt(row, columns, "email"),
			Phone:   cellAt(row, columns, "phone"),
		}

		if len(ValidateLeadInput(input)) > 0 {
			rejected++
			continue
		}

		lead, err := entity.NewLead(input.Name, input.Surname, input.Email, input.Phone, caller.OrganizationID)
		if err != nil {
			rejected++
			continue
		}

		if err := uc.Repo.Create(ctx, lead); err != nil {
			log.Printf("❌ [IMPORT] Linha %d não persistida: %v", i+2, err)
			rejected++
			continue
		}
		imported++
	}

	if imported > 0 && uc.Events != nil {
		if err := uc.Events.PublishLeadEvent(ctx, queue.LeadEvent{
			Type:           queue.EventLeadImported,
			OrganizationID: caller.OrganizationID,
			ActorUserID:    caller.UserID,
			Count:          imported,
		}); err != nil {
			log.Printf("⚠️ Evento lead.imported não publicado: %v", err)
		}
	}

	return &ImportSummary{
		Imported: imported,
		Rejected: rejected,
		Message:  fmt.Sprintf("%d leads importados, %d linhas rejeitadas", imported, rejected),
	}, nil
}

// mapColumns aceita cabeçalhos em inglês e português.
func mapColumns(header []string) map[string]int {
	aliases := map[string]string{
		"name":      "name",
		"nome":      "name",
		"surname":   "surname",
		"sobrenome": "surname",
		"email":     "email",
		"e-mail":    "email",
		"phone":     "phone",
		"telefone":  "phone",
		"celular":   "phone",
	}

	columns := make(map[string]int)
	for idx, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if field, ok := aliases[key]; ok {
			if _, taken := columns[field]; !taken {
				columns[field] = idx
			}
		}
	}
	return columns
}

func cellAt(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
