package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

func buildSpreadsheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		assert.NoError(t, err)
		assert.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf
}

// Cenário do contrato: 5 linhas válidas + 1 inválida → 5 importadas.
func TestImportLeadsMixedRows(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockEvents := new(MockEventPublisher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("PublishLeadEvent", mock.Anything, mock.MatchedBy(func(e queue.LeadEvent) bool {
		return e.Type == queue.EventLeadImported && e.Count == 5
	})).Return(nil)

	buf := buildSpreadsheet(t, [][]interface{}{
		{"name", "surname", "email", "phone"},
		{"Maria", "Silva", "maria@example.com", "(11) 99999-9999"},
		{"João", "Souza", "joao@example.com", ""},
		{"Ana", "", "", ""},
		{"Beto", "Lima", "beto@example.com", "(21) 98888-7777"},
		{"Carla", "Dias", "", ""},
		{"", "SemNome", "invalido@example.com", ""}, // name vazio: rejeitada
	})

	uc := NewImportLeadsUseCase(mockRepo, mockEvents)
	summary, err := uc.Execute(context.Background(), testCaller(), "leads.xlsx", int64(buf.Len()), buf)

	assert.NoError(t, err)
	assert.Equal(t, 5, summary.Imported)
	assert.Equal(t, 1, summary.Rejected)
	mockRepo.AssertNumberOfCalls(t, "Create", 5)
	mockEvents.AssertExpectations(t)
}

// Cabeçalho em português também serve.
func TestImportLeadsPortugueseHeader(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	buf := buildSpreadsheet(t, [][]interface{}{
		{"Nome", "Sobrenome", "E-mail", "Telefone"},
		{"Maria", "Silva", "maria@example.com", "(11) 99999-9999"},
	})

	uc := NewImportLeadsUseCase(mockRepo, nil)
	summary, err := uc.Execute(context.Background(), testCaller(), "leads.xlsx", int64(buf.Len()), buf)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 0, summary.Rejected)
}

// Extensão errada é barrada antes de qualquer parse ou ida ao banco.
func TestImportLeadsRejectsWrongExtension(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := NewImportLeadsUseCase(mockRepo, nil)
	_, err := uc.Execute(context.Background(), testCaller(), "leads.csv", 100, bytes.NewReader([]byte("a,b,c")))

	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeInvalidFile, err.(*DomainError).Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportLeadsRejectsOversizedFile(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := NewImportLeadsUseCase(mockRepo, nil)
	_, err := uc.Execute(context.Background(), testCaller(), "leads.xlsx", MaxImportSize+1, bytes.NewReader(nil))

	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeInvalidFile, err.(*DomainError).Code)
}

func TestImportLeadsRequiresNameColumn(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	buf := buildSpreadsheet(t, [][]interface{}{
		{"email", "phone"},
		{"maria@example.com", "(11) 99999-9999"},
	})

	uc := NewImportLeadsUseCase(mockRepo, nil)
	_, err := uc.Execute(context.Background(), testCaller(), "leads.xlsx", int64(buf.Len()), buf)

	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeInvalidFile, err.(*DomainError).Code)
}
