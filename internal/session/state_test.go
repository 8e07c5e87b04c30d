package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

func pageOfLeads(ids ...string) *entity.PageResult {
	leads := make([]*entity.Lead, 0, len(ids))
	for _, id := range ids {
		leads = append(leads, &entity.Lead{ID: id, Name: "Lead " + id})
	}
	return &entity.PageResult{
		Data: leads,
		Pagination: entity.Pagination{
			Page:  1,
			Limit: 10,
			Total: len(leads),
			Pages: entity.PageCount(len(leads), 10),
		},
	}
}

// Mudar qualquer campo do filtro invalida a posição: página volta para 1.
func TestApplyFilterResetsPage(t *testing.T) {
	state := NewState(10).SetPage(4)
	assert.Equal(t, 4, state.Page.Page)

	state = state.ApplyFilter(entity.FilterCriteria{Search: "maria"})

	assert.Equal(t, 1, state.Page.Page)
	assert.Equal(t, "maria", state.Filter.Search)
}

// Seleção referenciando ids que não estão mais visíveis é o defeito da
// versão antiga: filtro e página novos limpam a seleção.
func TestFilterAndPageChangesClearSelection(t *testing.T) {
	state := NewState(10)
	state, _ = state.AcceptResult(0, pageOfLeads("a", "b", "c"))
	state = state.ToggleSelection("a").ToggleSelection("b")
	assert.Len(t, state.Selection, 2)

	filtered := state.ApplyFilter(entity.FilterCriteria{Search: "x"})
	assert.Empty(t, filtered.Selection)

	paged := state.NextPage()
	assert.Empty(t, paged.Selection)
}

func TestToggleSelection(t *testing.T) {
	state := NewState(10).ToggleSelection("a")
	assert.Equal(t, []string{"a"}, state.SelectedIDs())

	state = state.ToggleSelection("a")
	assert.Empty(t, state.SelectedIDs())
}

// Transições são puras: o estado anterior não pode ser mutado por engano.
func TestToggleSelectionDoesNotMutatePrevious(t *testing.T) {
	before := NewState(10).ToggleSelection("a")
	after := before.ToggleSelection("b")

	assert.Equal(t, []string{"a"}, before.SelectedIDs())
	assert.Equal(t, []string{"a", "b"}, after.SelectedIDs())
}

// Selecionar tudo seleciona exatamente os ids da página corrente, nunca o
// conjunto filtrado inteiro.
func TestSelectAllOnPageIsPageScoped(t *testing.T) {
	state := NewState(10)
	state, _ = state.AcceptResult(0, pageOfLeads("a", "b", "c"))

	state = state.SelectAllOnPage()
	assert.Equal(t, []string{"a", "b", "c"}, state.SelectedIDs())

	state = state.ClearSelection()
	assert.Empty(t, state.SelectedIDs())
}

func TestSelectAllOnPageWithoutResult(t *testing.T) {
	state := NewState(10).SelectAllOnPage()
	assert.Empty(t, state.SelectedIDs())
}

// Resposta atrasada de um fetch antigo não sobrescreve a mais nova.
func TestStaleFetchResultIsDropped(t *testing.T) {
	state := NewState(10)

	state, oldToken := state.BeginFetch()
	state, newToken := state.BeginFetch()

	state, accepted := state.AcceptResult(newToken, pageOfLeads("novo"))
	assert.True(t, accepted)

	state, accepted = state.AcceptResult(oldToken, pageOfLeads("velho"))
	assert.False(t, accepted)

	assert.Equal(t, "novo", state.Result.Data[0].ID)
}

func TestSetPageClampsToOne(t *testing.T) {
	state := NewState(10).SetPage(2).PrevPage().PrevPage()
	assert.Equal(t, 1, state.Page.Page)
}

func TestDayBoundsAreInclusive(t *testing.T) {
	d := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	filter := entity.FilterCriteria{StartDate: &d, EndDate: &d}

	start, end := filter.DayBounds()

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), *start)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999999999, time.Local), *end)
}
