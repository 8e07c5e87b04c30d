// Package session modela o estado de consulta de uma sessão de usuário
// (filtro + paginação + seleção) como um objeto explícito com transições
// puras. Mudar filtro volta para a página 1 e limpa a seleção; mudar de
// página limpa a seleção; resposta
// de fetch antiga é descartada pelo token de geração.
package session

import (
	"sort"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type State struct {
	Filter     entity.FilterCriteria
	Page       entity.PageRequest
	Selection  map[string]struct{}
	Generation uint64

	// Último resultado aceito. Nunca é atualizado parcialmente: ou troca
	// inteiro num fetch bem-sucedido, ou fica como está.
	Result *entity.PageResult
}

func NewState(limit int) State {
	return State{
		Page:      entity.PageRequest{Page: 1, Limit: limit}.Normalize(),
		Selection: map[string]struct{}{},
	}
}

// ApplyFilter troca o critério, volta para a página 1 e limpa a seleção.
// Continuidade posicional não sobrevive a mudança de filtro.
func (s State) ApplyFilter(filter entity.FilterCriteria) State {
	s.Filter = filter
	s.Page.Page = 1
	s.Selection = map[string]struct{}{}
	return s
}

// SetPage navega para uma página (mínimo 1) e limpa a seleção: seleção é
// escopada à página visível.
func (s State) SetPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page.Page = page
	s.Selection = map[string]struct{}{}
	return s
}

func (s State) NextPage() State {
	return s.SetPage(s.Page.Page + 1)
}

func (s State) PrevPage() State {
	return s.SetPage(s.Page.Page - 1)
}

func (s State) ToggleSelection(id string) State {
	s.Selection = copySet(s.Selection)
	if _, ok := s.Selection[id]; ok {
		delete(s.Selection, id)
	} else {
		s.Selection[id] = struct{}{}
	}
	return s
}

// SelectAllOnPage seleciona exatamente os ids da página corrente — nunca o
// conjunto filtrado inteiro.
func (s State) SelectAllOnPage() State {
	selection := map[string]struct{}{}
	if s.Result != nil {
		for _, lead := range s.Result.Data {
			selection[lead.ID] = struct{}{}
		}
	}
	s.Selection = selection
	return s
}

func (s State) ClearSelection() State {
	s.Selection = map[string]struct{}{}
	return s
}

func (s State) SelectedIDs() []string {
	ids := make([]string, 0, len(s.Selection))
	for id := range s.Selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BeginFetch marca o início de uma busca e devolve o token que identifica
// esta geração. Buscas emitidas depois invalidam as anteriores.
func (s State) BeginFetch() (State, uint64) {
	s.Generation++
	return s, s.Generation
}

// AcceptResult só aceita o resultado se ele pertencer à geração mais
// recente; resposta atrasada de um filtro antigo não sobrescreve a nova.
func (s State) AcceptResult(token uint64, result *entity.PageResult) (State, bool) {
	if token != s.Generation {
		return s, false
	}
	s.Result = result
	return s, true
}

func copySet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}
