// Package leadstore é o client HTTP da API de leads, usado pelo tooling e
// pelo motor de sessão. Lojas antigas respondem a listagem como array puro;
// as novas respondem o envelope {data, pagination}. O client normaliza os
// dois formatos num único PageResult.
package leadstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type Client struct {
	baseURL string
	token   string
	caller  entity.Caller
	http    *http.Client
}

func NewClient(baseURL, token string, caller entity.Caller) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		caller:  caller,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) ListLeads(filter entity.FilterCriteria, page entity.PageRequest) (*entity.PageResult, error) {
	page = page.Normalize()

	params := url.Values{}
	params.Set("page", strconv.Itoa(page.Page))
	params.Set("limit", strconv.Itoa(page.Limit))
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.StartDate != nil {
		params.Set("startDate", filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		params.Set("endDate", filter.EndDate.Format("2006-01-02"))
	}

	body, _, err := c.do("GET", "/leads?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	return decodePage(body, page)
}

func (c *Client) CreateLead(input CreateLeadInput) (*entity.Lead, error) {
	body, _, err := c.do("POST", "/leads", input)
	if err != nil {
		return nil, err
	}

	var lead entity.Lead
	if err := json.Unmarshal(body, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) BulkDelete(ids []string) (*BulkDeleteReport, error) {
	body, _, err := c.do("DELETE", "/leads", BulkDeleteInput{IDs: ids})
	if err != nil {
		return nil, err
	}

	var report BulkDeleteReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) TransferLead(leadID, targetUserID string) (*entity.Lead, error) {
	body, _, err := c.do("PUT", "/leads/"+leadID, map[string]string{"ownerUserId": targetUserID})
	if err != nil {
		return nil, err
	}

	var lead entity.Lead
	if err := json.Unmarshal(body, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// Promote devolve created=false sem erro quando o lead já está no funil:
// conflito é aviso, não falha.
func (c *Client) Promote(leadID string) (*PromoteOutput, error) {
	body, status, err := c.do("POST", "/funnel", map[string]string{"leadId": leadID})
	if err != nil {
		if status == http.StatusConflict {
			return &PromoteOutput{Created: false, Message: "lead já está no funil"}, nil
		}
		return nil, err
	}

	var output PromoteOutput
	if err := json.Unmarshal(body, &output); err != nil {
		return nil, err
	}
	return &output, nil
}

func (c *Client) do(method, path string, payload interface{}) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("X-Api-Token", c.token)
	}
	req.Header.Set("X-User-Id", c.caller.UserID)
	req.Header.Set("X-User-Role", c.caller.Role)
	req.Header.Set("X-Organization-Id", c.caller.OrganizationID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		// Prefere a mensagem do servidor; sem ela, fallback fixo.
		var apiErr apiError
		msg := "falha na API de leads"
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return body, resp.StatusCode, fmt.Errorf("%s (status %d)", msg, resp.StatusCode)
	}

	return body, resp.StatusCode, nil
}

// decodePage aceita os dois formatos de resposta e devolve sempre o mesmo
// PageResult. No formato array puro a paginação é sintetizada a partir do
// tamanho da resposta.
func decodePage(body []byte, page entity.PageRequest) (*entity.PageResult, error) {
	var envelope pageEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Pagination != nil {
		if envelope.Data == nil {
			envelope.Data = []*entity.Lead{}
		}
		return &entity.PageResult{
			Data:       envelope.Data,
			Pagination: *envelope.Pagination,
		}, nil
	}

	var raw []*entity.Lead
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("resposta da API de leads em formato desconhecido: %w", err)
	}
	if raw == nil {
		raw = []*entity.Lead{}
	}

	return &entity.PageResult{
		Data: raw,
		Pagination: entity.Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: len(raw),
			Pages: entity.PageCount(len(raw), page.Limit),
		},
	}, nil
}
