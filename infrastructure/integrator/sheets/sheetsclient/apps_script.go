package sheetsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AppsScriptClient consome o Web App do Apps Script publicado na planilha
type AppsScriptClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewAppsScriptClient(cfg *config.Config) *AppsScriptClient {
	return &AppsScriptClient{
		httpClient: &http.Client{
			Timeout: cfg.Sheets.RequestTimeout,
		},
		baseURL: cfg.Sheets.AppsScriptURL,
		token:   cfg.Sheets.APIToken,
	}
}

func (c *AppsScriptClient) Source() string {
	return config.SourceAppsScript
}

type appsScriptTab struct {
	Name string `json:"name"`
	GID  any    `json:"gid"`
}

// ListTabs chama ?action=list_clients
func (c *AppsScriptClient) ListTabs(ctx context.Context) ([]Tab, error) {
	var response []appsScriptTab
	if err := c.get(ctx, url.Values{"action": {"list_clients"}}, &response); err != nil {
		return nil, err
	}

	tabs := make([]Tab, 0, len(response))
	for _, item := range response {
		tabs = append(tabs, Tab{Name: item.Name, GID: gidString(item.GID)})
	}

	return tabs, nil
}

// GetSheet chama ?gid=<gid> e devolve a matriz de valores da aba
func (c *AppsScriptClient) GetSheet(ctx context.Context, gid string) (domain.RawSheet, error) {
	var response []domain.RawRow
	if err := c.get(ctx, url.Values{"gid": {gid}}, &response); err != nil {
		return nil, err
	}

	return domain.RawSheet(response), nil
}

func (c *AppsScriptClient) get(ctx context.Context, params url.Values, target any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL do Apps Script")
	}

	query := endpoint.Query()
	for key, values := range params {
		for _, v := range values {
			query.Set(key, v)
		}
	}
	query.Set("token", c.token)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta")
	}

	// O Apps Script responde com um objeto ({"error": ...}) quando o token é inválido
	if err := json.Unmarshal(body, target); err != nil {
		return errors.Wrap(ErrUnexpectedPayload, err.Error())
	}

	return nil
}

// gidString normaliza o gid, que chega como número ou texto
func gidString(gid any) string {
	switch v := gid.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
