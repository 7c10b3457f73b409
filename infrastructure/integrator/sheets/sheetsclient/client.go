package sheetsclient

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

var (
	ErrTabNotFound       = errors.New("aba não encontrada na planilha")
	ErrUnexpectedPayload = errors.New("resposta da planilha em formato inesperado")
)

// Tab é uma aba da planilha
type Tab struct {
	Name string
	GID  string
}

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// Client lê as abas e o conteúdo cru de uma planilha
type Client interface {
	// Source identifica a fonte (apps_script, google_sheets, xlsx)
	Source() string
	ListTabs(ctx context.Context) ([]Tab, error)
	GetSheet(ctx context.Context, gid string) (domain.RawSheet, error)
}

// NewClient cria o cliente da fonte configurada
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.Sheets.Source {
	case config.SourceAppsScript:
		return NewAppsScriptClient(cfg), nil
	case config.SourceGoogleSheets:
		client, err := NewGoogleSheetsClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.SourceXLSX:
		return NewXLSXClient(cfg), nil
	default:
		return nil, errors.Errorf("fonte de planilha não suportada: %s", cfg.Sheets.Source)
	}
}
