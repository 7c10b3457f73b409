package sheetsclient

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

// GoogleSheetsClient lê a planilha direto pela API do Google Sheets.
// Os valores vêm sem formatação e as datas como serial, como na exportação do Apps Script.
type GoogleSheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewGoogleSheetsClient autentica com o arquivo de credenciais (conta de serviço)
// ou, sem ele, com a API key em API_TOKEN
func NewGoogleSheetsClient(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*GoogleSheetsClient, error) {
	if len(opts) == 0 {
		switch {
		case cfg.Sheets.CredentialsFile != "":
			opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
		case cfg.Sheets.APIToken != "":
			opts = append(opts, option.WithAPIKey(cfg.Sheets.APIToken))
		}
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o cliente do Google Sheets")
	}

	return &GoogleSheetsClient{
		service:       service,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
	}, nil
}

func (c *GoogleSheetsClient) Source() string {
	return config.SourceGoogleSheets
}

func (c *GoogleSheetsClient) ListTabs(ctx context.Context) ([]Tab, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.sheetId", "sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar as abas da planilha %s", c.spreadsheetID)
	}

	tabs := make([]Tab, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties == nil {
			continue
		}
		tabs = append(tabs, Tab{
			Name: sheet.Properties.Title,
			GID:  strconv.FormatInt(sheet.Properties.SheetId, 10),
		})
	}

	return tabs, nil
}

func (c *GoogleSheetsClient) GetSheet(ctx context.Context, gid string) (domain.RawSheet, error) {
	tabs, err := c.ListTabs(ctx)
	if err != nil {
		return nil, err
	}

	var title string
	for _, tab := range tabs {
		if tab.GID == gid {
			title = tab.Name
			break
		}
	}
	if title == "" {
		return nil, errors.Wrapf(ErrTabNotFound, "gid %s", gid)
	}

	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, quoteSheetName(title)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %s", title)
	}

	sheet := make(domain.RawSheet, len(resp.Values))
	for i, row := range resp.Values {
		sheet[i] = domain.RawRow(row)
	}

	return sheet, nil
}

// quoteSheetName monta o range A1 com o nome da aba entre aspas simples
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
