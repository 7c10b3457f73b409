package sheetsclient

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

// XLSXClient lê uma exportação .xlsx da planilha (uma aba por expert).
// O arquivo é aberto a cada leitura para refletir a última exportação.
type XLSXClient struct {
	path string
}

func NewXLSXClient(cfg *config.Config) *XLSXClient {
	return &XLSXClient{path: cfg.Sheets.XLSXPath}
}

func (c *XLSXClient) Source() string {
	return config.SourceXLSX
}

// ListTabs usa a posição da aba na pasta de trabalho como gid
func (c *XLSXClient) ListTabs(ctx context.Context) ([]Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(c.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo %s", c.path)
	}
	defer f.Close()

	names := f.GetSheetList()
	tabs := make([]Tab, 0, len(names))
	for i, name := range names {
		tabs = append(tabs, Tab{Name: name, GID: strconv.Itoa(i)})
	}

	return tabs, nil
}

func (c *XLSXClient) GetSheet(ctx context.Context, gid string) (domain.RawSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(c.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo %s", c.path)
	}
	defer f.Close()

	names := f.GetSheetList()
	index, err := strconv.Atoi(gid)
	if err != nil || index < 0 || index >= len(names) {
		return nil, errors.Wrapf(ErrTabNotFound, "gid %s", gid)
	}
	name := names[index]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %s", name)
	}

	sheet := make(domain.RawSheet, len(rows))
	for r, row := range rows {
		raw := make(domain.RawRow, len(row))
		for col, value := range row {
			raw[col] = cellValue(f, name, col, r, value)
		}
		sheet[r] = raw
	}

	return sheet, nil
}

// cellValue devolve números como float64 (datas chegam como serial) e textos como string.
// Células de texto que parecem número continuam texto para passar pela leitura BR/US.
func cellValue(f *excelize.File, sheet string, col, row int, value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}

	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return value
	}

	cellType, err := f.GetCellType(sheet, cell)
	if err != nil {
		return value
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return value
	default:
		return number
	}
}
