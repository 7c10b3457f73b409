package sheetsclient

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/expert-metrics-api/internal/config"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Resumo"))
	_, err := f.NewSheet("Ana Souza")
	require.NoError(t, err)

	require.NoError(t, f.SetCellValue("Ana Souza", "A4", "DATA"))
	require.NoError(t, f.SetCellValue("Ana Souza", "Y4", "VALOR TOTAL"))
	require.NoError(t, f.SetCellValue("Ana Souza", "A5", 45321))
	require.NoError(t, f.SetCellValue("Ana Souza", "B5", 150.5))
	require.NoError(t, f.SetCellValue("Ana Souza", "C5", "1.200"))
	require.NoError(t, f.SetCellValue("Ana Souza", "I5", "SIM"))

	path := filepath.Join(t.TempDir(), "experts.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

func TestXLSXClient(t *testing.T) {
	client := NewXLSXClient(&config.Config{Sheets: config.Sheets{XLSXPath: writeWorkbook(t)}})

	tabs, err := client.ListTabs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Tab{{Name: "Resumo", GID: "0"}, {Name: "Ana Souza", GID: "1"}}, tabs)

	sheet, err := client.GetSheet(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, sheet, 5)

	header := sheet[3]
	assert.Equal(t, "DATA", header[0])
	assert.Equal(t, "VALOR TOTAL", header[24])

	row := sheet[4]
	assert.Equal(t, 45321.0, row[0])
	assert.Equal(t, 150.5, row[1])
	assert.Equal(t, "1.200", row[2], "texto numérico continua texto")
	assert.Nil(t, row[3])
	assert.Equal(t, "SIM", row[8])
}

func TestXLSXClient_Errors(t *testing.T) {
	client := NewXLSXClient(&config.Config{Sheets: config.Sheets{XLSXPath: writeWorkbook(t)}})

	_, err := client.GetSheet(context.Background(), "9")
	assert.True(t, errors.Is(err, ErrTabNotFound))

	_, err = client.GetSheet(context.Background(), "abc")
	assert.True(t, errors.Is(err, ErrTabNotFound))

	missing := NewXLSXClient(&config.Config{Sheets: config.Sheets{XLSXPath: filepath.Join(t.TempDir(), "nada.xlsx")}})
	_, err = missing.ListTabs(context.Background())
	assert.Error(t, err)
}
