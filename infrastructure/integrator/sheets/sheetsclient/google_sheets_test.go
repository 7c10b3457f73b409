package sheetsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/vfg2006/expert-metrics-api/internal/config"
)

func newGoogleSheetsTestClient(t *testing.T) *GoogleSheetsClient {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if strings.Contains(r.URL.Path, "/values/") {
			assert.Equal(t, "UNFORMATTED_VALUE", r.URL.Query().Get("valueRenderOption"))
			assert.Equal(t, "SERIAL_NUMBER", r.URL.Query().Get("dateTimeRenderOption"))
			_, _ = w.Write([]byte(`{"range":"'Ana Souza'!A1:Z10","values":[["x"],[],[],["DATA"],[45321,100.5,"SIM"]]}`))
			return
		}

		_, _ = w.Write([]byte(`{"sheets":[{"properties":{"sheetId":0,"title":"Dashboard"}},{"properties":{"sheetId":987,"title":"Ana Souza"}}]}`))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{Sheets: config.Sheets{SpreadsheetID: "planilha-1"}}

	client, err := NewGoogleSheetsClient(context.Background(), cfg,
		option.WithEndpoint(server.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return client
}

func TestGoogleSheetsClient(t *testing.T) {
	client := newGoogleSheetsTestClient(t)

	tabs, err := client.ListTabs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Tab{{Name: "Dashboard", GID: "0"}, {Name: "Ana Souza", GID: "987"}}, tabs)

	sheet, err := client.GetSheet(context.Background(), "987")
	require.NoError(t, err)
	require.Len(t, sheet, 5)
	assert.Equal(t, 45321.0, sheet[4][0])
	assert.Equal(t, "SIM", sheet[4][2])

	_, err = client.GetSheet(context.Background(), "555")
	assert.True(t, errors.Is(err, ErrTabNotFound))
}

func TestQuoteSheetName(t *testing.T) {
	assert.Equal(t, "'Ana Souza'", quoteSheetName("Ana Souza"))
	assert.Equal(t, "'D''Ávila'", quoteSheetName("D'Ávila"))
}
