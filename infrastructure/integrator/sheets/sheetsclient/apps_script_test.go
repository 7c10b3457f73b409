package sheetsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/expert-metrics-api/internal/config"
)

func appsScriptConfig(url string) *config.Config {
	return &config.Config{
		Sheets: config.Sheets{
			Source:         config.SourceAppsScript,
			AppsScriptURL:  url,
			APIToken:       "segredo",
			RequestTimeout: 5 * time.Second,
		},
	}
}

func TestAppsScriptClient_ListTabs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "list_clients", r.URL.Query().Get("action"))
		assert.Equal(t, "segredo", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Ana Souza","gid":123456},{"name":"Dashboard","gid":"0"}]`))
	}))
	defer server.Close()

	client := NewAppsScriptClient(appsScriptConfig(server.URL + "/exec"))

	tabs, err := client.ListTabs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []Tab{{Name: "Ana Souza", GID: "123456"}, {Name: "Dashboard", GID: "0"}}, tabs)
	assert.Equal(t, config.SourceAppsScript, client.Source())
}

func TestAppsScriptClient_GetSheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123456", r.URL.Query().Get("gid"))
		_, _ = w.Write([]byte(`[["Título"],[],null,["DATA","INVESTIMENTO"],[45321,"R$ 100,00",null]]`))
	}))
	defer server.Close()

	client := NewAppsScriptClient(appsScriptConfig(server.URL))

	sheet, err := client.GetSheet(context.Background(), "123456")

	require.NoError(t, err)
	require.Len(t, sheet, 5)
	assert.Nil(t, sheet[2])
	assert.Equal(t, 45321.0, sheet[4][0])
	assert.Equal(t, "R$ 100,00", sheet[4][1])
	assert.Nil(t, sheet[4][2])
}

func TestAppsScriptClient_Errors(t *testing.T) {
	t.Run("Status diferente de 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewAppsScriptClient(appsScriptConfig(server.URL)).ListTabs(context.Background())
		assert.Error(t, err)
	})

	t.Run("Resposta que não é lista", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"token inválido"}`))
		}))
		defer server.Close()

		_, err := NewAppsScriptClient(appsScriptConfig(server.URL)).GetSheet(context.Background(), "1")
		assert.True(t, errors.Is(err, ErrUnexpectedPayload))
	})

	t.Run("Contexto cancelado", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewAppsScriptClient(appsScriptConfig(server.URL)).ListTabs(ctx)
		assert.Error(t, err)
	})
}
