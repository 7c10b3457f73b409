package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/expert-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/insighting"
	insightmocks "github.com/vfg2006/expert-metrics-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/expert-metrics-api/pkg/middleware"
)

var fixedNow = time.Date(2024, time.May, 20, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newDashboardRouter(service insighting.Dashboarder) http.Handler {
	return router.New(router.WithRoutes(Dashboard(service, middleware.NewAuthorizer(""), fixedClock)...))
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestListClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := insightmocks.NewMockDashboarder(ctrl)

	service.EXPECT().ListClients(gomock.Any()).Return([]domain.Client{
		{Name: "Ana Souza", GID: "10", Slug: "ana-souza"},
	}, nil)

	rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/clients")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []domain.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "ana-souza", body[0].Slug)
}

func TestGetClientDashboard_PeriodoRepassadoAoServico(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected domain.RangeRequest
	}{
		{
			name:     "sem parâmetros usa todo o período",
			query:    "",
			expected: domain.RangeRequest{Preset: domain.RangeAllTime},
		},
		{
			name:     "apelido 30d",
			query:    "?range=30d",
			expected: domain.RangeRequest{Preset: domain.RangeLast30Days},
		},
		{
			name:     "preset nomeado",
			query:    "?range=this_month",
			expected: domain.RangeRequest{Preset: domain.RangeThisMonth},
		},
		{
			name:  "datas sem range viram período personalizado",
			query: "?start_date=2024-05-01&end_date=2024-05-10",
			expected: domain.RangeRequest{
				Preset: domain.RangeCustom,
				From:   domain.Date{Year: 2024, Month: time.May, Day: 1},
				To:     domain.Date{Year: 2024, Month: time.May, Day: 10},
			},
		},
		{
			name:     "granularidade do gráfico de progresso",
			query:    "?range=this_month&granularity=weekly",
			expected: domain.RangeRequest{Preset: domain.RangeThisMonth, Granularity: domain.GranularityWeekly},
		},
		{
			name:  "custom só com início",
			query: "?range=custom&start_date=2024-05-01",
			expected: domain.RangeRequest{
				Preset: domain.RangeCustom,
				From:   domain.Date{Year: 2024, Month: time.May, Day: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := insightmocks.NewMockDashboarder(ctrl)

			service.EXPECT().
				ClientDashboard(gomock.Any(), "ana", tt.expected, fixedNow).
				Return(&domain.ClientDashboard{Client: domain.Client{Slug: "ana"}, Preset: tt.expected.Preset}, nil)

			rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/clients/ana/dashboard"+tt.query)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"preset":"`+string(tt.expected.Preset)+`"`)
		})
	}
}

func TestGetClientDashboard_ParametrosInvalidos(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "range desconhecido", query: "?range=decada"},
		{name: "data fora do formato", query: "?start_date=01/05/2024"},
		{name: "range longo demais", query: "?range=aaaaaaaaaaaaaaaaaaaaaaaaa"},
		{name: "granularidade desconhecida", query: "?granularity=hourly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := insightmocks.NewMockDashboarder(ctrl)

			rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/clients/ana/dashboard"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VAL_001")
		})
	}
}

func TestGetClientDashboard_ErrosDoServico(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		code       string
	}{
		{
			name:       "cliente inexistente",
			err:        errors.Wrap(sheets.ErrClientNotFound, "zé"),
			statusCode: http.StatusNotFound,
			code:       "NF_001",
		},
		{
			name:       "falha na planilha",
			err:        errors.New("status 500"),
			statusCode: http.StatusBadGateway,
			code:       "SRV_003",
		},
		{
			name:       "timeout",
			err:        errors.Wrap(context.DeadlineExceeded, "apps script"),
			statusCode: http.StatusServiceUnavailable,
			code:       "SRV_004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := insightmocks.NewMockDashboarder(ctrl)

			service.EXPECT().ClientDashboard(gomock.Any(), "ze", gomock.Any(), fixedNow).Return(nil, tt.err)

			rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/clients/ze/dashboard")

			assert.Equal(t, tt.statusCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}

func TestGetOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := insightmocks.NewMockDashboarder(ctrl)

	service.EXPECT().
		Overview(gomock.Any(), domain.RangeRequest{Preset: domain.RangeLastWeek}, fixedNow).
		Return(&domain.Overview{Preset: domain.RangeLastWeek, ClientsFetched: 3}, nil)

	rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/overview?range=last_week")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clients_fetched":3`)
}

func TestGetClientsStatus_IndexadoPeloSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := insightmocks.NewMockDashboarder(ctrl)

	service.EXPECT().ClientsStatus(gomock.Any(), fixedNow).Return([]domain.ClientStatusEntry{
		{Client: domain.Client{Slug: "ana"}, Status: domain.ExpertStatus{Classification: domain.ClassificationScale}},
		{Client: domain.Client{Slug: "bruno"}, Status: domain.ExpertStatus{Classification: domain.ClassificationAtRisk}},
	}, nil)

	rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/clients-status")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]domain.ClientStatusEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, domain.ClassificationScale, body["ana"].Status.Classification)
	assert.Equal(t, domain.ClassificationAtRisk, body["bruno"].Status.Classification)
}

func TestGetStatusHistory(t *testing.T) {
	t.Run("limite repassado ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := insightmocks.NewMockDashboarder(ctrl)

		service.EXPECT().StatusHistory(gomock.Any(), "ana", 30).Return([]*domain.StatusSnapshot{}, nil)

		rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/clients/ana/status-history?limit=30")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("limite inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := insightmocks.NewMockDashboarder(ctrl)

		for _, query := range []string{"?limit=abc", "?limit=-1", "?limit=1000"} {
			rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/clients/ana/status-history"+query)
			assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		}
	})

	t.Run("erro do banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := insightmocks.NewMockDashboarder(ctrl)

		service.EXPECT().StatusHistory(gomock.Any(), "ana", 0).
			Return(nil, errors.Wrap(insighting.ErrSnapshotStore, "connection refused"))

		rec := serve(newDashboardRouter(service), http.MethodGet, "/v1/clients/ana/status-history")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "SRV_002")
	})
}

func TestRefreshClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := insightmocks.NewMockDashboarder(ctrl)

	service.EXPECT().RefreshClients().Times(1)

	rec := serve(newDashboardRouter(service), http.MethodPost, "/v1/clients/refresh")

	assert.Equal(t, http.StatusOK, rec.Code)
}
