package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/expert-metrics-api/infrastructure/cache"
	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/pkg/telemetry"
)

func newTestService(t *testing.T, client sheetsclient.Client) *SheetsService {
	t.Helper()

	cfg := &config.Config{
		App: config.App{Location: time.UTC},
		Sheets: config.Sheets{
			IgnoredTabs:          []string{"Modelo"},
			MaxConcurrentFetches: 2,
		},
	}

	service, ok := New(cfg, client, cache.NewClientCache(time.Minute), telemetry.New(prometheus.NewRegistry())).(*SheetsService)
	require.True(t, ok)
	return service
}

// sheetWith monta uma aba com cabeçalho na linha 4 e as linhas de dados a partir da linha 5
func sheetWith(rows ...domain.RawRow) domain.RawSheet {
	sheet := domain.RawSheet{{"Dashboard"}, {}, {}, {"DATA", "INVESTIMENTO", "DEPÓSITOS"}}
	return append(sheet, rows...)
}

func TestSheetsService_ListClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Source().Return(config.SourceAppsScript).AnyTimes()
	client.EXPECT().
		ListTabs(gomock.Any()).
		Return([]sheetsclient.Tab{
			{Name: "João Silva", GID: "10"},
			{Name: "Dashboard", GID: "0"},
			{Name: "Critérios Scorecard", GID: "1"},
			{Name: "Modelo", GID: "2"},
			{Name: " Ana Souza ", GID: "11"},
		}, nil).
		Times(1)

	service := newTestService(t, client)

	clients, err := service.ListClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Client{
		{Name: "João Silva", GID: "10", Slug: "joao-silva"},
		{Name: "Ana Souza", GID: "11", Slug: "ana-souza"},
	}, clients)

	// segunda chamada vem do cache
	cached, err := service.ListClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, clients, cached)

	found, err := service.FindClient(context.Background(), "ana-souza")
	require.NoError(t, err)
	assert.Equal(t, "11", found.GID)

	_, err = service.FindClient(context.Background(), "inexistente")
	assert.True(t, errors.Is(err, ErrClientNotFound))
}

func TestSheetsService_ListClientsAfterInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Source().Return(config.SourceXLSX).AnyTimes()
	client.EXPECT().ListTabs(gomock.Any()).Return([]sheetsclient.Tab{{Name: "Ana", GID: "1"}}, nil).Times(2)

	service := newTestService(t, client)

	_, err := service.ListClients(context.Background())
	require.NoError(t, err)

	service.InvalidateClients()

	_, err = service.ListClients(context.Background())
	require.NoError(t, err)
}

func TestSheetsService_ListClientsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Source().Return(config.SourceAppsScript).AnyTimes()
	client.EXPECT().ListTabs(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := newTestService(t, client).ListClients(context.Background())
	assert.Error(t, err)
}

func TestSheetsService_FetchClientRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Source().Return(config.SourceAppsScript).AnyTimes()
	client.EXPECT().
		GetSheet(gomock.Any(), "10").
		Return(sheetWith(
			domain.RawRow{"01/05/2024", "100", "250"},
			domain.RawRow{},
			domain.RawRow{"data?", "1", "1"},
			domain.RawRow{45414.0, "50", "75"},
		), nil)

	service := newTestService(t, client)

	records, err := service.FetchClientRecords(context.Background(), domain.Client{Name: "João Silva", GID: "10", Slug: "joao-silva"})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "João Silva", records[0].ClientName)
	assert.Equal(t, 250.0, records[0].Deposits)
	assert.Equal(t, domain.Date{Year: 2024, Month: time.May, Day: 2}, records[1].Date)
	assert.Equal(t, "João Silva", records[1].ClientName)
}

func TestSheetsService_FetchAllClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Source().Return(config.SourceAppsScript).AnyTimes()
	client.EXPECT().
		ListTabs(gomock.Any()).
		Return([]sheetsclient.Tab{
			{Name: "Ana", GID: "1"},
			{Name: "Bruno", GID: "2"},
			{Name: "Carla", GID: "3"},
		}, nil)
	client.EXPECT().GetSheet(gomock.Any(), "1").Return(sheetWith(domain.RawRow{"01/05/2024", "10", "20"}), nil)
	client.EXPECT().GetSheet(gomock.Any(), "2").Return(nil, errors.New("status 500"))
	client.EXPECT().GetSheet(gomock.Any(), "3").Return(sheetWith(
		domain.RawRow{"01/05/2024", "10", "30"},
		domain.RawRow{"02/05/2024", "10", "40"},
	), nil)

	all, err := newTestService(t, client).FetchAllClients(context.Background())

	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "ana", all[0].Client.Slug)
	assert.Len(t, all[0].Records, 1)

	assert.Equal(t, "bruno", all[1].Client.Slug)
	assert.NotNil(t, all[1].Records)
	assert.Empty(t, all[1].Records)

	assert.Equal(t, "carla", all[2].Client.Slug)
	assert.Len(t, all[2].Records, 2)

	merged := MergeRecords(all)
	assert.Len(t, merged, 3)
	assert.Equal(t, "Carla", merged[2].ClientName)
}

func TestSheetsService_FetchAllClientsCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Source().Return(config.SourceAppsScript).AnyTimes()
	client.EXPECT().ListTabs(gomock.Any()).Return([]sheetsclient.Tab{{Name: "Ana", GID: "1"}}, nil)
	client.EXPECT().GetSheet(gomock.Any(), "1").Return(nil, context.Canceled).AnyTimes()

	service := newTestService(t, client)
	_, err := service.ListClients(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = service.FetchAllClients(ctx)
	assert.Error(t, err)
}

func TestNew_SemFusoUsaUTC(t *testing.T) {
	ctrl := gomock.NewController(t)

	service, ok := New(&config.Config{Sheets: config.Sheets{MaxConcurrentFetches: 1}}, mocks.NewMockClient(ctrl), cache.NewClientCache(time.Minute), telemetry.New(prometheus.NewRegistry())).(*SheetsService)
	require.True(t, ok)
	assert.Equal(t, time.UTC, service.location)
}
