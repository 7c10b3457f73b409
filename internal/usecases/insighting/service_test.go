package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets"
	sheetsmocks "github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets/mocks"
	repomocks "github.com/vfg2006/expert-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/forecasting"
)

var (
	referenceNow = time.Date(2024, time.May, 20, 15, 0, 0, 0, time.UTC)
	ana          = domain.Client{Name: "Ana", GID: "1", Slug: "ana"}
	bruno        = domain.Client{Name: "Bruno", GID: "2", Slug: "bruno"}
)

// dailyRecords gera um registro por dia de first até last (inclusive)
func dailyRecords(name string, first, last int, cost, deposits float64) []domain.MetricRecord {
	records := make([]domain.MetricRecord, 0, last-first+1)
	for d := first; d <= last; d++ {
		records = append(records, domain.MetricRecord{
			ClientName: name,
			Date:       day(d),
			Cost:       cost,
			Deposits:   deposits,
			Leads:      10,
			GroupScore: 4,
		})
	}
	return records
}

func TestService_ClientDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := dailyRecords("Ana", 14, 20, 100, 200)
	records[2].Deposits = 500
	records[3].Summary8020 = "Live boa, grupo engajado"
	records = append(records, domain.MetricRecord{ClientName: "Ana", Date: day(25), Detail: "planejado"})

	integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	integrator.EXPECT().FindClient(gomock.Any(), "ana").Return(ana, nil)
	integrator.EXPECT().FetchClientRecords(gomock.Any(), ana).Return(records, nil)

	dashboard, err := NewService(integrator).ClientDashboard(
		context.Background(), "ana", domain.RangeRequest{Preset: domain.RangeLast30Days}, referenceNow,
	)

	require.NoError(t, err)
	assert.Equal(t, ana, dashboard.Client)
	assert.Equal(t, domain.RangeLast30Days, dashboard.Preset)
	assert.Equal(t, "Últimos 30 Dias", dashboard.RangeLabel)

	assert.Equal(t, 700.0, dashboard.Totals.Cost)
	assert.Equal(t, 1700.0, dashboard.Totals.Deposits)
	assert.Equal(t, 70, dashboard.Totals.Leads)
	assert.Equal(t, domain.AggregatedMetrics{}, dashboard.PreviousTotals)

	assert.Len(t, dashboard.Daily, 7)
	assert.Len(t, dashboard.Chart, 31)
	assert.Equal(t, day(20), dashboard.Chart[30].Date)
	assert.Equal(t, 200.0, dashboard.Chart[30].Value)

	require.NotNil(t, dashboard.BestDay)
	assert.Equal(t, day(16), dashboard.BestDay.Date)

	assert.Equal(t, domain.ClassificationScale, dashboard.Status.Classification)
	assert.Equal(t, domain.TrendRising, dashboard.Status.Trend)
	assert.Equal(t, domain.NotAvailable, dashboard.SourceStatus.Classification)

	assert.Equal(t, domain.GranularityDaily, dashboard.Granularity)
	require.Len(t, dashboard.Progress, 7)
	assert.Equal(t, "16/05", dashboard.Progress[2].Label)
	assert.Equal(t, 500.0, dashboard.Progress[2].Value)

	assert.Len(t, dashboard.Forecast, forecasting.DefaultHorizon)
	assert.Equal(t, day(21), dashboard.Forecast[0].Date)
	assert.InDelta(t, forecasting.Total(dashboard.Forecast), dashboard.ForecastTotal, 0.0001)

	assert.Equal(t, 4.0, dashboard.Quality.AvgGroupScore)
	require.Len(t, dashboard.Notes, 1)
	assert.Equal(t, day(17), dashboard.Notes[0].Date)
}

func TestService_ClientDashboardWeeklyProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := dailyRecords("Ana", 14, 20, 100, 200)
	records[2].Deposits = 500

	integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	integrator.EXPECT().FindClient(gomock.Any(), "ana").Return(ana, nil)
	integrator.EXPECT().FetchClientRecords(gomock.Any(), ana).Return(records, nil)

	dashboard, err := NewService(integrator).ClientDashboard(
		context.Background(), "ana",
		domain.RangeRequest{Preset: domain.RangeLast30Days, Granularity: domain.GranularityWeekly},
		referenceNow,
	)

	require.NoError(t, err)
	assert.Equal(t, domain.GranularityWeekly, dashboard.Granularity)
	assert.Equal(t, []domain.ProgressPoint{
		{Label: "12/05", Start: day(12), Value: 1300, Records: 5},
		{Label: "19/05", Start: day(19), Value: 400, Records: 2},
	}, dashboard.Progress)
}

func TestService_ClientDashboardAllTimeChartStartsAtFirstRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	integrator.EXPECT().FindClient(gomock.Any(), "ana").Return(ana, nil)
	integrator.EXPECT().FetchClientRecords(gomock.Any(), ana).Return(dailyRecords("Ana", 10, 12, 10, 20), nil)

	dashboard, err := NewService(integrator).ClientDashboard(context.Background(), "ana", domain.RangeRequest{}, referenceNow)

	require.NoError(t, err)
	assert.Equal(t, domain.RangeAllTime, dashboard.Preset)
	require.Len(t, dashboard.Chart, 11)
	assert.Equal(t, day(10), dashboard.Chart[0].Date)
	assert.Equal(t, day(20), dashboard.Chart[10].Date)
	assert.Equal(t, 0.0, dashboard.Chart[10].Value)
}

func TestService_ClientDashboardErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *sheetsmocks.MockSheetsIntegrator)
		check func(t *testing.T, err error)
	}{
		{
			name: "deve retornar erro quando o cliente não existe",
			setup: func(m *sheetsmocks.MockSheetsIntegrator) {
				m.EXPECT().FindClient(gomock.Any(), "ana").Return(domain.Client{}, errors.Wrap(sheets.ErrClientNotFound, "slug ana"))
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, sheets.ErrClientNotFound))
			},
		},
		{
			name: "deve propagar erro da leitura da planilha",
			setup: func(m *sheetsmocks.MockSheetsIntegrator) {
				m.EXPECT().FindClient(gomock.Any(), "ana").Return(ana, nil)
				m.EXPECT().FetchClientRecords(gomock.Any(), ana).Return(nil, errors.New("status 500"))
			},
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "status 500")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
			tt.setup(integrator)

			dashboard, err := NewService(integrator).ClientDashboard(context.Background(), "ana", domain.RangeRequest{}, referenceNow)

			assert.Nil(t, dashboard)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	all := []sheets.ClientRecords{
		{Client: ana, Records: dailyRecords("Ana", 14, 20, 100, 200)},
		{Client: bruno, Records: dailyRecords("Bruno", 14, 20, 100, 120)},
		{Client: domain.Client{Name: "Carla", GID: "3", Slug: "carla"}, Records: []domain.MetricRecord{}},
	}

	integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	integrator.EXPECT().FetchAllClients(gomock.Any()).Return(all, nil)

	overview, err := NewService(integrator).Overview(context.Background(), domain.RangeRequest{Preset: domain.RangeThisMonth}, referenceNow)

	require.NoError(t, err)
	assert.Equal(t, 3, overview.ClientsFetched)
	assert.Equal(t, 14, overview.RecordsInPeriod)
	assert.Equal(t, 1400.0, overview.Totals.Cost)
	assert.Equal(t, 2240.0, overview.Totals.Deposits)
	assert.Len(t, overview.Chart, 20)

	require.Len(t, overview.TopExperts, 2)
	assert.Equal(t, "Ana", overview.TopExperts[0].Name)
	assert.Equal(t, "Bruno", overview.TopExperts[1].Name)

	require.Len(t, overview.Statuses, 3)
	assert.Equal(t, domain.ClassificationScale, overview.Statuses[0].Status.Classification)
	assert.Equal(t, domain.ClassificationMaintain, overview.Statuses[1].Status.Classification)
	assert.Equal(t, domain.ClassificationNoData, overview.Statuses[2].Status.Classification)

	require.Len(t, overview.ScalingExperts, 1)
	assert.Equal(t, "ana", overview.ScalingExperts[0].Slug)
}

func TestService_OverviewError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	integrator.EXPECT().FetchAllClients(gomock.Any()).Return(nil, context.Canceled)

	overview, err := NewService(integrator).Overview(context.Background(), domain.RangeRequest{}, referenceNow)

	assert.Nil(t, overview)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_ClientsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	risky := dailyRecords("Bruno", 14, 20, 100, 50)
	risky[6].Classification = "RISCO"
	risky[6].TrendLabel = "DESCENDO"

	integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	integrator.EXPECT().FetchAllClients(gomock.Any()).Return([]sheets.ClientRecords{{Client: bruno, Records: risky}}, nil)

	statuses, err := NewService(integrator).ClientsStatus(context.Background(), referenceNow)

	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, domain.ClassificationAtRisk, statuses[0].Status.Classification)
	assert.Equal(t, domain.SourceStatus{Classification: "RISCO", Trend: "DESCENDO"}, statuses[0].SourceStatus)
}

func TestService_StatusHistory(t *testing.T) {
	t.Run("deve retornar lista vazia sem persistência", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
		integrator.EXPECT().FindClient(gomock.Any(), "ana").Return(ana, nil)

		history, err := NewService(integrator).StatusHistory(context.Background(), "ana", 10)

		require.NoError(t, err)
		assert.Empty(t, history)
		assert.NotNil(t, history)
	})

	t.Run("deve consultar os snapshots gravados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		snapshots := []*domain.StatusSnapshot{
			{ClientSlug: "ana", Date: day(20), Classification: domain.ClassificationScale, Trend: domain.TrendStable},
		}

		integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
		integrator.EXPECT().FindClient(gomock.Any(), "ana").Return(ana, nil)

		repo := repomocks.NewMockStatusSnapshotRepository(ctrl)
		repo.EXPECT().ListByClient(gomock.Any(), "ana", 10).Return(snapshots, nil)

		history, err := NewService(integrator).WithSnapshots(repo).StatusHistory(context.Background(), "ana", 10)

		require.NoError(t, err)
		assert.Equal(t, snapshots, history)
	})
}

func TestService_RefreshClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	integrator.EXPECT().InvalidateClients()

	NewService(integrator).RefreshClients()
}

func TestService_StatusHistoryRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	integrator.EXPECT().FindClient(gomock.Any(), "ana").Return(ana, nil)

	repo := repomocks.NewMockStatusSnapshotRepository(ctrl)
	repo.EXPECT().ListByClient(gomock.Any(), "ana", 0).Return(nil, errors.New("conexão recusada"))

	history, err := NewService(integrator).WithSnapshots(repo).StatusHistory(context.Background(), "ana", 0)

	assert.Nil(t, history)
	assert.True(t, errors.Is(err, ErrSnapshotStore))
}
