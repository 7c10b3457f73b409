package insighting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/expert-metrics-api/infrastructure/repository"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/classifying"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/forecasting"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/period"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/ranking"
)

var _ Dashboarder = (*Service)(nil)

// ErrSnapshotStore indica falha na consulta do histórico gravado no banco
var ErrSnapshotStore = errors.New("histórico de status indisponível")

// chartMetric é a métrica exibida no gráfico e usada para o melhor dia
const chartMetric = domain.MetricDeposits

type Service struct {
	sheetsService      sheets.SheetsIntegrator
	snapshotRepository repository.StatusSnapshotRepository
}

func NewService(sheetsService sheets.SheetsIntegrator) *Service {
	return &Service{
		sheetsService: sheetsService,
	}
}

// WithSnapshots habilita a consulta do histórico de status gravado no banco
func (s *Service) WithSnapshots(snapshotRepo repository.StatusSnapshotRepository) *Service {
	s.snapshotRepository = snapshotRepo
	return s
}

func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.sheetsService.ListClients(ctx)
}

func (s *Service) RefreshClients() {
	s.sheetsService.InvalidateClients()
}

func (s *Service) ClientDashboard(ctx context.Context, slug string, req domain.RangeRequest, now time.Time) (*domain.ClientDashboard, error) {
	client, err := s.sheetsService.FindClient(ctx, slug)
	if err != nil {
		return nil, err
	}

	records, err := s.sheetsService.FetchClientRecords(ctx, client)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"client": slug,
			"error":  err.Error(),
		}).Error("insighting: erro ao buscar registros do cliente")
		return nil, err
	}

	view := buildView(records, req, now)
	today := domain.DateOf(now)

	dashboard := &domain.ClientDashboard{
		Client:         client,
		Preset:         view.preset,
		RangeLabel:     view.preset.Label(),
		Range:          view.current,
		PreviousRange:  view.previous,
		Totals:         view.totals,
		PreviousTotals: view.previousTotals,
		Daily:          view.daily,
		Chart:          view.chart,
		BestDay:        view.bestDay,
		Status:         classifying.Classify(records, now),
		SourceStatus:   classifying.LatestSourceStatus(records),
		Growth:         classifying.ComputeGrowth(records, now),
		Quality:        ranking.Quality(view.inRange),
		Notes:          ranking.DailyNotes(view.inRange, today),
	}

	dashboard.Granularity = req.Granularity
	if dashboard.Granularity == "" {
		dashboard.Granularity = domain.GranularityDaily
	}
	dashboard.Progress = ProgressSeries(view.inRange, dashboard.Granularity)

	dashboard.Forecast = forecasting.Forecast(DailyEvolution(observedUntil(records, today)), forecasting.DefaultHorizon)
	dashboard.ForecastTotal = forecasting.Total(dashboard.Forecast)

	logrus.WithFields(logrus.Fields{
		"client":  slug,
		"preset":  view.preset,
		"records": len(records),
		"inRange": len(view.inRange),
	}).Debug("insighting: dashboard do cliente montado")

	return dashboard, nil
}

func (s *Service) Overview(ctx context.Context, req domain.RangeRequest, now time.Time) (*domain.Overview, error) {
	all, err := s.sheetsService.FetchAllClients(ctx)
	if err != nil {
		return nil, err
	}

	records := sheets.MergeRecords(all)
	view := buildView(records, req, now)
	statuses := statusEntries(all, now)

	overview := &domain.Overview{
		Preset:          view.preset,
		RangeLabel:      view.preset.Label(),
		Range:           view.current,
		PreviousRange:   view.previous,
		Totals:          view.totals,
		PreviousTotals:  view.previousTotals,
		Daily:           view.daily,
		Chart:           view.chart,
		BestDay:         view.bestDay,
		TopExperts:      ranking.TopExperts(view.inRange),
		QualityRanking:  ranking.QualityRanking(view.inRange),
		ScalingExperts:  ranking.ScalingOpportunities(statuses),
		Statuses:        statuses,
		Notes:           ranking.DailyNotes(view.inRange, domain.DateOf(now)),
		ClientsFetched:  len(all),
		RecordsInPeriod: len(view.inRange),
	}

	logrus.WithFields(logrus.Fields{
		"clients": len(all),
		"preset":  view.preset,
		"inRange": len(view.inRange),
	}).Debug("insighting: visão geral montada")

	return overview, nil
}

func (s *Service) ClientsStatus(ctx context.Context, now time.Time) ([]domain.ClientStatusEntry, error) {
	all, err := s.sheetsService.FetchAllClients(ctx)
	if err != nil {
		return nil, err
	}

	return statusEntries(all, now), nil
}

func (s *Service) StatusHistory(ctx context.Context, slug string, limit int) ([]*domain.StatusSnapshot, error) {
	if _, err := s.sheetsService.FindClient(ctx, slug); err != nil {
		return nil, err
	}

	if s.snapshotRepository == nil {
		return []*domain.StatusSnapshot{}, nil
	}

	history, err := s.snapshotRepository.ListByClient(ctx, slug, limit)
	if err != nil {
		return nil, errors.Wrap(ErrSnapshotStore, err.Error())
	}

	return history, nil
}

// rangeView reúne os cálculos comuns ao dashboard do cliente e à visão geral
type rangeView struct {
	preset         domain.RangePreset
	current        domain.DateRange
	previous       domain.DateRange
	inRange        []domain.MetricRecord
	totals         domain.AggregatedMetrics
	previousTotals domain.AggregatedMetrics
	daily          []domain.DailyMetrics
	chart          []domain.ChartPoint
	bestDay        *domain.DailyMetrics
}

func buildView(records []domain.MetricRecord, req domain.RangeRequest, now time.Time) rangeView {
	preset := req.Preset
	if preset == "" {
		preset = domain.RangeAllTime
	}

	current := period.Resolve(domain.RangeRequest{Preset: preset, From: req.From, To: req.To}, now)
	previous := period.PreviousPeriod(current)
	inRange := period.FilterRecords(records, current)

	view := rangeView{
		preset:         preset,
		current:        current,
		previous:       previous,
		inRange:        inRange,
		totals:         Aggregate(inRange),
		previousTotals: Aggregate(period.FilterRecords(records, previous)),
		daily:          DailyEvolution(inRange),
		chart:          []domain.ChartPoint{},
	}

	if best, ok := BestDay(view.daily, chartMetric); ok {
		view.bestDay = &best
	}

	if chartRange, ok := chartWindow(preset, current, inRange); ok {
		view.chart = ChartSeries(inRange, chartRange, chartMetric)
	}

	return view
}

// chartWindow limita o gráfico de "todo o período" ao primeiro dia com dados,
// evitando uma série diária desde 1970
func chartWindow(preset domain.RangePreset, r domain.DateRange, inRange []domain.MetricRecord) (domain.DateRange, bool) {
	if preset != domain.RangeAllTime {
		return r, true
	}

	if len(inRange) == 0 {
		return domain.DateRange{}, false
	}

	first := lo.MinBy(inRange, func(a, b domain.MetricRecord) bool {
		return a.Date.Before(b.Date)
	})

	return domain.DateRange{Start: first.Date.In(r.Start.Location()), End: r.End}, true
}

// observedUntil descarta linhas com data futura (a planilha costuma vir com dias já preenchidos)
func observedUntil(records []domain.MetricRecord, today domain.Date) []domain.MetricRecord {
	return lo.Filter(records, func(r domain.MetricRecord, _ int) bool {
		return !r.Date.After(today)
	})
}

func statusEntries(all []sheets.ClientRecords, now time.Time) []domain.ClientStatusEntry {
	return lo.Map(all, func(c sheets.ClientRecords, _ int) domain.ClientStatusEntry {
		return domain.ClientStatusEntry{
			Client:       c.Client,
			Status:       classifying.Classify(c.Records, now),
			SourceStatus: classifying.LatestSourceStatus(c.Records),
		}
	})
}
