package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/expert-metrics-api/infrastructure/repository"
	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/classifying"
	"github.com/vfg2006/expert-metrics-api/pkg/telemetry"
	"github.com/vfg2006/expert-metrics-api/pkg/utils"
)

// StatusSnapshotSyncConfig representa a configuração do agendador de status
type StatusSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Location     *time.Location
}

// StatusSnapshotSyncService calcula o status de todos os experts e grava um snapshot por dia
type StatusSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              StatusSnapshotSyncConfig
	sheetsService       sheets.SheetsIntegrator
	snapshotRepo        repository.StatusSnapshotRepository
	metrics             *telemetry.Metrics
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastStored          int
	lastError           string
}

func NewStatusSnapshotSyncService(
	sheetsService sheets.SheetsIntegrator,
	snapshotRepo repository.StatusSnapshotRepository,
	metrics *telemetry.Metrics,
	appConfig *config.Config,
) *StatusSnapshotSyncService {
	location := appConfig.App.TimeLocation()

	syncConfig := StatusSnapshotSyncConfig{
		CronSchedule: appConfig.StatusSnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.StatusSnapshotSync.Enabled,
		Location:     location,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"timezone":      location.String(),
	}).Info("Configuração do agendador de status dos experts carregada")

	if metrics == nil {
		metrics = telemetry.Default()
	}

	return &StatusSnapshotSyncService{
		scheduler:     gocron.NewScheduler(location),
		config:        syncConfig,
		sheetsService: sheetsService,
		snapshotRepo:  snapshotRepo,
		metrics:       metrics,
		now:           time.Now,
	}
}

// Start inicia o agendador
func (s *StatusSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Gravação do status dos experts desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de status dos experts")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar gravação do status dos experts: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de status dos experts")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *StatusSnapshotSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Gravação do status dos experts já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	snapshots, err := s.RunOnce(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastStored = len(snapshots)
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()
}

// RunOnce calcula e grava o status de todos os experts no instante atual.
// Clientes cuja aba falhou na leitura são gravados como SEM DADOS.
func (s *StatusSnapshotSyncService) RunOnce(ctx context.Context) ([]*domain.StatusSnapshot, error) {
	startTime := s.now()

	runID, err := utils.GenerateRunID()
	if err != nil {
		s.metrics.ObserveSnapshotRun(err, 0)
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando gravação do status dos experts")

	all, err := s.sheetsService.FetchAllClients(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar clientes para gravação do status")
		s.metrics.ObserveSnapshotRun(err, 0)
		return nil, err
	}

	now := startTime.In(s.config.Location)
	snapshots := lo.Map(all, func(c sheets.ClientRecords, _ int) *domain.StatusSnapshot {
		status := classifying.Classify(c.Records, now)
		return &domain.StatusSnapshot{
			RunID:          runID,
			ClientSlug:     c.Client.Slug,
			ClientName:     c.Client.Name,
			Date:           domain.DateOf(now),
			Classification: status.Classification,
			Trend:          status.Trend,
			ROAS7:          utils.RoundWithTwoDecimalPlace(status.ROAS7),
			Return7:        utils.RoundWithTwoDecimalPlace(status.Return7),
			Cost7:          utils.RoundWithTwoDecimalPlace(status.Cost7),
		}
	})

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshots); err != nil {
		logger.WithError(err).Error("Erro ao salvar status dos experts no banco de dados")
		s.metrics.ObserveSnapshotRun(err, 0)
		return nil, err
	}

	s.metrics.ObserveSnapshotRun(nil, len(snapshots))

	s.syncMutex.Lock()
	s.lastRunID = runID
	s.syncMutex.Unlock()

	logger.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"clients":  len(snapshots),
		"scale":    lo.CountBy(snapshots, isClassification(domain.ClassificationScale)),
		"at_risk":  lo.CountBy(snapshots, isClassification(domain.ClassificationAtRisk)),
	}).Info("Gravação do status dos experts concluída")

	return snapshots, nil
}

func isClassification(c domain.Classification) func(*domain.StatusSnapshot) bool {
	return func(s *domain.StatusSnapshot) bool {
		return s.Classification == c
	}
}

// TriggerManualSync inicia manualmente a gravação do status
func (s *StatusSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Gravação do status dos experts já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando gravação manual do status dos experts")
	go s.syncAll(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *StatusSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"timezone":               s.config.Location.String(),
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_stored":            s.lastStored,
		"last_error":             s.lastError,
	}
}
