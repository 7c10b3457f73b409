package sheets

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/expert-metrics-api/infrastructure/cache"
	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/parsing"
	"github.com/vfg2006/expert-metrics-api/pkg/telemetry"
	"github.com/vfg2006/expert-metrics-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var ErrClientNotFound = errors.New("cliente não encontrado")

// defaultIgnoredTabs são as abas da planilha que não pertencem a um expert
var defaultIgnoredTabs = []string{
	"Critérios Scorecard",
	"Dashboard",
	"Resumo",
	"Geral",
	"Config",
	"Instruções",
	"Página1",
	"Sheet1",
}

// ClientRecords são os registros de um cliente, já com o nome do cliente preenchido
type ClientRecords struct {
	Client  domain.Client
	Records []domain.MetricRecord
}

type SheetsIntegrator interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	FindClient(ctx context.Context, slug string) (domain.Client, error)
	FetchClientRecords(ctx context.Context, client domain.Client) ([]domain.MetricRecord, error)
	// FetchAllClients busca todos os clientes em paralelo; a falha de um cliente resulta em lista vazia para ele
	FetchAllClients(ctx context.Context) ([]ClientRecords, error)
	InvalidateClients()
}

type SheetsService struct {
	client         sheetsclient.Client
	cache          *cache.ClientCache
	metrics        *telemetry.Metrics
	schema         domain.ColumnSchema
	location       *time.Location
	ignoredTabs    map[string]struct{}
	maxConcurrency int
}

func New(cfg *config.Config, client sheetsclient.Client, clientCache *cache.ClientCache, metrics *telemetry.Metrics) SheetsIntegrator {
	location := cfg.App.TimeLocation()

	ignored := make(map[string]struct{})
	for _, name := range append(append([]string{}, defaultIgnoredTabs...), cfg.Sheets.IgnoredTabs...) {
		ignored[strings.TrimSpace(name)] = struct{}{}
	}

	maxConcurrency := cfg.Sheets.MaxConcurrentFetches
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	if metrics == nil {
		metrics = telemetry.Default()
	}

	return &SheetsService{
		client:         client,
		cache:          clientCache,
		metrics:        metrics,
		schema:         domain.DefaultColumnSchema(),
		location:       location,
		ignoredTabs:    ignored,
		maxConcurrency: maxConcurrency,
	}
}

// ListClients lista as abas de experts; a lista fica em cache pelo TTL configurado
func (s *SheetsService) ListClients(ctx context.Context) ([]domain.Client, error) {
	if clients, found := s.cache.Get(); found {
		s.metrics.ObserveClientCache(true)
		return clients, nil
	}
	s.metrics.ObserveClientCache(false)

	started := time.Now()
	tabs, err := s.client.ListTabs(ctx)
	s.metrics.ObserveSheetFetch(s.client.Source(), started, err)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source": s.client.Source(),
			"error":  err.Error(),
		}).Error("sheets: falha ao listar as abas da planilha")
		return nil, errors.Wrap(err, "erro ao listar clientes")
	}

	clients := lo.FilterMap(tabs, func(tab sheetsclient.Tab, _ int) (domain.Client, bool) {
		name := strings.TrimSpace(tab.Name)
		if _, ignored := s.ignoredTabs[name]; ignored || name == "" {
			return domain.Client{}, false
		}
		return domain.Client{Name: name, GID: tab.GID, Slug: utils.Slugify(name)}, true
	})

	s.cache.Set(clients)

	logrus.WithFields(logrus.Fields{
		"source":  s.client.Source(),
		"tabs":    len(tabs),
		"clients": len(clients),
	}).Debug("sheets: lista de clientes atualizada")

	return clients, nil
}

func (s *SheetsService) FindClient(ctx context.Context, slug string) (domain.Client, error) {
	clients, err := s.ListClients(ctx)
	if err != nil {
		return domain.Client{}, err
	}

	client, found := lo.Find(clients, func(c domain.Client) bool {
		return c.Slug == slug
	})
	if !found {
		return domain.Client{}, errors.Wrapf(ErrClientNotFound, "slug %s", slug)
	}

	return client, nil
}

// FetchClientRecords lê a aba do cliente e converte as linhas em registros diários
func (s *SheetsService) FetchClientRecords(ctx context.Context, client domain.Client) ([]domain.MetricRecord, error) {
	started := time.Now()
	sheet, err := s.client.GetSheet(ctx, client.GID)
	s.metrics.ObserveSheetFetch(s.client.Source(), started, err)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba do cliente %s", client.Name)
	}

	schema := parsing.SchemaFromSheet(sheet, s.schema)
	result := parsing.BindSheet(sheet, schema, s.location)

	for i := range result.Records {
		result.Records[i].ClientName = client.Name
	}

	s.metrics.ObserveBinding(client.Slug, len(result.Records), result.Skipped)
	logrus.WithFields(logrus.Fields{
		"client":  client.Slug,
		"records": len(result.Records),
		"skipped": result.Skipped,
	}).Debug("sheets: aba do cliente convertida")

	return result.Records, nil
}

func (s *SheetsService) FetchAllClients(ctx context.Context) ([]ClientRecords, error) {
	clients, err := s.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ClientRecords, len(clients))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for i, client := range clients {
		g.Go(func() error {
			records, err := s.FetchClientRecords(gctx, client)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"client": client.Slug,
					"error":  err.Error(),
				}).Error("sheets: falha ao buscar dados do cliente")
				records = []domain.MetricRecord{}
			}

			results[i] = ClientRecords{Client: client, Records: records}
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "busca dos clientes interrompida")
	}

	return results, nil
}

func (s *SheetsService) InvalidateClients() {
	s.cache.Invalidate()
}

// MergeRecords junta os registros de todos os clientes em uma única lista
func MergeRecords(all []ClientRecords) []domain.MetricRecord {
	return lo.FlatMap(all, func(c ClientRecords, _ int) []domain.MetricRecord {
		return c.Records
	})
}
