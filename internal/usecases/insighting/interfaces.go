package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Dashboarder monta as visões do dashboard a partir dos dados da planilha.
// O instante de referência (now) é sempre informado por quem chama.
type Dashboarder interface {
	ListClients(ctx context.Context) ([]domain.Client, error)

	// ClientDashboard monta o dashboard completo de um expert no período pedido
	ClientDashboard(ctx context.Context, slug string, req domain.RangeRequest, now time.Time) (*domain.ClientDashboard, error)

	// Overview soma todos os experts no período pedido
	Overview(ctx context.Context, req domain.RangeRequest, now time.Time) (*domain.Overview, error)

	// ClientsStatus calcula o status de cada expert (ROAS e tendência dos últimos 7 dias)
	ClientsStatus(ctx context.Context, now time.Time) ([]domain.ClientStatusEntry, error)

	// StatusHistory retorna os snapshots gravados pelo agendador; vazio quando não há persistência
	StatusHistory(ctx context.Context, slug string, limit int) ([]*domain.StatusSnapshot, error)

	RefreshClients()
}
