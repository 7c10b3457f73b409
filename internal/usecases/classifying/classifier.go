package classifying

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/period"
)

const (
	// ScaleThreshold é o ROAS mínimo (7 dias) para escalar
	ScaleThreshold = 1.5
	// MaintainThreshold é o ROAS mínimo (7 dias) para manter
	MaintainThreshold = 1.0
	// TrendThreshold é a variação percentual que separa SUBINDO/DESCENDO de ESTÁVEL
	TrendThreshold = 10.0
)

// window é o resumo de uma janela de dias
type window struct {
	records int
	cost    float64
	ret     float64
}

func summarize(records []domain.MetricRecord, r domain.DateRange) window {
	var cost, ret decimal.Decimal
	w := window{}

	for _, record := range period.FilterRecords(records, r) {
		w.records++
		cost = cost.Add(decimal.NewFromFloat(record.Cost))
		ret = ret.Add(decimal.NewFromFloat(record.Return()))
	}

	w.cost = cost.InexactFloat64()
	w.ret = ret.InexactFloat64()
	return w
}

// Classify calcula o status do expert: classificação pelo ROAS dos últimos 7 dias [now-6, now]
// e tendência comparando o retorno com os 7 dias anteriores [now-13, now-7]
func Classify(records []domain.MetricRecord, now time.Time) domain.ExpertStatus {
	last7 := summarize(records, period.Trailing(now, 6, 0))
	prev7 := summarize(records, period.Trailing(now, 13, 7))

	status := domain.ExpertStatus{
		AsOf:        now,
		Cost7:       last7.cost,
		Return7:     last7.ret,
		PrevReturn7: prev7.ret,
	}

	if last7.cost != 0 {
		status.ROAS7 = last7.ret / last7.cost
	}

	switch {
	case last7.records == 0:
		status.Classification = domain.ClassificationNoData
	case status.ROAS7 >= ScaleThreshold:
		status.Classification = domain.ClassificationScale
	case status.ROAS7 >= MaintainThreshold:
		status.Classification = domain.ClassificationMaintain
	default:
		status.Classification = domain.ClassificationAtRisk
	}

	status.Trend, status.Growth = trend(last7.ret, prev7.ret)

	return status
}

func trend(current, previous float64) (domain.Trend, float64) {
	if previous == 0 {
		if current > 0 {
			return domain.TrendRising, 0
		}
		return domain.TrendStable, 0
	}

	growth := (current - previous) / previous * 100
	switch {
	case growth > TrendThreshold:
		return domain.TrendRising, growth
	case growth < -TrendThreshold:
		return domain.TrendFalling, growth
	default:
		return domain.TrendStable, growth
	}
}
