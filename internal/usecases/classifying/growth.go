package classifying

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/period"
)

// ComputeGrowth calcula o crescimento semanal ([now-6, now] contra [now-13, now-7])
// e mensal ([now-29, now] contra [now-59, now-30]) do retorno
func ComputeGrowth(records []domain.MetricRecord, now time.Time) domain.Growth {
	return domain.Growth{
		Weekly: growthRate(
			summarize(records, period.Trailing(now, 6, 0)).ret,
			summarize(records, period.Trailing(now, 13, 7)).ret,
		),
		Monthly: growthRate(
			summarize(records, period.Trailing(now, 29, 0)).ret,
			summarize(records, period.Trailing(now, 59, 30)).ret,
		),
	}
}

// growthRate retorna 100 quando não havia retorno antes e agora há, e 0 quando ambos são zero
func growthRate(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// LatestSourceStatus retorna a classificação e tendência preenchidas na planilha
// no registro mais recente que possui classificação; sem nenhum, ambas são N/A
func LatestSourceStatus(records []domain.MetricRecord) domain.SourceStatus {
	classified := lo.Filter(records, func(r domain.MetricRecord, _ int) bool {
		return r.Classification != ""
	})

	if len(classified) == 0 {
		return domain.SourceStatus{Classification: domain.NotAvailable, Trend: domain.NotAvailable}
	}

	sort.SliceStable(classified, func(i, j int) bool {
		return classified[i].Date.After(classified[j].Date)
	})

	latest := classified[0]
	status := domain.SourceStatus{Classification: latest.Classification, Trend: latest.TrendLabel}
	if status.Trend == "" {
		status.Trend = domain.NotAvailable
	}

	return status
}
