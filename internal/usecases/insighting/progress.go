package insighting

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

// ProgressSeries agrupa o retorno de cada linha (valor total quando preenchido, senão depósitos)
// por dia, semana (começando no domingo) ou mês, em ordem crescente. Granularidade vazia vale diário.
func ProgressSeries(records []domain.MetricRecord, granularity domain.Granularity) []domain.ProgressPoint {
	if granularity == "" {
		granularity = domain.GranularityDaily
	}

	buckets := lo.GroupBy(records, func(r domain.MetricRecord) domain.Date {
		return granularity.BucketStart(r.Date)
	})

	points := make([]domain.ProgressPoint, 0, len(buckets))
	for start, bucket := range buckets {
		total := lo.Reduce(bucket, func(sum decimal.Decimal, r domain.MetricRecord, _ int) decimal.Decimal {
			return sum.Add(decimal.NewFromFloat(r.Return()))
		}, decimal.Zero)

		points = append(points, domain.ProgressPoint{
			Label:   granularity.BucketLabel(start),
			Start:   start,
			Value:   total.InexactFloat64(),
			Records: len(bucket),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Start.Before(points[j].Start)
	})

	return points
}
