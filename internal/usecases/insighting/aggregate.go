package insighting

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/period"
)

// Aggregate soma os registros e calcula as métricas derivadas.
// A soma é feita em decimal para que a ordem dos registros não altere o total.
func Aggregate(records []domain.MetricRecord) domain.AggregatedMetrics {
	var cost, deposits, revenue, totalValue decimal.Decimal
	var result domain.AggregatedMetrics

	for _, r := range records {
		cost = cost.Add(decimal.NewFromFloat(r.Cost))
		deposits = deposits.Add(decimal.NewFromFloat(r.Deposits))
		revenue = revenue.Add(decimal.NewFromFloat(r.Revenue))
		totalValue = totalValue.Add(decimal.NewFromFloat(r.TotalValue))

		result.Leads += r.Leads
		result.LeadsIn += r.LeadsIn
		result.LeadsOut += r.LeadsOut
		result.Conversions += r.Conversions
		result.Impressions += r.Impressions
		result.Clicks += r.Clicks
	}

	result.Cost = cost.InexactFloat64()
	result.Deposits = deposits.InexactFloat64()
	result.Revenue = revenue.InexactFloat64()
	result.TotalValue = totalValue.InexactFloat64()

	result.ROAS = ratio(result.Revenue, result.Cost)
	result.CTR = ratio(float64(result.Clicks), float64(result.Impressions)) * 100
	result.CPC = ratio(result.Cost, float64(result.Clicks))
	result.CPL = ratio(result.Cost, float64(result.Leads))
	result.CPA = ratio(result.Cost, float64(result.Conversions))
	result.ConversionLeadToSale = ratio(float64(result.Conversions), float64(result.Leads)) * 100
	result.AvgTicket = ratio(result.Deposits, float64(result.Conversions))

	return result
}

// GroupByDay agrupa os registros pelo dia do calendário
func GroupByDay(records []domain.MetricRecord) map[domain.Date][]domain.MetricRecord {
	return lo.GroupBy(records, func(r domain.MetricRecord) domain.Date {
		return r.Date
	})
}

// DailyEvolution agrega cada dia com registros, em ordem crescente de data
func DailyEvolution(records []domain.MetricRecord) []domain.DailyMetrics {
	grouped := GroupByDay(records)

	series := make([]domain.DailyMetrics, 0, len(grouped))
	for date, dayRecords := range grouped {
		series = append(series, domain.DailyMetrics{
			Date:              date,
			AggregatedMetrics: Aggregate(dayRecords),
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// BestDay retorna o dia com o maior valor da métrica; em empate vence o primeiro da série.
// Retorna false para série vazia.
func BestDay(series []domain.DailyMetrics, key domain.MetricKey) (domain.DailyMetrics, bool) {
	if len(series) == 0 {
		return domain.DailyMetrics{}, false
	}

	best := lo.MaxBy(series, func(candidate, current domain.DailyMetrics) bool {
		return candidate.Value(key) > current.Value(key)
	})

	return best, true
}

// ChartSeries gera um ponto por dia do intervalo com o valor somado da métrica; dias sem registros valem 0
func ChartSeries(records []domain.MetricRecord, r domain.DateRange, key domain.MetricKey) []domain.ChartPoint {
	byDay := lo.MapValues(GroupByDay(period.FilterRecords(records, r)), func(dayRecords []domain.MetricRecord, _ domain.Date) float64 {
		return Aggregate(dayRecords).Value(key)
	})

	return lo.Map(period.Days(r), func(d domain.Date, _ int) domain.ChartPoint {
		return domain.ChartPoint{Date: d, Value: byDay[d]}
	})
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
