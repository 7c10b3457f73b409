package period

import (
	"time"

	"github.com/samber/lo"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

// FilterRecords mantém os registros cuja data está dentro do intervalo, preservando a ordem
func FilterRecords(records []domain.MetricRecord, r domain.DateRange) []domain.MetricRecord {
	return lo.Filter(records, func(record domain.MetricRecord, _ int) bool {
		return r.Contains(record.Date)
	})
}

// Days enumera os dias do calendário cobertos pelo intervalo, em ordem crescente
func Days(r domain.DateRange) []domain.Date {
	if r.End.Before(r.Start) {
		return []domain.Date{}
	}

	loc := r.Start.Location()
	last := domain.DateOf(r.End.In(loc))

	result := []domain.Date{}
	for d := domain.DateOf(r.Start); !d.After(last); d = d.AddDays(1) {
		result = append(result, d)
	}
	return result
}

// Trailing retorna os dias [now-from, now-to] como intervalo fechado, alinhado à meia-noite local.
// Trailing(now, 6, 0) são os últimos 7 dias incluindo hoje.
func Trailing(now time.Time, from, to int) domain.DateRange {
	today := domain.DateOf(now)
	return days(today.AddDays(-from), today.AddDays(-to), now.Location())
}
