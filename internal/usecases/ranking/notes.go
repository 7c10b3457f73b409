package ranking

import (
	"sort"

	"github.com/samber/lo"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

// DailyNotes retorna as anotações (80/20 e detalhamento) dos registros até today, da mais recente para a mais antiga
func DailyNotes(records []domain.MetricRecord, today domain.Date) []domain.DailyNote {
	notes := lo.FilterMap(records, func(r domain.MetricRecord, _ int) (domain.DailyNote, bool) {
		return domain.DailyNote{
			ClientName:  r.ClientName,
			Date:        r.Date,
			Summary8020: r.Summary8020,
			Detail:      r.Detail,
		}, r.HasNotes() && !r.Date.After(today)
	})

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date.After(notes[j].Date)
	})

	return notes
}
