package ranking

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

// TopExperts ordena os experts pelo total de depósitos (maior primeiro).
// A nota média do grupo considera todas as linhas do expert; registros sem nome são ignorados.
func TopExperts(records []domain.MetricRecord) []domain.TopExpert {
	byExpert := lo.GroupBy(lo.Filter(records, func(r domain.MetricRecord, _ int) bool {
		return r.ClientName != ""
	}), func(r domain.MetricRecord) string {
		return r.ClientName
	})

	total := decimal.Zero
	experts := make([]domain.TopExpert, 0, len(byExpert))
	for name, expertRecords := range byExpert {
		deposits, score := decimal.Zero, decimal.Zero
		for _, r := range expertRecords {
			deposits = deposits.Add(decimal.NewFromFloat(r.Deposits))
			score = score.Add(decimal.NewFromFloat(r.GroupScore))
		}
		total = total.Add(deposits)

		experts = append(experts, domain.TopExpert{
			Name:          name,
			Deposits:      deposits.InexactFloat64(),
			AvgGroupScore: score.Div(decimal.NewFromInt(int64(len(expertRecords)))).InexactFloat64(),
			Days:          len(expertRecords),
		})
	}

	if !total.IsZero() {
		totalFloat := total.InexactFloat64()
		for i := range experts {
			experts[i].Share = experts[i].Deposits / totalFloat * 100
		}
	}

	sort.SliceStable(experts, func(i, j int) bool {
		if experts[i].Deposits != experts[j].Deposits {
			return experts[i].Deposits > experts[j].Deposits
		}
		return experts[i].Name < experts[j].Name
	})

	return experts
}

// ScalingOpportunities lista os experts com status ESCALAR, do maior retorno em 7 dias para o menor
func ScalingOpportunities(statuses []domain.ClientStatusEntry) []domain.ScalingOpportunity {
	opportunities := lo.FilterMap(statuses, func(entry domain.ClientStatusEntry, _ int) (domain.ScalingOpportunity, bool) {
		return domain.ScalingOpportunity{
			Name:   entry.Client.Name,
			Slug:   entry.Client.Slug,
			Status: entry.Status,
		}, entry.Status.Classification == domain.ClassificationScale
	})

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Status.Return7 > opportunities[j].Status.Return7
	})

	return opportunities
}
