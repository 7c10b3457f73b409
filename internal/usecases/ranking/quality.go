package ranking

import (
	"sort"

	"github.com/samber/lo"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

const (
	// GoodGroupScore é a nota média mínima do grupo considerada boa
	GoodGroupScore = 3.0
	// GoodLiveScore é a pontuação média mínima das lives considerada boa
	GoodLiveScore = 15.0
)

// Quality calcula as médias de qualidade: nota do grupo nos dias com nota > 0 e
// pontuação da live nos dias com live assistida e pontuação > 0
func Quality(records []domain.MetricRecord) domain.QualityReport {
	var report domain.QualityReport
	var groupTotal, liveTotal float64

	for _, r := range records {
		if r.GroupScore > 0 {
			groupTotal += r.GroupScore
			report.ScoredDays++
		}
		if r.LiveWatched && r.LiveScoreTotal > 0 {
			liveTotal += r.LiveScoreTotal
			report.LiveDays++
		}
	}

	if report.ScoredDays > 0 {
		report.AvgGroupScore = groupTotal / float64(report.ScoredDays)
	}
	if report.LiveDays > 0 {
		report.AvgLiveScore = liveTotal / float64(report.LiveDays)
	}

	report.Verdict = Verdict(report.AvgGroupScore, report.AvgLiveScore)
	return report
}

// Verdict classifica as médias de grupo e live
func Verdict(avgGroup, avgLive float64) domain.QualityVerdict {
	goodGroup := avgGroup >= GoodGroupScore
	goodLive := avgLive >= GoodLiveScore

	switch {
	case goodGroup && goodLive:
		return domain.VerdictExcellent
	case goodGroup:
		return domain.VerdictGoodGroup
	case goodLive:
		return domain.VerdictGoodLive
	case avgGroup > 0 || avgLive > 0:
		return domain.VerdictAttention
	default:
		return domain.VerdictNoData
	}
}

// QualityRanking gera o relatório de qualidade por expert, ordenado pela nota média do grupo
func QualityRanking(records []domain.MetricRecord) []domain.ExpertQuality {
	byExpert := lo.GroupBy(lo.Filter(records, func(r domain.MetricRecord, _ int) bool {
		return r.ClientName != ""
	}), func(r domain.MetricRecord) string {
		return r.ClientName
	})

	ranking := make([]domain.ExpertQuality, 0, len(byExpert))
	for name, expertRecords := range byExpert {
		ranking = append(ranking, domain.ExpertQuality{
			Name:          name,
			QualityReport: Quality(expertRecords),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].AvgGroupScore != ranking[j].AvgGroupScore {
			return ranking[i].AvgGroupScore > ranking[j].AvgGroupScore
		}
		return ranking[i].Name < ranking[j].Name
	})

	return ranking
}
