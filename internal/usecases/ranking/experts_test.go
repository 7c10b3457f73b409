package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

func record(name string, d int, deposits, groupScore float64) domain.MetricRecord {
	return domain.MetricRecord{
		ClientName: name,
		Date:       domain.Date{Year: 2024, Month: time.May, Day: d},
		Deposits:   deposits,
		GroupScore: groupScore,
	}
}

func TestTopExperts(t *testing.T) {
	records := []domain.MetricRecord{
		record("Ana", 1, 100, 4),
		record("Bruno", 1, 500, 2),
		record("Ana", 2, 200, 0),
		record("Carla", 1, 200, 3),
		record("", 1, 9999, 5),
	}

	ranking := TopExperts(records)

	require.Len(t, ranking, 3)

	assert.Equal(t, "Bruno", ranking[0].Name)
	assert.Equal(t, 500.0, ranking[0].Deposits)
	assert.InDelta(t, 50.0, ranking[0].Share, 1e-9)

	assert.Equal(t, "Ana", ranking[1].Name)
	assert.Equal(t, 300.0, ranking[1].Deposits)
	assert.Equal(t, 2, ranking[1].Days)
	assert.InDelta(t, 2.0, ranking[1].AvgGroupScore, 1e-9)
	assert.InDelta(t, 30.0, ranking[1].Share, 1e-9)

	assert.Equal(t, "Carla", ranking[2].Name)
}

func TestTopExperts_NoDeposits(t *testing.T) {
	ranking := TopExperts([]domain.MetricRecord{record("Ana", 1, 0, 0)})

	require.Len(t, ranking, 1)
	assert.Zero(t, ranking[0].Share)
	assert.Empty(t, TopExperts(nil))
}

func TestScalingOpportunities(t *testing.T) {
	statuses := []domain.ClientStatusEntry{
		{Client: domain.Client{Name: "Ana", Slug: "ana"}, Status: domain.ExpertStatus{Classification: domain.ClassificationScale, Return7: 100}},
		{Client: domain.Client{Name: "Bruno", Slug: "bruno"}, Status: domain.ExpertStatus{Classification: domain.ClassificationMaintain, Return7: 900}},
		{Client: domain.Client{Name: "Carla", Slug: "carla"}, Status: domain.ExpertStatus{Classification: domain.ClassificationScale, Return7: 300}},
	}

	opportunities := ScalingOpportunities(statuses)

	require.Len(t, opportunities, 2)
	assert.Equal(t, "carla", opportunities[0].Slug)
	assert.Equal(t, "ana", opportunities[1].Slug)
	assert.Empty(t, ScalingOpportunities(nil))
}
