package domain

// TopExpert representa a posição de um expert no ranking por depósitos
type TopExpert struct {
	Name          string  `json:"name"`
	Deposits      float64 `json:"deposits"`
	AvgGroupScore float64 `json:"avg_group_score"`
	Days          int     `json:"days"`
	Share         float64 `json:"share"` // participação no total de depósitos (%)
}

// QualityVerdict é o veredito automático de qualidade (grupo e lives)
type QualityVerdict string

const (
	VerdictExcellent QualityVerdict = "Excelente"
	VerdictGoodGroup QualityVerdict = "Bom Grupo"
	VerdictGoodLive  QualityVerdict = "Boa Live"
	VerdictAttention QualityVerdict = "Atenção"
	VerdictNoData    QualityVerdict = "Sem Dados"
)

// QualityReport resume as médias de qualidade de um conjunto de dias
type QualityReport struct {
	AvgGroupScore float64        `json:"avg_group_score"`
	AvgLiveScore  float64        `json:"avg_live_score"`
	ScoredDays    int            `json:"scored_days"`
	LiveDays      int            `json:"live_days"`
	Verdict       QualityVerdict `json:"verdict"`
}

// ExpertQuality é o relatório de qualidade de um expert
type ExpertQuality struct {
	Name string `json:"name"`
	QualityReport
}

// ScalingOpportunity é um expert em condição de escalar
type ScalingOpportunity struct {
	Name   string       `json:"name"`
	Slug   string       `json:"slug"`
	Status ExpertStatus `json:"status"`
}

// DailyNote são as anotações de texto de um dia (80/20 e detalhamento)
type DailyNote struct {
	ClientName  string `json:"client_name,omitempty"`
	Date        Date   `json:"date"`
	Summary8020 string `json:"summary_80_20,omitempty"`
	Detail      string `json:"detail,omitempty"`
}
