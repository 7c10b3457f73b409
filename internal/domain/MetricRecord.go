package domain

// LiveWatchedToken é o valor da planilha que indica que a live foi assistida
const LiveWatchedToken = "SIM"

// MetricRecord representa uma linha diária da planilha de um expert, já tipada
type MetricRecord struct {
	ClientName string `json:"client_name,omitempty"`
	Date       Date   `json:"date"`

	Cost       float64 `json:"cost"`
	Deposits   float64 `json:"deposits"`
	Revenue    float64 `json:"revenue"`
	TotalValue float64 `json:"total_value"`

	Leads       int `json:"leads"`
	LeadsIn     int `json:"leads_in"`
	LeadsOut    int `json:"leads_out"`
	Conversions int `json:"conversions"` // FTDs (primeiros depósitos)

	// Impressions e Clicks não existem na planilha atual, mas continuam no modelo
	// para as métricas de CTR e CPC quando uma fonte trouxer essas colunas
	Impressions int `json:"impressions"`
	Clicks      int `json:"clicks"`

	GroupScore      float64 `json:"group_score"`
	LiveWatched     bool    `json:"live_watched"`
	LivePeak        int     `json:"live_peak"`
	LiveFinal       int     `json:"live_final"`
	LiveScoreTotal  float64 `json:"live_score_total"`
	EfficiencyIndex float64 `json:"efficiency_index"`

	Summary8020 string `json:"summary_80_20,omitempty"`
	Detail      string `json:"detail,omitempty"`

	ROAS float64 `json:"roas"`

	Classification string `json:"classification,omitempty"`
	TrendLabel     string `json:"trend_label,omitempty"`
}

// Return é o valor de retorno usado na classificação: valor total quando preenchido, senão depósitos
func (m MetricRecord) Return() float64 {
	if m.TotalValue != 0 {
		return m.TotalValue
	}
	return m.Deposits
}

// HasNotes indica se a linha possui anotações de texto (80/20 ou detalhamento)
func (m MetricRecord) HasNotes() bool {
	return m.Summary8020 != "" || m.Detail != ""
}
