package domain

// ClientDashboard é a resposta completa do dashboard de um expert
type ClientDashboard struct {
	Client         Client            `json:"client"`
	Preset         RangePreset       `json:"preset"`
	RangeLabel     string            `json:"range_label"`
	Range          DateRange         `json:"range"`
	PreviousRange  DateRange         `json:"previous_range"`
	Totals         AggregatedMetrics `json:"totals"`
	PreviousTotals AggregatedMetrics `json:"previous_totals"`
	Daily          []DailyMetrics    `json:"daily"`
	Chart          []ChartPoint      `json:"chart"`
	Granularity    Granularity       `json:"granularity"`
	Progress       []ProgressPoint   `json:"progress"`
	BestDay        *DailyMetrics     `json:"best_day,omitempty"`
	Forecast       []ForecastPoint   `json:"forecast"`
	ForecastTotal  float64           `json:"forecast_total"`
	Status         ExpertStatus      `json:"status"`
	SourceStatus   SourceStatus      `json:"source_status"`
	Growth         Growth            `json:"growth"`
	Quality        QualityReport     `json:"quality"`
	Notes          []DailyNote       `json:"notes"`
}

// ClientStatusEntry é o status de um expert na visão geral
type ClientStatusEntry struct {
	Client       Client       `json:"client"`
	Status       ExpertStatus `json:"status"`
	SourceStatus SourceStatus `json:"source_status"`
}

// Overview é a visão geral com todos os experts somados
type Overview struct {
	Preset          RangePreset          `json:"preset"`
	RangeLabel      string               `json:"range_label"`
	Range           DateRange            `json:"range"`
	PreviousRange   DateRange            `json:"previous_range"`
	Totals          AggregatedMetrics    `json:"totals"`
	PreviousTotals  AggregatedMetrics    `json:"previous_totals"`
	Daily           []DailyMetrics       `json:"daily"`
	Chart           []ChartPoint         `json:"chart"`
	BestDay         *DailyMetrics        `json:"best_day,omitempty"`
	TopExperts      []TopExpert          `json:"top_experts"`
	QualityRanking  []ExpertQuality      `json:"quality_ranking"`
	ScalingExperts  []ScalingOpportunity `json:"scaling_experts"`
	Statuses        []ClientStatusEntry  `json:"statuses"`
	Notes           []DailyNote          `json:"notes"`
	ClientsFetched  int                  `json:"clients_fetched"`
	RecordsInPeriod int                  `json:"records_in_period"`
}
