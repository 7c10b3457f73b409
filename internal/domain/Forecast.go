package domain

// ForecastPoint é um valor projetado para um dia futuro
type ForecastPoint struct {
	Date           Date    `json:"date"`
	ProjectedValue float64 `json:"projected_value"`
	IsForecast     bool    `json:"is_forecast"`
}
